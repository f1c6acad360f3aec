package usecase

import (
	"context"
	"fmt"
	"time"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/internal/query"
	"marketplace-storefront/pkg/utils"

	"go.uber.org/zap"
)

const (
	sellerStatsStale    = 2 * time.Minute
	sellerProductsStale = 2 * time.Minute
)

// SellerService: dashboard seller (stats + listing produk sendiri) dan
// CRUD produk milik seller yang sedang login.
type SellerService interface {
	Stats(ctx context.Context) (*entity.SellerStats, error)
	Products(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, req *request.ProductCreateRequest) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id string, req *request.ProductCreateRequest) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type sellerService struct {
	sellers  remote.SellerAPI
	products remote.ProductAPI
	cache    *query.Cache
	session  SessionService
	log      *zap.Logger
}

func NewSellerService(api *remote.API, cache *query.Cache, session SessionService, log *zap.Logger) SellerService {
	return &sellerService{
		sellers:  api.Seller,
		products: api.Product,
		cache:    cache,
		session:  session,
		log:      log.With(zap.String("service", "seller")),
	}
}

func (s *sellerService) Stats(ctx context.Context) (*entity.SellerStats, error) {
	user := s.session.Current()
	enabled := s.session.IsAuthenticated() && s.session.IsSeller() && user != nil

	var sellerID string
	if user != nil {
		sellerID = user.ID
	}

	return query.Fetch(ctx, s.cache, query.SellerStatsKey(sellerID), sellerStatsStale, enabled,
		func(ctx context.Context) (*entity.SellerStats, error) {
			return s.sellers.Stats(ctx, sellerID)
		})
}

func (s *sellerService) Products(ctx context.Context) ([]entity.Product, error) {
	user := s.session.Current()
	enabled := s.session.IsAuthenticated() && s.session.IsSeller() && user != nil

	var sellerID string
	if user != nil {
		sellerID = user.ID
	}

	return query.Fetch(ctx, s.cache, query.SellerProductsKey(sellerID), sellerProductsStale, enabled,
		func(ctx context.Context) ([]entity.Product, error) {
			return s.sellers.Products(ctx, sellerID)
		})
}

func (s *sellerService) CreateProduct(ctx context.Context, req *request.ProductCreateRequest) (*entity.Product, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var product *entity.Product
	err := s.cache.Mutate(ctx, query.ProductCreateInvalidations(), func(ctx context.Context) error {
		var err error
		product, err = s.products.Create(ctx, req)
		return err
	})
	if err != nil {
		s.log.Warn("Create product failed", zap.Error(err))
		return nil, err
	}

	s.log.Info("Product created", zap.String("product_id", product.ID))
	return product, nil
}

func (s *sellerService) UpdateProduct(ctx context.Context, id string, req *request.ProductCreateRequest) (*entity.Product, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var product *entity.Product
	err := s.cache.Mutate(ctx, query.ProductUpdateInvalidations(), func(ctx context.Context) error {
		var err error
		product, err = s.products.Update(ctx, id, req)
		return err
	})
	if err != nil {
		s.log.Warn("Update product failed", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	return product, nil
}

func (s *sellerService) DeleteProduct(ctx context.Context, id string) error {
	err := s.cache.Mutate(ctx, query.ProductDeleteInvalidations(), func(ctx context.Context) error {
		return s.products.Delete(ctx, id)
	})
	if err != nil {
		s.log.Warn("Delete product failed", zap.String("product_id", id), zap.Error(err))
		return err
	}

	s.log.Info("Product deleted", zap.String("product_id", id))
	return nil
}
