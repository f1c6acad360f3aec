package usecase

import (
	"context"
	"time"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/internal/query"

	"go.uber.org/zap"
)

// Stale times mengikuti karakter datanya: katalog jarang berubah.
const (
	productsStale         = 5 * time.Minute
	productStale          = 5 * time.Minute
	categoriesStale       = 10 * time.Minute
	categoryProductsStale = 5 * time.Minute
	reviewsStale          = 5 * time.Minute
)

// CatalogService adalah read path katalog publik, semua lewat cache.
type CatalogService interface {
	Products(ctx context.Context, params *request.ProductListParams) (*entity.ProductPage, error)
	Product(ctx context.Context, id string) (*entity.Product, error)
	Categories(ctx context.Context) ([]entity.Category, error)
	CategoryProducts(ctx context.Context, id string, page, size int) (*entity.ProductPage, error)
}

type catalogService struct {
	products   remote.ProductAPI
	categories remote.CategoryAPI
	cache      *query.Cache
	log        *zap.Logger
}

func NewCatalogService(api *remote.API, cache *query.Cache, log *zap.Logger) CatalogService {
	return &catalogService{
		products:   api.Product,
		categories: api.Category,
		cache:      cache,
		log:        log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) Products(ctx context.Context, params *request.ProductListParams) (*entity.ProductPage, error) {
	return query.Fetch(ctx, s.cache, query.ProductsKey(params), productsStale, true,
		func(ctx context.Context) (*entity.ProductPage, error) {
			return s.products.List(ctx, params)
		})
}

func (s *catalogService) Product(ctx context.Context, id string) (*entity.Product, error) {
	return query.Fetch(ctx, s.cache, query.ProductKey(id), productStale, id != "",
		func(ctx context.Context) (*entity.Product, error) {
			return s.products.Get(ctx, id)
		})
}

func (s *catalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	return query.Fetch(ctx, s.cache, query.KeyCategories, categoriesStale, true,
		func(ctx context.Context) ([]entity.Category, error) {
			return s.categories.List(ctx)
		})
}

func (s *catalogService) CategoryProducts(ctx context.Context, id string, page, size int) (*entity.ProductPage, error) {
	return query.Fetch(ctx, s.cache, query.CategoryProductsKey(id, page, size), categoryProductsStale, id != "",
		func(ctx context.Context) (*entity.ProductPage, error) {
			return s.categories.Products(ctx, id, page, size)
		})
}
