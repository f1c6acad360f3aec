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

const cartStale = 1 * time.Minute

// CartService: read cart lewat cache (hanya untuk customer yang login),
// write langsung ke API dengan invalidation saat sukses.
type CartService interface {
	Cart(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, req *request.AddToCartRequest) (*entity.Cart, error)
	UpdateItem(ctx context.Context, itemID string, req *request.UpdateCartItemRequest) (*entity.Cart, error)
	RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error)
	Checkout(ctx context.Context) (*entity.Order, error)
}

type cartService struct {
	api     remote.CartAPI
	cache   *query.Cache
	session SessionService
	log     *zap.Logger
}

func NewCartService(api *remote.API, cache *query.Cache, session SessionService, log *zap.Logger) CartService {
	return &cartService{
		api:     api.Cart,
		cache:   cache,
		session: session,
		log:     log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) Cart(ctx context.Context) (*entity.Cart, error) {
	enabled := s.session.IsAuthenticated() && s.session.IsCustomer()
	return query.Fetch(ctx, s.cache, query.KeyCart, cartStale, enabled,
		func(ctx context.Context) (*entity.Cart, error) {
			return s.api.Get(ctx)
		})
}

func (s *cartService) AddItem(ctx context.Context, req *request.AddToCartRequest) (*entity.Cart, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var cart *entity.Cart
	err := s.cache.Mutate(ctx, query.CartInvalidations(), func(ctx context.Context) error {
		var err error
		cart, err = s.api.AddItem(ctx, req)
		return err
	})
	if err != nil {
		s.log.Warn("Add to cart failed", zap.String("product_id", req.ProductID), zap.Error(err))
		return nil, err
	}
	return cart, nil
}

func (s *cartService) UpdateItem(ctx context.Context, itemID string, req *request.UpdateCartItemRequest) (*entity.Cart, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var cart *entity.Cart
	err := s.cache.Mutate(ctx, query.CartInvalidations(), func(ctx context.Context) error {
		var err error
		cart, err = s.api.UpdateItem(ctx, itemID, req)
		return err
	})
	if err != nil {
		s.log.Warn("Update cart item failed", zap.String("item_id", itemID), zap.Error(err))
		return nil, err
	}
	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error) {
	var cart *entity.Cart
	err := s.cache.Mutate(ctx, query.CartInvalidations(), func(ctx context.Context) error {
		var err error
		cart, err = s.api.RemoveItem(ctx, itemID)
		return err
	})
	if err != nil {
		s.log.Warn("Remove cart item failed", zap.String("item_id", itemID), zap.Error(err))
		return nil, err
	}
	return cart, nil
}

func (s *cartService) Checkout(ctx context.Context) (*entity.Order, error) {
	var order *entity.Order
	err := s.cache.Mutate(ctx, query.CheckoutInvalidations(), func(ctx context.Context) error {
		var err error
		order, err = s.api.Checkout(ctx)
		return err
	})
	if err != nil {
		s.log.Warn("Checkout failed", zap.Error(err))
		return nil, err
	}

	s.log.Info("Checkout completed", zap.String("order_id", order.ID))
	return order, nil
}
