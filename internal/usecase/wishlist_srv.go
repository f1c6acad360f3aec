package usecase

import (
	"context"
	"fmt"
	"time"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/query"

	"go.uber.org/zap"
)

const wishlistStale = 2 * time.Minute

type WishlistService interface {
	Wishlist(ctx context.Context) ([]entity.Product, error)
	Add(ctx context.Context, productID string) error
	Remove(ctx context.Context, productID string) error
}

type wishlistService struct {
	api     remote.CustomerAPI
	cache   *query.Cache
	session SessionService
	log     *zap.Logger
}

func NewWishlistService(api *remote.API, cache *query.Cache, session SessionService, log *zap.Logger) WishlistService {
	return &wishlistService{
		api:     api.Customer,
		cache:   cache,
		session: session,
		log:     log.With(zap.String("service", "wishlist")),
	}
}

func (s *wishlistService) Wishlist(ctx context.Context) ([]entity.Product, error) {
	user := s.session.Current()
	enabled := s.session.IsAuthenticated() && s.session.IsCustomer() && user != nil

	var customerID string
	if user != nil {
		customerID = user.ID
	}

	return query.Fetch(ctx, s.cache, query.WishlistKey(customerID), wishlistStale, enabled,
		func(ctx context.Context) ([]entity.Product, error) {
			return s.api.Wishlist(ctx, customerID)
		})
}

func (s *wishlistService) Add(ctx context.Context, productID string) error {
	user := s.session.Current()
	if user == nil {
		return fmt.Errorf("not authenticated")
	}

	err := s.cache.Mutate(ctx, query.WishlistInvalidations(), func(ctx context.Context) error {
		return s.api.AddToWishlist(ctx, user.ID, productID)
	})
	if err != nil {
		s.log.Warn("Add to wishlist failed", zap.String("product_id", productID), zap.Error(err))
	}
	return err
}

func (s *wishlistService) Remove(ctx context.Context, productID string) error {
	user := s.session.Current()
	if user == nil {
		return fmt.Errorf("not authenticated")
	}

	err := s.cache.Mutate(ctx, query.WishlistInvalidations(), func(ctx context.Context) error {
		return s.api.RemoveFromWishlist(ctx, user.ID, productID)
	})
	if err != nil {
		s.log.Warn("Remove from wishlist failed", zap.String("product_id", productID), zap.Error(err))
	}
	return err
}
