package usecase

import (
	"context"
	"time"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/query"

	"go.uber.org/zap"
)

const (
	ordersStale = 2 * time.Minute
	orderStale  = 1 * time.Minute
)

type OrderService interface {
	CustomerOrders(ctx context.Context) ([]entity.Order, error)
	SellerOrders(ctx context.Context) ([]entity.Order, error)
	Order(ctx context.Context, id string) (*entity.Order, error)
}

type orderService struct {
	api     remote.OrderAPI
	cache   *query.Cache
	session SessionService
	log     *zap.Logger
}

func NewOrderService(api *remote.API, cache *query.Cache, session SessionService, log *zap.Logger) OrderService {
	return &orderService{
		api:     api.Order,
		cache:   cache,
		session: session,
		log:     log.With(zap.String("service", "orders")),
	}
}

func (s *orderService) CustomerOrders(ctx context.Context) ([]entity.Order, error) {
	user := s.session.Current()
	enabled := s.session.IsAuthenticated() && s.session.IsCustomer() && user != nil

	var customerID string
	if user != nil {
		customerID = user.ID
	}

	return query.Fetch(ctx, s.cache, query.CustomerOrdersKey(customerID), ordersStale, enabled,
		func(ctx context.Context) ([]entity.Order, error) {
			return s.api.CustomerOrders(ctx, customerID)
		})
}

func (s *orderService) SellerOrders(ctx context.Context) ([]entity.Order, error) {
	user := s.session.Current()
	enabled := s.session.IsAuthenticated() && s.session.IsSeller() && user != nil

	var sellerID string
	if user != nil {
		sellerID = user.ID
	}

	return query.Fetch(ctx, s.cache, query.SellerOrdersKey(sellerID), ordersStale, enabled,
		func(ctx context.Context) ([]entity.Order, error) {
			return s.api.SellerOrders(ctx, sellerID)
		})
}

func (s *orderService) Order(ctx context.Context, id string) (*entity.Order, error) {
	return query.Fetch(ctx, s.cache, query.OrderKey(id), orderStale, id != "",
		func(ctx context.Context) (*entity.Order, error) {
			return s.api.Get(ctx, id)
		})
}
