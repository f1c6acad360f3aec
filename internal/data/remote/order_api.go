package remote

import (
	"context"
	"fmt"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/pkg/httpclient"

	"go.uber.org/zap"
)

type OrderAPI interface {
	Get(ctx context.Context, id string) (*entity.Order, error)
	CustomerOrders(ctx context.Context, customerID string) ([]entity.Order, error)
	SellerOrders(ctx context.Context, sellerID string) ([]entity.Order, error)
	// Admin-scoped; otorisasi di server.
	UpdateStatus(ctx context.Context, id string, req *request.UpdateOrderStatusRequest) (*entity.Order, error)
}

type orderAPI struct {
	client httpclient.Doer
	log    *zap.Logger
}

func NewOrderAPI(client httpclient.Doer, log *zap.Logger) OrderAPI {
	return &orderAPI{
		client: client,
		log:    log.With(zap.String("api", "orders")),
	}
}

func (a *orderAPI) Get(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	if err := a.client.Get(ctx, "/orders/"+id, nil, &order); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

func (a *orderAPI) CustomerOrders(ctx context.Context, customerID string) ([]entity.Order, error) {
	var orders []entity.Order
	if err := a.client.Get(ctx, "/customers/"+customerID+"/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	return orders, nil
}

func (a *orderAPI) SellerOrders(ctx context.Context, sellerID string) ([]entity.Order, error) {
	var orders []entity.Order
	if err := a.client.Get(ctx, "/sellers/"+sellerID+"/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("list seller orders: %w", err)
	}
	return orders, nil
}

func (a *orderAPI) UpdateStatus(ctx context.Context, id string, req *request.UpdateOrderStatusRequest) (*entity.Order, error) {
	var order entity.Order
	if err := a.client.Post(ctx, "/admin/orders/"+id+"/status", req, &order); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &order, nil
}
