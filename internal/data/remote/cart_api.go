package remote

import (
	"context"
	"fmt"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/pkg/httpclient"

	"go.uber.org/zap"
)

type CartAPI interface {
	Get(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, req *request.AddToCartRequest) (*entity.Cart, error)
	UpdateItem(ctx context.Context, itemID string, req *request.UpdateCartItemRequest) (*entity.Cart, error)
	RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error)
	Checkout(ctx context.Context) (*entity.Order, error)
}

type cartAPI struct {
	client httpclient.Doer
	log    *zap.Logger
}

func NewCartAPI(client httpclient.Doer, log *zap.Logger) CartAPI {
	return &cartAPI{
		client: client,
		log:    log.With(zap.String("api", "cart")),
	}
}

func (a *cartAPI) Get(ctx context.Context) (*entity.Cart, error) {
	var cart entity.Cart
	if err := a.client.Get(ctx, "/cart", nil, &cart); err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return &cart, nil
}

func (a *cartAPI) AddItem(ctx context.Context, req *request.AddToCartRequest) (*entity.Cart, error) {
	var cart entity.Cart
	if err := a.client.Post(ctx, "/cart/items", req, &cart); err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return &cart, nil
}

func (a *cartAPI) UpdateItem(ctx context.Context, itemID string, req *request.UpdateCartItemRequest) (*entity.Cart, error) {
	var cart entity.Cart
	if err := a.client.Put(ctx, "/cart/items/"+itemID, req, &cart); err != nil {
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return &cart, nil
}

func (a *cartAPI) RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error) {
	var cart entity.Cart
	if err := a.client.Delete(ctx, "/cart/items/"+itemID, &cart); err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}
	return &cart, nil
}

func (a *cartAPI) Checkout(ctx context.Context) (*entity.Order, error) {
	var order entity.Order
	if err := a.client.Post(ctx, "/cart/checkout", nil, &order); err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	return &order, nil
}
