package remote

import (
	"context"
	"fmt"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/pkg/httpclient"

	"go.uber.org/zap"
)

type CustomerAPI interface {
	Get(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, id string, req *request.UpdateCustomerRequest) (*entity.Customer, error)
	Wishlist(ctx context.Context, id string) ([]entity.Product, error)
	AddToWishlist(ctx context.Context, customerID, productID string) error
	RemoveFromWishlist(ctx context.Context, customerID, productID string) error
}

type customerAPI struct {
	client httpclient.Doer
	log    *zap.Logger
}

func NewCustomerAPI(client httpclient.Doer, log *zap.Logger) CustomerAPI {
	return &customerAPI{
		client: client,
		log:    log.With(zap.String("api", "customers")),
	}
}

func (a *customerAPI) Get(ctx context.Context, id string) (*entity.Customer, error) {
	var customer entity.Customer
	if err := a.client.Get(ctx, "/customers/"+id, nil, &customer); err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &customer, nil
}

func (a *customerAPI) Update(ctx context.Context, id string, req *request.UpdateCustomerRequest) (*entity.Customer, error) {
	var customer entity.Customer
	if err := a.client.Put(ctx, "/customers/"+id, req, &customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return &customer, nil
}

func (a *customerAPI) Wishlist(ctx context.Context, id string) ([]entity.Product, error) {
	var products []entity.Product
	if err := a.client.Get(ctx, "/customers/"+id+"/wishlist", nil, &products); err != nil {
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	return products, nil
}

func (a *customerAPI) AddToWishlist(ctx context.Context, customerID, productID string) error {
	if err := a.client.Post(ctx, "/customers/"+customerID+"/wishlist/"+productID, nil, nil); err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

func (a *customerAPI) RemoveFromWishlist(ctx context.Context, customerID, productID string) error {
	if err := a.client.Delete(ctx, "/customers/"+customerID+"/wishlist/"+productID, nil); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}
