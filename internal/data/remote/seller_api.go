package remote

import (
	"context"
	"fmt"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/pkg/httpclient"

	"go.uber.org/zap"
)

type SellerAPI interface {
	Get(ctx context.Context, id string) (*entity.Seller, error)
	Products(ctx context.Context, id string) ([]entity.Product, error)
	Stats(ctx context.Context, id string) (*entity.SellerStats, error)
}

type sellerAPI struct {
	client httpclient.Doer
	log    *zap.Logger
}

func NewSellerAPI(client httpclient.Doer, log *zap.Logger) SellerAPI {
	return &sellerAPI{
		client: client,
		log:    log.With(zap.String("api", "sellers")),
	}
}

func (a *sellerAPI) Get(ctx context.Context, id string) (*entity.Seller, error) {
	var seller entity.Seller
	if err := a.client.Get(ctx, "/sellers/"+id, nil, &seller); err != nil {
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &seller, nil
}

func (a *sellerAPI) Products(ctx context.Context, id string) ([]entity.Product, error) {
	var products []entity.Product
	if err := a.client.Get(ctx, "/sellers/"+id+"/products", nil, &products); err != nil {
		return nil, fmt.Errorf("list seller products: %w", err)
	}
	return products, nil
}

func (a *sellerAPI) Stats(ctx context.Context, id string) (*entity.SellerStats, error) {
	var stats entity.SellerStats
	if err := a.client.Get(ctx, "/sellers/"+id+"/stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("get seller stats: %w", err)
	}
	return &stats, nil
}
