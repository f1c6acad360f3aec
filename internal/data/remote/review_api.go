package remote

import (
	"context"
	"fmt"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/pkg/httpclient"

	"go.uber.org/zap"
)

type ReviewAPI interface {
	ForProduct(ctx context.Context, productID string) ([]entity.Review, error)
	Create(ctx context.Context, productID string, req *request.ReviewRequest) (*entity.Review, error)
}

type reviewAPI struct {
	client httpclient.Doer
	log    *zap.Logger
}

func NewReviewAPI(client httpclient.Doer, log *zap.Logger) ReviewAPI {
	return &reviewAPI{
		client: client,
		log:    log.With(zap.String("api", "reviews")),
	}
}

func (a *reviewAPI) ForProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := a.client.Get(ctx, "/products/"+productID+"/reviews", nil, &reviews); err != nil {
		return nil, fmt.Errorf("list product reviews: %w", err)
	}
	return reviews, nil
}

func (a *reviewAPI) Create(ctx context.Context, productID string, req *request.ReviewRequest) (*entity.Review, error) {
	var review entity.Review
	if err := a.client.Post(ctx, "/products/"+productID+"/reviews", req, &review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &review, nil
}
