package usecase

import (
	"context"
	"fmt"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/internal/query"
	"marketplace-storefront/pkg/utils"

	"go.uber.org/zap"
)

type ReviewService interface {
	ProductReviews(ctx context.Context, productID string) ([]entity.Review, error)
	CreateReview(ctx context.Context, productID string, req *request.ReviewRequest) (*entity.Review, error)
}

type reviewService struct {
	api   remote.ReviewAPI
	cache *query.Cache
	log   *zap.Logger
}

func NewReviewService(api *remote.API, cache *query.Cache, log *zap.Logger) ReviewService {
	return &reviewService{
		api:   api.Review,
		cache: cache,
		log:   log.With(zap.String("service", "reviews")),
	}
}

func (s *reviewService) ProductReviews(ctx context.Context, productID string) ([]entity.Review, error) {
	return query.Fetch(ctx, s.cache, query.ReviewsKey(productID), reviewsStale, productID != "",
		func(ctx context.Context) ([]entity.Review, error) {
			return s.api.ForProduct(ctx, productID)
		})
}

func (s *reviewService) CreateReview(ctx context.Context, productID string, req *request.ReviewRequest) (*entity.Review, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Review baru mengubah rating agregat produk, jadi detail produk
	// ikut di-invalidate bersama list review-nya.
	var review *entity.Review
	err := s.cache.Mutate(ctx, query.ReviewInvalidations(productID), func(ctx context.Context) error {
		var err error
		review, err = s.api.Create(ctx, productID, req)
		return err
	})
	if err != nil {
		s.log.Warn("Create review failed", zap.String("product_id", productID), zap.Error(err))
		return nil, err
	}
	return review, nil
}
