package remote

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/pkg/httpclient"

	"go.uber.org/zap"
)

type CategoryAPI interface {
	List(ctx context.Context) ([]entity.Category, error)
	Products(ctx context.Context, id string, page, size int) (*entity.ProductPage, error)
	// Admin-scoped writes; otorisasi sepenuhnya di server.
	Create(ctx context.Context, req *request.CategoryCreateRequest) (*entity.Category, error)
	Update(ctx context.Context, id string, req *request.CategoryCreateRequest) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryAPI struct {
	client httpclient.Doer
	log    *zap.Logger
}

func NewCategoryAPI(client httpclient.Doer, log *zap.Logger) CategoryAPI {
	return &categoryAPI{
		client: client,
		log:    log.With(zap.String("api", "categories")),
	}
}

func (a *categoryAPI) List(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := a.client.Get(ctx, "/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (a *categoryAPI) Products(ctx context.Context, id string, page, size int) (*entity.ProductPage, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		query.Set("size", strconv.Itoa(size))
	}

	var result entity.ProductPage
	if err := a.client.Get(ctx, "/categories/"+id+"/products", query, &result); err != nil {
		return nil, fmt.Errorf("list category products: %w", err)
	}
	return &result, nil
}

func (a *categoryAPI) Create(ctx context.Context, req *request.CategoryCreateRequest) (*entity.Category, error) {
	var category entity.Category
	if err := a.client.Post(ctx, "/admin/categories", req, &category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

func (a *categoryAPI) Update(ctx context.Context, id string, req *request.CategoryCreateRequest) (*entity.Category, error) {
	var category entity.Category
	if err := a.client.Put(ctx, "/admin/categories/"+id, req, &category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &category, nil
}

func (a *categoryAPI) Delete(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, "/admin/categories/"+id, nil); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
