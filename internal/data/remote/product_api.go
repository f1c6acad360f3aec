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

type ProductAPI interface {
	List(ctx context.Context, params *request.ProductListParams) (*entity.ProductPage, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	Create(ctx context.Context, req *request.ProductCreateRequest) (*entity.Product, error)
	Update(ctx context.Context, id string, req *request.ProductCreateRequest) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}

type productAPI struct {
	client httpclient.Doer
	log    *zap.Logger
}

func NewProductAPI(client httpclient.Doer, log *zap.Logger) ProductAPI {
	return &productAPI{
		client: client,
		log:    log.With(zap.String("api", "products")),
	}
}

func (a *productAPI) List(ctx context.Context, params *request.ProductListParams) (*entity.ProductPage, error) {
	var page entity.ProductPage
	if err := a.client.Get(ctx, "/products", productQuery(params), &page); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return &page, nil
}

func (a *productAPI) Get(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := a.client.Get(ctx, "/products/"+id, nil, &product); err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

func (a *productAPI) Create(ctx context.Context, req *request.ProductCreateRequest) (*entity.Product, error) {
	var product entity.Product
	if err := a.client.Post(ctx, "/products", req, &product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &product, nil
}

func (a *productAPI) Update(ctx context.Context, id string, req *request.ProductCreateRequest) (*entity.Product, error) {
	var product entity.Product
	if err := a.client.Put(ctx, "/products/"+id, req, &product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &product, nil
}

func (a *productAPI) Delete(ctx context.Context, id string) error {
	if err := a.client.Delete(ctx, "/products/"+id, nil); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func productQuery(params *request.ProductListParams) url.Values {
	if params == nil {
		return nil
	}

	query := url.Values{}
	if params.CategoryID != "" {
		query.Set("categoryId", params.CategoryID)
	}
	if params.SellerID != "" {
		query.Set("sellerId", params.SellerID)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Size > 0 {
		query.Set("size", strconv.Itoa(params.Size))
	}
	if params.Sort != "" {
		query.Set("sort", params.Sort)
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	return query
}
