package remote

import (
	"context"
	"fmt"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/pkg/httpclient"

	"go.uber.org/zap"
)

// AdminAPI memanggil endpoint /admin/...; semuanya mengandalkan
// otorisasi server, client cuma menyembunyikan UI affordance.
type AdminAPI interface {
	Users(ctx context.Context) ([]entity.User, error)
	Stats(ctx context.Context) (*entity.AdminStats, error)
	UpdateUserRoles(ctx context.Context, id string, req *request.UpdateUserRolesRequest) (*entity.User, error)
	PendingSellers(ctx context.Context) ([]entity.Seller, error)
	VerifySeller(ctx context.Context, id string) (*entity.Seller, error)
}

type adminAPI struct {
	client httpclient.Doer
	log    *zap.Logger
}

func NewAdminAPI(client httpclient.Doer, log *zap.Logger) AdminAPI {
	return &adminAPI{
		client: client,
		log:    log.With(zap.String("api", "admin")),
	}
}

func (a *adminAPI) Users(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := a.client.Get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (a *adminAPI) Stats(ctx context.Context) (*entity.AdminStats, error) {
	var stats entity.AdminStats
	if err := a.client.Get(ctx, "/admin/stats", nil, &stats); err != nil {
		return nil, fmt.Errorf("get admin stats: %w", err)
	}
	return &stats, nil
}

func (a *adminAPI) UpdateUserRoles(ctx context.Context, id string, req *request.UpdateUserRolesRequest) (*entity.User, error) {
	var user entity.User
	if err := a.client.Put(ctx, "/admin/users/"+id+"/roles", req, &user); err != nil {
		return nil, fmt.Errorf("update user roles: %w", err)
	}
	return &user, nil
}

func (a *adminAPI) PendingSellers(ctx context.Context) ([]entity.Seller, error) {
	var sellers []entity.Seller
	if err := a.client.Get(ctx, "/admin/sellers/pending", nil, &sellers); err != nil {
		return nil, fmt.Errorf("list pending sellers: %w", err)
	}
	return sellers, nil
}

func (a *adminAPI) VerifySeller(ctx context.Context, id string) (*entity.Seller, error) {
	var seller entity.Seller
	if err := a.client.Put(ctx, "/admin/sellers/"+id+"/verify", nil, &seller); err != nil {
		return nil, fmt.Errorf("verify seller: %w", err)
	}
	return &seller, nil
}
