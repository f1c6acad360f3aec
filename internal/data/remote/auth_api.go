package remote

import (
	"context"
	"fmt"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/pkg/httpclient"

	"go.uber.org/zap"
)

type AuthAPI interface {
	Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*entity.User, error)
	RegisterCustomer(ctx context.Context, req *request.CustomerRegisterRequest) (*entity.User, error)
	RegisterSeller(ctx context.Context, req *request.SellerRegisterRequest) (*entity.User, error)
}

type authAPI struct {
	client httpclient.Doer
	log    *zap.Logger
}

func NewAuthAPI(client httpclient.Doer, log *zap.Logger) AuthAPI {
	return &authAPI{
		client: client,
		log:    log.With(zap.String("api", "auth")),
	}
}

func (a *authAPI) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	var user entity.User
	if err := a.client.Post(ctx, "/auth/login", req, &user); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &user, nil
}

func (a *authAPI) Logout(ctx context.Context) error {
	if err := a.client.Post(ctx, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (a *authAPI) Profile(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := a.client.Get(ctx, "/auth/profile", nil, &user); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return &user, nil
}

func (a *authAPI) RegisterCustomer(ctx context.Context, req *request.CustomerRegisterRequest) (*entity.User, error) {
	var user entity.User
	if err := a.client.Post(ctx, "/auth/register/customer", req, &user); err != nil {
		return nil, fmt.Errorf("register customer: %w", err)
	}
	return &user, nil
}

func (a *authAPI) RegisterSeller(ctx context.Context, req *request.SellerRegisterRequest) (*entity.User, error) {
	var user entity.User
	if err := a.client.Post(ctx, "/auth/register/seller", req, &user); err != nil {
		return nil, fmt.Errorf("register seller: %w", err)
	}
	return &user, nil
}
