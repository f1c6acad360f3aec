package usecase

import (
	"context"
	"fmt"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/pkg/utils"

	"go.uber.org/zap"
)

type CustomerService interface {
	Get(ctx context.Context, id string) (*entity.Customer, error)
	// UpdateProfile update data customer yang login, lalu refresh
	// identity di session (alur halaman account).
	UpdateProfile(ctx context.Context, req *request.UpdateCustomerRequest) (*entity.Customer, error)
}

type customerService struct {
	api     remote.CustomerAPI
	session SessionService
	log     *zap.Logger
}

func NewCustomerService(api *remote.API, session SessionService, log *zap.Logger) CustomerService {
	return &customerService{
		api:     api.Customer,
		session: session,
		log:     log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	return s.api.Get(ctx, id)
}

func (s *customerService) UpdateProfile(ctx context.Context, req *request.UpdateCustomerRequest) (*entity.Customer, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user := s.session.Current()
	if user == nil {
		return nil, fmt.Errorf("not authenticated")
	}

	customer, err := s.api.Update(ctx, user.ID, req)
	if err != nil {
		s.log.Warn("Update profile failed", zap.String("user_id", user.ID), zap.Error(err))
		return nil, err
	}

	// Identity di session ikut diperbarui dari server
	if err := s.session.RefreshProfile(ctx); err != nil {
		s.log.Warn("Profile refresh after update failed", zap.Error(err))
	}

	return customer, nil
}
