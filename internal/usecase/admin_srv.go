package usecase

import (
	"context"
	"fmt"
	"time"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/internal/query"
	"marketplace-storefront/pkg/utils"

	"go.uber.org/zap"
)

const (
	adminStatsStale     = 2 * time.Minute
	adminUsersStale     = 2 * time.Minute
	pendingSellersStale = 1 * time.Minute
)

// AdminService: layar oversight admin. Read path tidak di-gate di sini;
// halaman admin sudah di belakang route guard ROLE_ADMIN, dan server
// tetap menolak caller tanpa role.
type AdminService interface {
	Stats(ctx context.Context) (*entity.AdminStats, error)
	Users(ctx context.Context) ([]entity.User, error)
	PendingSellers(ctx context.Context) ([]entity.Seller, error)
	UpdateUserRoles(ctx context.Context, id string, req *request.UpdateUserRolesRequest) (*entity.User, error)
	VerifySeller(ctx context.Context, id string) (*entity.Seller, error)
	CreateCategory(ctx context.Context, req *request.CategoryCreateRequest) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id string, req *request.CategoryCreateRequest) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	UpdateOrderStatus(ctx context.Context, id string, req *request.UpdateOrderStatusRequest) (*entity.Order, error)
}

type adminService struct {
	admin      remote.AdminAPI
	categories remote.CategoryAPI
	orders     remote.OrderAPI
	cache      *query.Cache
	log        *zap.Logger
}

func NewAdminService(api *remote.API, cache *query.Cache, log *zap.Logger) AdminService {
	return &adminService{
		admin:      api.Admin,
		categories: api.Category,
		orders:     api.Order,
		cache:      cache,
		log:        log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) Stats(ctx context.Context) (*entity.AdminStats, error) {
	return query.Fetch(ctx, s.cache, query.KeyAdminStats, adminStatsStale, true,
		func(ctx context.Context) (*entity.AdminStats, error) {
			return s.admin.Stats(ctx)
		})
}

func (s *adminService) Users(ctx context.Context) ([]entity.User, error) {
	return query.Fetch(ctx, s.cache, query.KeyAdminUsers, adminUsersStale, true,
		func(ctx context.Context) ([]entity.User, error) {
			return s.admin.Users(ctx)
		})
}

func (s *adminService) PendingSellers(ctx context.Context) ([]entity.Seller, error) {
	return query.Fetch(ctx, s.cache, query.KeyPendingSellers, pendingSellersStale, true,
		func(ctx context.Context) ([]entity.Seller, error) {
			return s.admin.PendingSellers(ctx)
		})
}

func (s *adminService) UpdateUserRoles(ctx context.Context, id string, req *request.UpdateUserRolesRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var user *entity.User
	err := s.cache.Mutate(ctx, query.UserRolesInvalidations(), func(ctx context.Context) error {
		var err error
		user, err = s.admin.UpdateUserRoles(ctx, id, req)
		return err
	})
	if err != nil {
		s.log.Warn("Update user roles failed", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}

	s.log.Info("User roles updated", zap.String("user_id", id), zap.Any("roles", req.Roles))
	return user, nil
}

func (s *adminService) VerifySeller(ctx context.Context, id string) (*entity.Seller, error) {
	var seller *entity.Seller
	err := s.cache.Mutate(ctx, query.SellerVerifyInvalidations(), func(ctx context.Context) error {
		var err error
		seller, err = s.admin.VerifySeller(ctx, id)
		return err
	})
	if err != nil {
		s.log.Warn("Verify seller failed", zap.String("seller_id", id), zap.Error(err))
		return nil, err
	}

	s.log.Info("Seller verified", zap.String("seller_id", id))
	return seller, nil
}

func (s *adminService) CreateCategory(ctx context.Context, req *request.CategoryCreateRequest) (*entity.Category, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var category *entity.Category
	err := s.cache.Mutate(ctx, query.CategoryInvalidations(), func(ctx context.Context) error {
		var err error
		category, err = s.categories.Create(ctx, req)
		return err
	})
	if err != nil {
		s.log.Warn("Create category failed", zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (s *adminService) UpdateCategory(ctx context.Context, id string, req *request.CategoryCreateRequest) (*entity.Category, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var category *entity.Category
	err := s.cache.Mutate(ctx, query.CategoryInvalidations(), func(ctx context.Context) error {
		var err error
		category, err = s.categories.Update(ctx, id, req)
		return err
	})
	if err != nil {
		s.log.Warn("Update category failed", zap.String("category_id", id), zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, id string) error {
	err := s.cache.Mutate(ctx, query.CategoryInvalidations(), func(ctx context.Context) error {
		return s.categories.Delete(ctx, id)
	})
	if err != nil {
		s.log.Warn("Delete category failed", zap.String("category_id", id), zap.Error(err))
	}
	return err
}

// UpdateOrderStatus tidak terikat invalidation key manapun; tidak ada
// read-side yang dipasangkan dengannya.
func (s *adminService) UpdateOrderStatus(ctx context.Context, id string, req *request.UpdateOrderStatusRequest) (*entity.Order, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	return s.orders.UpdateStatus(ctx, id, req)
}
