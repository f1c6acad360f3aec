package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/internal/query"
)

type fakeAdminAPI struct {
	pending []entity.Seller
	users   []entity.User

	usersCalls   int
	pendingCalls int
	verifyErr    error
}

func (f *fakeAdminAPI) Users(ctx context.Context) ([]entity.User, error) {
	f.usersCalls++
	return f.users, nil
}

func (f *fakeAdminAPI) Stats(ctx context.Context) (*entity.AdminStats, error) {
	return &entity.AdminStats{TotalUsers: len(f.users)}, nil
}

func (f *fakeAdminAPI) UpdateUserRoles(ctx context.Context, id string, req *request.UpdateUserRolesRequest) (*entity.User, error) {
	return &entity.User{ID: id, Roles: req.Roles}, nil
}

func (f *fakeAdminAPI) PendingSellers(ctx context.Context) ([]entity.Seller, error) {
	f.pendingCalls++
	return f.pending, nil
}

func (f *fakeAdminAPI) VerifySeller(ctx context.Context, id string) (*entity.Seller, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	for i := range f.pending {
		if f.pending[i].ID == id {
			seller := f.pending[i]
			seller.Verified = true
			f.pending = append(f.pending[:i], f.pending[i+1:]...)
			return &seller, nil
		}
	}
	return nil, errors.New("seller not found")
}

func newAdminFixture(t *testing.T) (AdminService, *fakeAdminAPI) {
	t.Helper()

	api := &fakeAdminAPI{
		users: []entity.User{{ID: "u1", Roles: []entity.Role{entity.RoleCustomer}}},
		pending: []entity.Seller{
			{User: entity.User{ID: "s1"}, ShopName: "Toko Satu"},
		},
	}
	cache := query.NewCache(zap.NewNop())
	service := NewAdminService(&remote.API{Admin: api}, cache, zap.NewNop())
	return service, api
}

func TestAdmin_VerifySellerInvalidatesPendingAndUsers(t *testing.T) {
	service, api := newAdminFixture(t)
	ctx := context.Background()

	pending, err := service.PendingSellers(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = service.Users(ctx)
	require.NoError(t, err)

	seller, err := service.VerifySeller(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, seller.Verified)

	// Kedua query stale, refetch saat dibaca lagi
	pending, err = service.PendingSellers(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, 2, api.pendingCalls)

	_, err = service.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, api.usersCalls)
}

func TestAdmin_FailedVerifyLeavesCacheUntouched(t *testing.T) {
	service, api := newAdminFixture(t)
	ctx := context.Background()

	_, err := service.PendingSellers(ctx)
	require.NoError(t, err)

	api.verifyErr = errors.New("500")
	_, err = service.VerifySeller(ctx, "s1")
	require.Error(t, err)

	_, err = service.PendingSellers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.pendingCalls)
}

func TestAdmin_UpdateUserRolesInvalidatesUsers(t *testing.T) {
	service, api := newAdminFixture(t)
	ctx := context.Background()

	_, err := service.Users(ctx)
	require.NoError(t, err)

	user, err := service.UpdateUserRoles(ctx, "u1", &request.UpdateUserRolesRequest{
		Roles: []entity.Role{entity.RoleCustomer, entity.RoleSeller},
	})
	require.NoError(t, err)
	assert.Len(t, user.Roles, 2)

	_, err = service.Users(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, api.usersCalls)
}

func TestAdmin_UpdateUserRolesValidation(t *testing.T) {
	service, _ := newAdminFixture(t)

	_, err := service.UpdateUserRoles(context.Background(), "u1", &request.UpdateUserRolesRequest{
		Roles: []entity.Role{"ROLE_SUPERUSER"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
