package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/dto/request"
)

type fakeAuthAPI struct {
	profileUser *entity.User
	profileErr  error
	loginUser   *entity.User
	loginErr    error
	logoutErr   error

	loginCalls  int
	logoutCalls int
}

func (f *fakeAuthAPI) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	f.loginCalls++
	return f.loginUser, f.loginErr
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuthAPI) Profile(ctx context.Context) (*entity.User, error) {
	return f.profileUser, f.profileErr
}

func (f *fakeAuthAPI) RegisterCustomer(ctx context.Context, req *request.CustomerRegisterRequest) (*entity.User, error) {
	return &entity.User{ID: "new", Email: req.Email, Roles: []entity.Role{entity.RoleCustomer}}, nil
}

func (f *fakeAuthAPI) RegisterSeller(ctx context.Context, req *request.SellerRegisterRequest) (*entity.User, error) {
	return &entity.User{ID: "new", Email: req.Email, Roles: []entity.Role{entity.RoleSeller}}, nil
}

func customerUser() *entity.User {
	return &entity.User{
		ID:    "u1",
		Email: "budi@example.com",
		Roles: []entity.Role{entity.RoleCustomer},
	}
}

func TestSession_StartsLoading(t *testing.T) {
	session := NewSessionService(&fakeAuthAPI{}, zap.NewNop())

	assert.Equal(t, SessionLoading, session.State())
	assert.Nil(t, session.Current())
	assert.False(t, session.IsAuthenticated())
	assert.False(t, session.HasRole(entity.RoleCustomer))
}

func TestSession_InitializeRestoresSession(t *testing.T) {
	api := &fakeAuthAPI{profileUser: customerUser()}
	session := NewSessionService(api, zap.NewNop())

	session.Initialize(context.Background())

	assert.Equal(t, SessionAuthenticated, session.State())
	require.NotNil(t, session.Current())
	assert.Equal(t, "u1", session.Current().ID)
	assert.True(t, session.IsCustomer())
}

func TestSession_InitializeWithoutSessionIsAnonymous(t *testing.T) {
	api := &fakeAuthAPI{profileErr: errors.New("401 Unauthorized")}
	session := NewSessionService(api, zap.NewNop())

	session.Initialize(context.Background())

	// Gagal restore bukan error, cuma belum login
	assert.Equal(t, SessionAnonymous, session.State())
	assert.Nil(t, session.Current())
}

func TestSession_LoginReplacesIdentity(t *testing.T) {
	api := &fakeAuthAPI{profileErr: errors.New("401")}
	session := NewSessionService(api, zap.NewNop())
	session.Initialize(context.Background())

	api.loginUser = customerUser()
	user, err := session.Login(context.Background(), &request.LoginRequest{
		Email:    "budi@example.com",
		Password: "rahasia1",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	assert.True(t, session.IsAuthenticated())
	assert.True(t, session.IsCustomer())
	assert.False(t, session.IsSeller())
	assert.False(t, session.IsAdmin())
}

func TestSession_LoginValidation(t *testing.T) {
	api := &fakeAuthAPI{}
	session := NewSessionService(api, zap.NewNop())

	_, err := session.Login(context.Background(), &request.LoginRequest{
		Email:    "bukan-email",
		Password: "",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Equal(t, 0, api.loginCalls)
}

func TestSession_LoginFailureKeepsState(t *testing.T) {
	api := &fakeAuthAPI{profileUser: customerUser()}
	session := NewSessionService(api, zap.NewNop())
	session.Initialize(context.Background())

	api.loginErr = errors.New("invalid credentials")
	_, err := session.Login(context.Background(), &request.LoginRequest{
		Email:    "lain@example.com",
		Password: "salah123",
	})
	require.Error(t, err)

	// Identity lama tidak tersentuh
	assert.Equal(t, SessionAuthenticated, session.State())
	assert.Equal(t, "u1", session.Current().ID)
}

func TestSession_Logout(t *testing.T) {
	api := &fakeAuthAPI{profileUser: customerUser()}
	session := NewSessionService(api, zap.NewNop())
	session.Initialize(context.Background())

	require.NoError(t, session.Logout(context.Background()))

	assert.Equal(t, SessionAnonymous, session.State())
	assert.Nil(t, session.Current())
}

func TestSession_LogoutFailureLeavesSessionIntact(t *testing.T) {
	api := &fakeAuthAPI{profileUser: customerUser(), logoutErr: errors.New("500")}
	session := NewSessionService(api, zap.NewNop())
	session.Initialize(context.Background())

	err := session.Logout(context.Background())
	require.Error(t, err)

	assert.Equal(t, SessionAuthenticated, session.State())
	require.NotNil(t, session.Current())
	assert.Equal(t, "u1", session.Current().ID)
}

func TestSession_RefreshProfileFailureClearsIdentity(t *testing.T) {
	api := &fakeAuthAPI{profileUser: customerUser()}
	session := NewSessionService(api, zap.NewNop())
	session.Initialize(context.Background())

	api.profileUser = nil
	api.profileErr = errors.New("session expired")

	err := session.RefreshProfile(context.Background())
	require.Error(t, err)
	assert.Equal(t, SessionAnonymous, session.State())
	assert.Nil(t, session.Current())
}

func TestSession_HasAnyRole(t *testing.T) {
	admin := &entity.User{
		ID:    "a1",
		Email: "admin@example.com",
		Roles: []entity.Role{entity.RoleAdmin},
	}

	tests := []struct {
		name  string
		user  *entity.User
		roles []entity.Role
		want  bool
	}{
		{name: "empty set always false", user: admin, roles: nil, want: false},
		{name: "matching role", user: admin, roles: []entity.Role{entity.RoleAdmin}, want: true},
		{name: "one of several", user: admin, roles: []entity.Role{entity.RoleSeller, entity.RoleAdmin}, want: true},
		{name: "no overlap", user: admin, roles: []entity.Role{entity.RoleCustomer, entity.RoleSeller}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAuthAPI{profileUser: tt.user}
			session := NewSessionService(api, zap.NewNop())
			session.Initialize(context.Background())

			assert.Equal(t, tt.want, session.HasAnyRole(tt.roles))
		})
	}
}

func TestSession_HasAnyRoleAnonymous(t *testing.T) {
	api := &fakeAuthAPI{profileErr: errors.New("401")}
	session := NewSessionService(api, zap.NewNop())
	session.Initialize(context.Background())

	assert.False(t, session.HasAnyRole([]entity.Role{entity.RoleCustomer, entity.RoleSeller, entity.RoleAdmin}))
}
