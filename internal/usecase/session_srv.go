package usecase

import (
	"context"
	"fmt"
	"sync"

	"marketplace-storefront/internal/data/entity"
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/dto/request"
	"marketplace-storefront/pkg/utils"

	"go.uber.org/zap"
)

// SessionState adalah lifecycle identity: Loading sampai profile fetch
// pertama selesai, lalu Anonymous atau Authenticated.
type SessionState int

const (
	SessionLoading SessionState = iota
	SessionAnonymous
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// SessionService adalah single source of truth identity user saat ini.
// Hanya service ini yang boleh mengubah identity.
type SessionService interface {
	// Initialize dipanggil sekali di process start. Selalu berakhir di
	// state non-Loading: gagal fetch profile (401, network, malformed)
	// berarti Anonymous, bukan error.
	Initialize(ctx context.Context)
	Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error)
	Logout(ctx context.Context) error
	RegisterCustomer(ctx context.Context, req *request.CustomerRegisterRequest) (*entity.User, error)
	RegisterSeller(ctx context.Context, req *request.SellerRegisterRequest) (*entity.User, error)
	RefreshProfile(ctx context.Context) error
	State() SessionState
	Current() *entity.User
	HasRole(role entity.Role) bool
	HasAnyRole(roles []entity.Role) bool
	IsAuthenticated() bool
	IsCustomer() bool
	IsSeller() bool
	IsAdmin() bool
}

type sessionService struct {
	api remote.AuthAPI
	log *zap.Logger

	mu    sync.RWMutex
	state SessionState
	user  *entity.User
}

func NewSessionService(api remote.AuthAPI, log *zap.Logger) SessionService {
	return &sessionService{
		api:   api,
		log:   log.With(zap.String("service", "session")),
		state: SessionLoading,
	}
}

func (s *sessionService) Initialize(ctx context.Context) {
	// Coba restore session dari cookie (server yang menilai validitas).
	user, err := s.api.Profile(ctx)
	if err != nil {
		// 401 di sini artinya "belum login", bukan error
		s.set(SessionAnonymous, nil)
		s.log.Debug("No active session", zap.Error(err))
		return
	}

	s.set(SessionAuthenticated, user)
	s.log.Info("Session restored",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))
}

func (s *sessionService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Call login; kalau gagal, state dibiarkan apa adanya
	user, err := s.api.Login(ctx, req)
	if err != nil {
		s.log.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	// 3. Sukses: replace identity unconditionally
	s.set(SessionAuthenticated, user)
	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.Any("roles", user.Roles))

	return user, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		// Logout gagal: identity sengaja dibiarkan (kontrak yang diamati)
		s.log.Warn("Logout failed, session left intact", zap.Error(err))
		return err
	}

	s.set(SessionAnonymous, nil)
	s.log.Info("User logged out")
	return nil
}

func (s *sessionService) RegisterCustomer(ctx context.Context, req *request.CustomerRegisterRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Customer registration validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Register tidak mengubah session; user login terpisah setelahnya
	user, err := s.api.RegisterCustomer(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.Info("Customer registered", zap.String("user_id", user.ID))
	return user, nil
}

func (s *sessionService) RegisterSeller(ctx context.Context, req *request.SellerRegisterRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Seller registration validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.api.RegisterSeller(ctx, req)
	if err != nil {
		return nil, err
	}

	s.log.Info("Seller registered", zap.String("user_id", user.ID))
	return user, nil
}

// RefreshProfile fetch ulang profile. Gagal berarti session dianggap
// hilang dan identity di-clear (kontrak yang sama dengan startup fetch).
func (s *sessionService) RefreshProfile(ctx context.Context) error {
	user, err := s.api.Profile(ctx)
	if err != nil {
		s.set(SessionAnonymous, nil)
		s.log.Warn("Profile refresh failed, session cleared", zap.Error(err))
		return err
	}

	s.set(SessionAuthenticated, user)
	return nil
}

func (s *sessionService) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *sessionService) Current() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *sessionService) HasRole(role entity.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// False saat Loading maupun Anonymous
	return s.state == SessionAuthenticated && s.user.HasRole(role)
}

func (s *sessionService) HasAnyRole(roles []entity.Role) bool {
	// Set kosong selalu false
	for _, role := range roles {
		if s.HasRole(role) {
			return true
		}
	}
	return false
}

func (s *sessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == SessionAuthenticated
}

func (s *sessionService) IsCustomer() bool { return s.HasRole(entity.RoleCustomer) }
func (s *sessionService) IsSeller() bool   { return s.HasRole(entity.RoleSeller) }
func (s *sessionService) IsAdmin() bool    { return s.HasRole(entity.RoleAdmin) }

func (s *sessionService) set(state SessionState, user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
}
