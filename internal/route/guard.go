package route

import (
	"go.uber.org/zap"

	"marketplace-storefront/internal/usecase"
)

const (
	LoginPath = "/login"
	HomePath  = "/"
)

type DecisionKind int

const (
	// DecisionWait: session masih loading, tahan render dan jangan redirect.
	DecisionWait DecisionKind = iota
	// DecisionAllow: user boleh masuk.
	DecisionAllow
	// DecisionRedirect: alihkan ke Location.
	DecisionRedirect
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionWait:
		return "wait"
	case DecisionAllow:
		return "allow"
	case DecisionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decision adalah hasil evaluasi guard untuk satu navigasi. From hanya
// terisi saat redirect ke login, supaya user bisa dikembalikan ke
// halaman asal setelah berhasil login.
type Decision struct {
	Kind     DecisionKind
	Location string
	From     string
}

type Guard interface {
	Check(rule Rule, from string) Decision
	CheckPath(path string) Decision
}

type guard struct {
	session usecase.SessionService
	rules   []Rule
	log     *zap.Logger
}

func NewGuard(session usecase.SessionService, rules []Rule, log *zap.Logger) Guard {
	return &guard{
		session: session,
		rules:   rules,
		log:     log.With(zap.String("service", "guard")),
	}
}

// Check mengevaluasi rule dengan urutan tetap: loading dicek sebelum
// auth, auth sebelum role. Redirect karena belum login membawa path
// asal; redirect karena role salah selalu ke home tanpa membawa asal.
func (g *guard) Check(rule Rule, from string) Decision {
	// 1. Session belum selesai resolve, jangan ambil keputusan dulu
	if g.session.State() == usecase.SessionLoading {
		return Decision{Kind: DecisionWait}
	}

	// 2. Wajib login tapi anonymous
	if rule.RequireAuth && !g.session.IsAuthenticated() {
		g.log.Debug("redirecting unauthenticated user to login", zap.String("from", from))
		return Decision{Kind: DecisionRedirect, Location: LoginPath, From: from}
	}

	// 3. Login tapi role tidak cocok
	if len(rule.AllowedRoles) > 0 && !g.session.HasAnyRole(rule.AllowedRoles) {
		g.log.Debug("redirecting user without required role to home", zap.String("from", from))
		return Decision{Kind: DecisionRedirect, Location: HomePath}
	}

	// 4. Lolos
	return Decision{Kind: DecisionAllow}
}

// CheckPath me-resolve path terhadap route table. Path yang tidak
// match rule mana pun adalah route publik dan langsung boleh masuk,
// bahkan saat session masih loading.
func (g *guard) CheckPath(path string) Decision {
	rule, ok := Resolve(g.rules, path)
	if !ok {
		return Decision{Kind: DecisionAllow}
	}
	return g.Check(rule, path)
}
