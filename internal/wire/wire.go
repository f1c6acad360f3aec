// internal/wire/wire.go
package wire

import (
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/query"
	"marketplace-storefront/internal/route"
	"marketplace-storefront/internal/usecase"
	"marketplace-storefront/pkg/utils"

	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Service *usecase.Service
	Cache   *query.Cache
	Guard   route.Guard
}

// Wiring menginisialisasi semua dependencies
func Wiring(api *remote.API, config *utils.Config, logger *zap.Logger) *App {
	// Query cache dipakai bersama oleh semua service
	cache := query.NewCache(logger)

	// Initialize services
	service := usecase.NewService(api, cache, logger)

	// Route guard membaca state session
	guard := route.NewGuard(service.Session, route.Table(), logger)

	return &App{
		Service: service,
		Cache:   cache,
		Guard:   guard,
	}
}
