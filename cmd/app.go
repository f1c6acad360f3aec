package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"marketplace-storefront/internal/usecase"
	"marketplace-storefront/internal/wire"
)

// Run menginisialisasi session lalu warm-up cache katalog. Dipanggil
// sekali saat aplikasi start.
func Run(ctx context.Context, app *wire.App, log *zap.Logger) error {
	// Resolve session dari cookie yang tersimpan
	app.Service.Session.Initialize(ctx)

	state := app.Service.Session.State()
	log.Info("Session resolved", zap.String("state", state.String()))

	if state == usecase.SessionAuthenticated {
		user := app.Service.Session.Current()
		fmt.Printf("Signed in as %s\n", user.Email)
	}

	// Warm-up: kategori dan halaman pertama produk
	if _, err := app.Service.Catalog.Categories(ctx); err != nil {
		log.Warn("Category warm-up failed", zap.Error(err))
	}
	if _, err := app.Service.Catalog.Products(ctx, nil); err != nil {
		log.Warn("Product warm-up failed", zap.Error(err))
	}

	return nil
}
