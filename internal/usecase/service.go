package usecase

import (
	"marketplace-storefront/internal/data/remote"
	"marketplace-storefront/internal/query"

	"go.uber.org/zap"
)

type Service struct {
	Session  SessionService
	Catalog  CatalogService
	Cart     CartService
	Order    OrderService
	Review   ReviewService
	Wishlist WishlistService
	Seller   SellerService
	Admin    AdminService
	Customer CustomerService
}

func NewService(api *remote.API, cache *query.Cache, log *zap.Logger) *Service {
	// Session dibuat duluan; service lain pakai state-nya untuk gating
	session := NewSessionService(api.Auth, log)

	return &Service{
		Session:  session,
		Catalog:  NewCatalogService(api, cache, log),
		Cart:     NewCartService(api, cache, session, log),
		Order:    NewOrderService(api, cache, session, log),
		Review:   NewReviewService(api, cache, log),
		Wishlist: NewWishlistService(api, cache, session, log),
		Seller:   NewSellerService(api, cache, session, log),
		Admin:    NewAdminService(api, cache, log),
		Customer: NewCustomerService(api, session, log),
	}
}
