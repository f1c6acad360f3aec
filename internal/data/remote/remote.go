package remote

import (
	"marketplace-storefront/pkg/httpclient"

	"go.uber.org/zap"
)

// API mengelompokkan semua resource module (satu per backend resource).
type API struct {
	Auth     AuthAPI
	Product  ProductAPI
	Category CategoryAPI
	Cart     CartAPI
	Order    OrderAPI
	Review   ReviewAPI
	Seller   SellerAPI
	Customer CustomerAPI
	Admin    AdminAPI
}

func NewAPI(client httpclient.Doer, log *zap.Logger) *API {
	return &API{
		Auth:     NewAuthAPI(client, log),
		Product:  NewProductAPI(client, log),
		Category: NewCategoryAPI(client, log),
		Cart:     NewCartAPI(client, log),
		Order:    NewOrderAPI(client, log),
		Review:   NewReviewAPI(client, log),
		Seller:   NewSellerAPI(client, log),
		Customer: NewCustomerAPI(client, log),
		Admin:    NewAdminAPI(client, log),
	}
}
