package query

import (
	"net/url"
	"strconv"

	"marketplace-storefront/internal/dto/request"
)

// Key naming: segment-segment dipisah '/'. Prefix invalidation match
// per segment penuh, jadi base "product" dan "products" tidak saling kena.
const (
	KeyProducts       = "products"
	KeyProduct        = "product"
	KeyCategories     = "categories"
	KeyCategoryProds  = "category-products"
	KeyCart           = "cart"
	KeyOrders         = "orders"
	KeyOrder          = "order"
	KeyReviews        = "reviews"
	KeyWishlist       = "wishlist"
	KeySellerStats    = "seller-stats"
	KeySellerProducts = "seller-products"
	KeyAdminStats     = "admin-stats"
	KeyAdminUsers     = "admin-users"
	KeyPendingSellers = "pending-sellers"
)

func ProductsKey(params *request.ProductListParams) string {
	if params == nil {
		return KeyProducts
	}

	q := url.Values{}
	if params.CategoryID != "" {
		q.Set("categoryId", params.CategoryID)
	}
	if params.SellerID != "" {
		q.Set("sellerId", params.SellerID)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Size > 0 {
		q.Set("size", strconv.Itoa(params.Size))
	}
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}

	if len(q) == 0 {
		return KeyProducts
	}
	// Encode sorts keys, jadi key deterministic untuk params yang sama
	return KeyProducts + "/" + q.Encode()
}

func ProductKey(id string) string { return KeyProduct + "/" + id }

func CategoryProductsKey(id string, page, size int) string {
	return KeyCategoryProds + "/" + id + "/" + strconv.Itoa(page) + "/" + strconv.Itoa(size)
}

func CustomerOrdersKey(customerID string) string { return KeyOrders + "/customer/" + customerID }
func SellerOrdersKey(sellerID string) string     { return KeyOrders + "/seller/" + sellerID }
func OrderKey(id string) string                  { return KeyOrder + "/" + id }
func ReviewsKey(productID string) string         { return KeyReviews + "/" + productID }
func WishlistKey(customerID string) string       { return KeyWishlist + "/" + customerID }
func SellerStatsKey(sellerID string) string      { return KeySellerStats + "/" + sellerID }
func SellerProductsKey(sellerID string) string   { return KeySellerProducts + "/" + sellerID }

// Pasangan mutation ke invalidation keys. Pure functions, dipakai lewat
// Cache.Mutate supaya hanya apply saat mutation sukses.

func CartInvalidations() []string     { return []string{KeyCart} }
func CheckoutInvalidations() []string { return []string{KeyCart, KeyOrders} }

func ProductCreateInvalidations() []string {
	return []string{KeySellerProducts, KeyProducts}
}

func ProductUpdateInvalidations() []string {
	return []string{KeySellerProducts, KeyProducts, KeyProduct}
}

// Delete sengaja tidak menyentuh base "product" (kontrak yang diamati).
func ProductDeleteInvalidations() []string {
	return []string{KeySellerProducts, KeyProducts}
}

func UserRolesInvalidations() []string    { return []string{KeyAdminUsers} }
func SellerVerifyInvalidations() []string { return []string{KeyPendingSellers, KeyAdminUsers} }
func CategoryInvalidations() []string     { return []string{KeyCategories} }
func WishlistInvalidations() []string     { return []string{KeyWishlist} }

func ReviewInvalidations(productID string) []string {
	return []string{ReviewsKey(productID), ProductKey(productID)}
}
