package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace-storefront/internal/dto/request"
)

func TestProductsKey(t *testing.T) {
	assert.Equal(t, "products", ProductsKey(nil))
	assert.Equal(t, "products", ProductsKey(&request.ProductListParams{}))

	// Params sama menghasilkan key sama, urutan field tidak ngaruh
	a := ProductsKey(&request.ProductListParams{CategoryID: "c1", Page: 2, Size: 20})
	b := ProductsKey(&request.ProductListParams{Size: 20, CategoryID: "c1", Page: 2})
	assert.Equal(t, a, b)

	// Params beda, key beda
	c := ProductsKey(&request.ProductListParams{CategoryID: "c2", Page: 2, Size: 20})
	assert.NotEqual(t, a, c)

	// Semua key produk tetap di bawah base "products"
	assert.True(t, matchPrefix(a, KeyProducts))
	assert.False(t, matchPrefix(a, KeyProduct))
}

func TestDetailKeysUnderOwnBase(t *testing.T) {
	assert.Equal(t, "product/p1", ProductKey("p1"))
	assert.Equal(t, "reviews/p1", ReviewsKey("p1"))
	assert.Equal(t, "orders/customer/u1", CustomerOrdersKey("u1"))
	assert.Equal(t, "orders/seller/s1", SellerOrdersKey("s1"))

	// Detail produk tidak kena invalidation listing dan sebaliknya
	assert.False(t, matchPrefix(ProductKey("p1"), KeyProducts))
	assert.False(t, matchPrefix(KeyProducts, KeyProduct))
}

func TestInvalidationPairs(t *testing.T) {
	assert.Equal(t, []string{"cart"}, CartInvalidations())
	assert.Equal(t, []string{"cart", "orders"}, CheckoutInvalidations())
	assert.Equal(t, []string{"seller-products", "products"}, ProductCreateInvalidations())
	assert.Equal(t, []string{"seller-products", "products", "product"}, ProductUpdateInvalidations())
	assert.Equal(t, []string{"pending-sellers", "admin-users"}, SellerVerifyInvalidations())
	assert.Equal(t, []string{"reviews/p7", "product/p7"}, ReviewInvalidations("p7"))
}
