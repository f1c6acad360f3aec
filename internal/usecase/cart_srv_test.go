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

type fakeCartAPI struct {
	cart *entity.Cart

	getCalls int
	addErr   error
}

func (f *fakeCartAPI) Get(ctx context.Context) (*entity.Cart, error) {
	f.getCalls++
	return f.cart, nil
}

func (f *fakeCartAPI) AddItem(ctx context.Context, req *request.AddToCartRequest) (*entity.Cart, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.cart.Items = append(f.cart.Items, entity.CartItem{
		ID:       "item-new",
		Product:  entity.CartItemProduct{ID: req.ProductID},
		Quantity: req.Quantity,
	})
	return f.cart, nil
}

func (f *fakeCartAPI) UpdateItem(ctx context.Context, itemID string, req *request.UpdateCartItemRequest) (*entity.Cart, error) {
	return f.cart, nil
}

func (f *fakeCartAPI) RemoveItem(ctx context.Context, itemID string) (*entity.Cart, error) {
	return f.cart, nil
}

func (f *fakeCartAPI) Checkout(ctx context.Context) (*entity.Order, error) {
	return &entity.Order{ID: "o1", Status: entity.OrderPending}, nil
}

func newCartFixture(t *testing.T) (CartService, *fakeCartAPI, *query.Cache) {
	t.Helper()

	authAPI := &fakeAuthAPI{profileUser: customerUser()}
	session := NewSessionService(authAPI, zap.NewNop())
	session.Initialize(context.Background())

	cartAPI := &fakeCartAPI{cart: &entity.Cart{ID: "c1"}}
	cache := query.NewCache(zap.NewNop())
	service := NewCartService(&remote.API{Cart: cartAPI}, cache, session, zap.NewNop())

	return service, cartAPI, cache
}

func TestCart_ReadIsCached(t *testing.T) {
	service, api, _ := newCartFixture(t)
	ctx := context.Background()

	first, err := service.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, "c1", first.ID)

	_, err = service.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.getCalls)
}

func TestCart_ReadDisabledForAnonymous(t *testing.T) {
	authAPI := &fakeAuthAPI{profileErr: errors.New("401")}
	session := NewSessionService(authAPI, zap.NewNop())
	session.Initialize(context.Background())

	api := &fakeCartAPI{cart: &entity.Cart{ID: "c1"}}
	cache := query.NewCache(zap.NewNop())
	service := NewCartService(&remote.API{Cart: api}, cache, session, zap.NewNop())

	_, err := service.Cart(context.Background())
	require.ErrorIs(t, err, query.ErrDisabled)
	assert.Equal(t, 0, api.getCalls)
}

func TestCart_AddItemInvalidatesCart(t *testing.T) {
	service, api, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := service.Cart(ctx)
	require.NoError(t, err)

	cart, err := service.AddItem(ctx, &request.AddToCartRequest{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)

	// Cart query stale sekarang, read berikutnya refetch
	_, err = service.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, api.getCalls)
}

func TestCart_FailedAddLeavesCacheUntouched(t *testing.T) {
	service, api, _ := newCartFixture(t)
	ctx := context.Background()

	_, err := service.Cart(ctx)
	require.NoError(t, err)

	api.addErr = errors.New("insufficient stock")
	_, err = service.AddItem(ctx, &request.AddToCartRequest{ProductID: "p1", Quantity: 99})
	require.Error(t, err)

	// Cache masih fresh, tidak ada refetch
	_, err = service.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, api.getCalls)
}

func TestCart_AddItemValidation(t *testing.T) {
	service, _, _ := newCartFixture(t)

	_, err := service.AddItem(context.Background(), &request.AddToCartRequest{ProductID: "p1", Quantity: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCart_CheckoutInvalidatesCartAndOrders(t *testing.T) {
	service, api, cache := newCartFixture(t)
	ctx := context.Background()

	_, err := service.Cart(ctx)
	require.NoError(t, err)

	// Seed entry orders supaya kelihatan ikut stale
	ordersFetches := 0
	_, err = query.Fetch(ctx, cache, query.CustomerOrdersKey("u1"), cartStale, true,
		func(ctx context.Context) ([]entity.Order, error) {
			ordersFetches++
			return nil, nil
		})
	require.NoError(t, err)

	order, err := service.Checkout(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)

	_, err = service.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, api.getCalls)

	_, err = query.Fetch(ctx, cache, query.CustomerOrdersKey("u1"), cartStale, true,
		func(ctx context.Context) ([]entity.Order, error) {
			ordersFetches++
			return nil, nil
		})
	require.NoError(t, err)
	assert.Equal(t, 2, ordersFetches)
}
