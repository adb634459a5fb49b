package guestcart

import (
	"context"
	"testing"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/entities"
	"FreshBasket-Backend/internal/testutil"
	"FreshBasket-Backend/pkg/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestGuestCartService(t *testing.T) (GuestCartService, *gorm.DB) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	return NewGuestCartService(NewGuestCartRepository(db), catalog.NewCatalogRepository(db)), db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) entities.Product {
	t.Helper()
	product := entities.Product{
		ID:         uuid.New(),
		Name:       name,
		Price:      price,
		Unit:       "kg",
		CategoryID: uuid.New(),
		IsActive:   true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestGuestAddSnapshotsProduct(t *testing.T) {
	service, db := newTestGuestCartService(t)
	tomato := seedProduct(t, db, "Tomato", 40)

	err := service.Add(context.Background(), "guest-1", domain.AddToCartRequest{
		ProductID: tomato.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)

	cart, err := service.List(context.Background(), "guest-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Tomato", cart.Items[0].ProductName)
	assert.Equal(t, 40.0, cart.Items[0].ProductPrice)
	assert.Equal(t, 80.0, cart.Total)
	assert.Equal(t, 2.0, cart.ItemCount)
}

func TestGuestAddSameProductIncrementsLine(t *testing.T) {
	service, db := newTestGuestCartService(t)
	tomato := seedProduct(t, db, "Tomato", 40)

	ctx := context.Background()
	require.NoError(t, service.Add(ctx, "guest-1", domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 2}))
	require.NoError(t, service.Add(ctx, "guest-1", domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 3}))

	cart, err := service.List(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5.0, cart.Items[0].Quantity)
}

func TestGuestCartKeepsSnapshotPrice(t *testing.T) {
	service, db := newTestGuestCartService(t)
	tomato := seedProduct(t, db, "Tomato", 40)

	ctx := context.Background()
	require.NoError(t, service.Add(ctx, "guest-1", domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 1}))

	// A later catalog price change must not alter an existing guest line.
	require.NoError(t, db.Model(&entities.Product{}).Where("id = ?", tomato.ID).Update("price", 60).Error)

	cart, err := service.List(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 40.0, cart.Items[0].ProductPrice)
	assert.Equal(t, 40.0, cart.Total)
}

func TestGuestCartsAreIsolatedByGuestID(t *testing.T) {
	service, db := newTestGuestCartService(t)
	tomato := seedProduct(t, db, "Tomato", 40)

	ctx := context.Background()
	require.NoError(t, service.Add(ctx, "guest-1", domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 2}))

	other, err := service.List(ctx, "guest-2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
	assert.Equal(t, 0.0, other.Total)
}

func TestGuestUpdateToZeroRemovesLine(t *testing.T) {
	service, db := newTestGuestCartService(t)
	tomato := seedProduct(t, db, "Tomato", 40)

	ctx := context.Background()
	require.NoError(t, service.Add(ctx, "guest-1", domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 2}))

	cart, err := service.List(ctx, "guest-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	require.NoError(t, service.Update(ctx, cart.Items[0].ID, domain.UpdateCartItemRequest{Quantity: 0}))

	cart, err = service.List(ctx, "guest-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestGuestAddUnknownProduct(t *testing.T) {
	service, _ := newTestGuestCartService(t)

	err := service.Add(context.Background(), "guest-1", domain.AddToCartRequest{
		ProductID: uuid.NewString(),
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGuestOperationsRequireGuestID(t *testing.T) {
	service, _ := newTestGuestCartService(t)
	ctx := context.Background()

	_, err := service.List(ctx, "")
	assert.ErrorIs(t, err, domain.ErrGuestIDRequired)

	err = service.Add(ctx, "", domain.AddToCartRequest{ProductID: uuid.NewString(), Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrGuestIDRequired)

	err = service.Clear(ctx, "")
	assert.ErrorIs(t, err, domain.ErrGuestIDRequired)
}

func TestGuestClear(t *testing.T) {
	service, db := newTestGuestCartService(t)
	tomato := seedProduct(t, db, "Tomato", 40)
	butter := seedProduct(t, db, "Butter", 120)

	ctx := context.Background()
	require.NoError(t, service.Add(ctx, "guest-1", domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 1}))
	require.NoError(t, service.Add(ctx, "guest-1", domain.AddToCartRequest{ProductID: butter.ID.String(), Quantity: 1}))

	require.NoError(t, service.Clear(ctx, "guest-1"))

	cart, err := service.List(ctx, "guest-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
