package cart

import (
	"context"
	"testing"
	"time"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/entities"
	"FreshBasket-Backend/internal/testutil"
	"FreshBasket-Backend/pkg/catalog"
	"FreshBasket-Backend/pkg/guestcart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type cartFixture struct {
	db        *gorm.DB
	service   CartService
	guestCart guestcart.GuestCartService
	userID    string
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	db := testutil.OpenTestDB(t)

	guestCartRepository := guestcart.NewGuestCartRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)

	return &cartFixture{
		db:        db,
		service:   NewCartService(NewCartRepository(db), guestCartRepository, catalogRepository),
		guestCart: guestcart.NewGuestCartService(guestCartRepository, catalogRepository),
		userID:    uuid.NewString(),
	}
}

func (f *cartFixture) seedProduct(t *testing.T, name string, price float64) entities.Product {
	t.Helper()
	product := entities.Product{
		ID:         uuid.New(),
		Name:       name,
		Price:      price,
		Unit:       "kg",
		CategoryID: uuid.New(),
		IsActive:   true,
	}
	require.NoError(t, f.db.Create(&product).Error)
	return product
}

func TestAddAndListUsesLivePrices(t *testing.T) {
	f := newCartFixture(t)
	tomato := f.seedProduct(t, "Tomato", 40)
	butter := f.seedProduct(t, "Butter", 120)

	ctx := context.Background()
	require.NoError(t, f.service.Add(ctx, f.userID, domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 2}))
	require.NoError(t, f.service.Add(ctx, f.userID, domain.AddToCartRequest{ProductID: butter.ID.String(), Quantity: 1}))

	cart, err := f.service.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 200.0, cart.Total)
	assert.Equal(t, 3.0, cart.ItemCount)

	// The signed-in cart reprices from the catalog on every read.
	require.NoError(t, f.db.Model(&entities.Product{}).Where("id = ?", tomato.ID).Update("price", 50).Error)

	cart, err = f.service.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Equal(t, 220.0, cart.Total)
}

func TestAddSameProductIncrementsLine(t *testing.T) {
	f := newCartFixture(t)
	tomato := f.seedProduct(t, "Tomato", 40)

	ctx := context.Background()
	require.NoError(t, f.service.Add(ctx, f.userID, domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 1}))
	require.NoError(t, f.service.Add(ctx, f.userID, domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 2}))

	cart, err := f.service.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3.0, cart.Items[0].Quantity)
}

func TestAddAccumulatesWeight(t *testing.T) {
	f := newCartFixture(t)
	paneer := f.seedProduct(t, "Paneer", 90)

	ctx := context.Background()
	first := 250.0
	second := 500.0
	require.NoError(t, f.service.Add(ctx, f.userID, domain.AddToCartRequest{ProductID: paneer.ID.String(), Quantity: 1, WeightInGrams: &first}))
	require.NoError(t, f.service.Add(ctx, f.userID, domain.AddToCartRequest{ProductID: paneer.ID.String(), Quantity: 1, WeightInGrams: &second}))

	cart, err := f.service.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.NotNil(t, cart.Items[0].WeightInGrams)
	assert.Equal(t, 750.0, *cart.Items[0].WeightInGrams)
}

func TestUpdateToZeroRemovesLine(t *testing.T) {
	f := newCartFixture(t)
	tomato := f.seedProduct(t, "Tomato", 40)

	ctx := context.Background()
	require.NoError(t, f.service.Add(ctx, f.userID, domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 2}))

	cart, err := f.service.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	require.NoError(t, f.service.Update(ctx, cart.Items[0].ID, f.userID, domain.UpdateCartItemRequest{Quantity: 0}))

	cart, err = f.service.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateRejectsOtherUsersItem(t *testing.T) {
	f := newCartFixture(t)
	tomato := f.seedProduct(t, "Tomato", 40)

	ctx := context.Background()
	require.NoError(t, f.service.Add(ctx, f.userID, domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 2}))

	cart, err := f.service.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	intruder := uuid.NewString()
	err = f.service.Update(ctx, cart.Items[0].ID, intruder, domain.UpdateCartItemRequest{Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	err = f.service.Remove(ctx, cart.Items[0].ID, intruder)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestMergeGuestCartCombinesQuantities(t *testing.T) {
	f := newCartFixture(t)
	tomato := f.seedProduct(t, "Tomato", 40)
	butter := f.seedProduct(t, "Butter", 120)

	ctx := context.Background()
	guestID := "guest-1"
	require.NoError(t, f.guestCart.Add(ctx, guestID, domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 2}))
	require.NoError(t, f.guestCart.Add(ctx, guestID, domain.AddToCartRequest{ProductID: butter.ID.String(), Quantity: 1}))
	require.NoError(t, f.service.Add(ctx, f.userID, domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 3}))

	require.NoError(t, f.service.MergeGuestCart(ctx, guestID, f.userID))

	cart, err := f.service.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	byProduct := map[string]float64{}
	for _, item := range cart.Items {
		byProduct[item.ProductID] = item.Quantity
	}
	assert.Equal(t, 5.0, byProduct[tomato.ID.String()])
	assert.Equal(t, 1.0, byProduct[butter.ID.String()])

	guest, err := f.guestCart.List(ctx, guestID)
	require.NoError(t, err)
	assert.Empty(t, guest.Items)
}

func TestMergeGuestCartCarriesWeight(t *testing.T) {
	f := newCartFixture(t)
	paneer := f.seedProduct(t, "Paneer", 90)

	ctx := context.Background()
	guestID := "guest-1"
	weight := 500.0
	require.NoError(t, f.guestCart.Add(ctx, guestID, domain.AddToCartRequest{ProductID: paneer.ID.String(), Quantity: 1, WeightInGrams: &weight}))

	require.NoError(t, f.service.MergeGuestCart(ctx, guestID, f.userID))

	cart, err := f.service.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.NotNil(t, cart.Items[0].WeightInGrams)
	assert.Equal(t, 500.0, *cart.Items[0].WeightInGrams)
}

func TestMergeGuestCartRequiresGuestID(t *testing.T) {
	f := newCartFixture(t)
	err := f.service.MergeGuestCart(context.Background(), "", f.userID)
	assert.ErrorIs(t, err, domain.ErrGuestIDRequired)
}

func TestMergeGuestCartStopsOnFailureKeepingRemainingLines(t *testing.T) {
	f := newCartFixture(t)
	tomato := f.seedProduct(t, "Tomato", 40)

	ctx := context.Background()
	guestID := "guest-1"

	// The second line points at a product that no longer exists; its
	// migration fails and it must stay in the guest cart.
	good := entities.GuestCartItem{
		ID: uuid.New(), GuestID: guestID, ProductID: tomato.ID,
		Quantity: 2, ProductName: "Tomato", ProductPrice: 40,
	}
	good.CreatedAt = time.Now()
	orphan := entities.GuestCartItem{
		ID: uuid.New(), GuestID: guestID, ProductID: uuid.New(),
		Quantity: 1, ProductName: "Ghost", ProductPrice: 10,
	}
	orphan.CreatedAt = time.Now().Add(-time.Minute)
	require.NoError(t, f.db.Create(&good).Error)
	require.NoError(t, f.db.Create(&orphan).Error)

	err := f.service.MergeGuestCart(ctx, guestID, f.userID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	cart, err := f.service.List(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, tomato.ID.String(), cart.Items[0].ProductID)

	guest, err := f.guestCart.List(ctx, guestID)
	require.NoError(t, err)
	require.Len(t, guest.Items, 1)
	assert.Equal(t, "Ghost", guest.Items[0].ProductName)
}

func TestClearCart(t *testing.T) {
	f := newCartFixture(t)
	tomato := f.seedProduct(t, "Tomato", 40)

	ctx := context.Background()
	require.NoError(t, f.service.Add(ctx, f.userID, domain.AddToCartRequest{ProductID: tomato.ID.String(), Quantity: 2}))
	require.NoError(t, f.service.Clear(ctx, f.userID))

	cart, err := f.service.List(ctx, f.userID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
