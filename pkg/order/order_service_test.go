package order

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/entities"
	"FreshBasket-Backend/internal/testutil"
	"FreshBasket-Backend/pkg/cart"
	"FreshBasket-Backend/pkg/catalog"
	"FreshBasket-Backend/pkg/guestcart"
	"FreshBasket-Backend/pkg/payment"
	"FreshBasket-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testGatewaySecret = "s3cr3t"

type orderFixture struct {
	db          *gorm.DB
	service     OrderService
	cartService cart.CartService
	repository  OrderRepository
	userID      string
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := testutil.OpenTestDB(t)

	cartRepository := cart.NewCartRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	orderRepository := NewOrderRepository(db)
	paymentService := payment.NewPaymentServiceWithKeys("rzp_test_key", testGatewaySecret)

	userID := uuid.New()
	require.NoError(t, db.Create(&entities.User{
		ID:       userID,
		Email:    "shopper@example.com",
		FullName: "Test Shopper",
		Provider: "local",
		Role:     domain.RoleUser,
	}).Error)

	return &orderFixture{
		db:      db,
		service: NewOrderService(orderRepository, cartRepository, user.NewUserRepository(db), paymentService),
		cartService: cart.NewCartService(
			cartRepository,
			guestcart.NewGuestCartRepository(db),
			catalogRepository,
		),
		repository: orderRepository,
		userID:     userID.String(),
	}
}

func (f *orderFixture) seedProduct(t *testing.T, name string, price float64) entities.Product {
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

func (f *orderFixture) fillCart(t *testing.T, price float64, quantity float64) entities.Product {
	t.Helper()
	product := f.seedProduct(t, "Item", price)
	require.NoError(t, f.cartService.Add(context.Background(), f.userID, domain.AddToCartRequest{
		ProductID: product.ID.String(),
		Quantity:  quantity,
	}))
	return product
}

func testAddress() domain.OrderAddressRequest {
	return domain.OrderAddressRequest{
		FullName:     "Test Shopper",
		Phone:        "9876543210",
		AddressLine1: "42 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		PostalCode:   "560001",
	}
}

func signPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testGatewaySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestDeliveryFeeFor(t *testing.T) {
	assert.Equal(t, 50.0, DeliveryFeeFor(0))
	assert.Equal(t, 50.0, DeliveryFeeFor(499.99))
	assert.Equal(t, 0.0, DeliveryFeeFor(500))
	assert.Equal(t, 0.0, DeliveryFeeFor(1200))
}

func TestPaymentStatusFor(t *testing.T) {
	assert.Equal(t, domain.PaymentStatusPending, PaymentStatusFor(domain.PaymentMethodCOD, ""))
	assert.Equal(t, domain.PaymentStatusPending, PaymentStatusFor(domain.PaymentMethodCOD, "pay_123"))
	assert.Equal(t, domain.PaymentStatusPending, PaymentStatusFor(domain.PaymentMethodOnline, ""))
	assert.Equal(t, domain.PaymentStatusPaid, PaymentStatusFor(domain.PaymentMethodOnline, "pay_123"))
}

func TestCreateOrderCOD(t *testing.T) {
	f := newOrderFixture(t)
	product := f.fillCart(t, 40, 3) // subtotal 120

	order, err := f.service.CreateOrder(context.Background(), f.userID, domain.CreateOrderRequest{
		Address:       testAddress(),
		PaymentMethod: domain.PaymentMethodCOD,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, domain.OrderNumberPrefix))
	assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, 120.0, order.Subtotal)
	assert.Equal(t, 50.0, order.DeliveryFee)
	assert.Equal(t, 170.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID.String(), order.Items[0].ProductID)
	assert.Equal(t, 40.0, order.Items[0].UnitPrice)

	// Checkout empties the cart.
	cartAfter, err := f.cartService.List(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Empty(t, cartAfter.Items)
}

func TestCreateOrderFreeDeliveryAtThreshold(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 100, 5) // subtotal exactly 500

	order, err := f.service.CreateOrder(context.Background(), f.userID, domain.CreateOrderRequest{
		Address:       testAddress(),
		PaymentMethod: domain.PaymentMethodCOD,
	})
	require.NoError(t, err)

	assert.Equal(t, 500.0, order.Subtotal)
	assert.Equal(t, 0.0, order.DeliveryFee)
	assert.Equal(t, 500.0, order.Total)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.service.CreateOrder(context.Background(), f.userID, domain.CreateOrderRequest{
		Address:       testAddress(),
		PaymentMethod: domain.PaymentMethodCOD,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCreateOrderInvalidPaymentMethod(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 40, 1)

	_, err := f.service.CreateOrder(context.Background(), f.userID, domain.CreateOrderRequest{
		Address:       testAddress(),
		PaymentMethod: "upi",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
}

func TestCreateOrderOnlineVerified(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 40, 1)

	order, err := f.service.CreateOrder(context.Background(), f.userID, domain.CreateOrderRequest{
		Address:          testAddress(),
		PaymentMethod:    domain.PaymentMethodOnline,
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_xyz",
		GatewaySignature: signPayment("order_abc", "pay_xyz"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPaid, order.PaymentStatus)
}

func TestCreateOrderOnlineBadSignatureAborts(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 40, 1)

	_, err := f.service.CreateOrder(context.Background(), f.userID, domain.CreateOrderRequest{
		Address:          testAddress(),
		PaymentMethod:    domain.PaymentMethodOnline,
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_xyz",
		GatewaySignature: "forged",
	})
	assert.ErrorIs(t, err, domain.ErrPaymentNotVerified)

	// The aborted checkout leaves the cart untouched.
	cartAfter, err := f.cartService.List(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Len(t, cartAfter.Items, 1)

	var count int64
	require.NoError(t, f.db.Model(&entities.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateOrderOnlineWithoutPaymentIDStaysPending(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 40, 1)

	order, err := f.service.CreateOrder(context.Background(), f.userID, domain.CreateOrderRequest{
		Address:       testAddress(),
		PaymentMethod: domain.PaymentMethodOnline,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
}

func TestOrderFreezesPricesAndAddress(t *testing.T) {
	f := newOrderFixture(t)
	product := f.fillCart(t, 40, 2)

	ctx := context.Background()
	created, err := f.service.CreateOrder(ctx, f.userID, domain.CreateOrderRequest{
		Address:       testAddress(),
		PaymentMethod: domain.PaymentMethodCOD,
	})
	require.NoError(t, err)

	// Neither a catalog price change nor an address edit may reach into a
	// placed order.
	require.NoError(t, f.db.Model(&entities.Product{}).Where("id = ?", product.ID).Update("price", 99).Error)
	require.NoError(t, f.db.Model(&entities.Address{}).Where("user_id = ?", f.userID).Update("city", "Mumbai").Error)

	fetched, err := f.service.GetOrder(ctx, created.ID, f.userID)
	require.NoError(t, err)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, 40.0, fetched.Items[0].UnitPrice)
	assert.Equal(t, 80.0, fetched.Items[0].TotalPrice)
	assert.Equal(t, "Bengaluru", fetched.DeliveryAddress.City)
}

func TestCreateOrderSavesAddress(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 40, 1)

	ctx := context.Background()
	_, err := f.service.CreateOrder(ctx, f.userID, domain.CreateOrderRequest{
		Address:       testAddress(),
		PaymentMethod: domain.PaymentMethodCOD,
	})
	require.NoError(t, err)

	addresses, err := f.service.GetAddresses(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "560001", addresses[0].PostalCode)
}

func TestGetOrderScopedToOwner(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 40, 1)

	ctx := context.Background()
	created, err := f.service.CreateOrder(ctx, f.userID, domain.CreateOrderRequest{
		Address:       testAddress(),
		PaymentMethod: domain.PaymentMethodCOD,
	})
	require.NoError(t, err)

	_, err = f.service.GetOrder(ctx, created.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestCreateOrderWithItemsRollsBackHeader(t *testing.T) {
	f := newOrderFixture(t)

	sharedID := uuid.New()
	order := &entities.Order{
		ID:          uuid.New(),
		UserID:      uuid.MustParse(f.userID),
		OrderNumber: "FB1",
		Status:      domain.OrderStatusConfirmed,
	}
	items := []*entities.OrderItem{
		{ID: sharedID, OrderID: order.ID, ProductID: uuid.New(), Quantity: 1},
		{ID: sharedID, OrderID: order.ID, ProductID: uuid.New(), Quantity: 1},
	}

	err := f.repository.CreateOrderWithItems(context.Background(), order, items)
	require.Error(t, err)

	// The failed second item must take the header down with it.
	var count int64
	require.NoError(t, f.db.Model(&entities.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetUserOrdersNewestFirst(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	f.fillCart(t, 40, 1)
	first, err := f.service.CreateOrder(ctx, f.userID, domain.CreateOrderRequest{
		Address:       testAddress(),
		PaymentMethod: domain.PaymentMethodCOD,
	})
	require.NoError(t, err)

	// Order numbers derive from the wall clock with millisecond
	// resolution; keep the two checkouts apart.
	time.Sleep(5 * time.Millisecond)

	f.fillCart(t, 100, 1)
	second, err := f.service.CreateOrder(ctx, f.userID, domain.CreateOrderRequest{
		Address:       testAddress(),
		PaymentMethod: domain.PaymentMethodCOD,
	})
	require.NoError(t, err)

	orders, err := f.service.GetUserOrders(ctx, f.userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
}
