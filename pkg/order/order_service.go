package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/entities"
	"FreshBasket-Backend/internal/utils"
	"FreshBasket-Backend/internal/utils/mailing"
	"FreshBasket-Backend/pkg/cart"
	"FreshBasket-Backend/pkg/payment"
	"FreshBasket-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	OrderService interface {
		CreateOrder(ctx context.Context, userID string, req domain.CreateOrderRequest) (domain.OrderResponse, error)
		GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error)
		GetOrder(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error)
		GetAddresses(ctx context.Context, userID string) ([]domain.AddressResponse, error)
		DeleteAddress(ctx context.Context, addressID string, userID string) error
	}

	orderService struct {
		orderRepository OrderRepository
		cartRepository  cart.CartRepository
		userRepository  user.UserRepository
		paymentService  payment.PaymentService
	}
)

func NewOrderService(
	orderRepository OrderRepository,
	cartRepository cart.CartRepository,
	userRepository user.UserRepository,
	paymentService payment.PaymentService,
) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		cartRepository:  cartRepository,
		userRepository:  userRepository,
		paymentService:  paymentService,
	}
}

// DeliveryFeeFor applies the flat fee below the free-delivery threshold.
func DeliveryFeeFor(subtotal float64) float64 {
	if subtotal >= domain.FreeDeliveryThreshold {
		return 0
	}
	return domain.DeliveryFee
}

// PaymentStatusFor is paid only for an online payment that carries a gateway
// payment id; cash on delivery is always pending.
func PaymentStatusFor(paymentMethod string, gatewayPaymentID string) string {
	if paymentMethod == domain.PaymentMethodOnline && gatewayPaymentID != "" {
		return domain.PaymentStatusPaid
	}
	return domain.PaymentStatusPending
}

func generateOrderNumber() string {
	return fmt.Sprintf("%s%d", domain.OrderNumberPrefix, time.Now().UnixMilli())
}

func (s *orderService) CreateOrder(ctx context.Context, userID string, req domain.CreateOrderRequest) (domain.OrderResponse, error) {
	if req.PaymentMethod != domain.PaymentMethodCOD && req.PaymentMethod != domain.PaymentMethodOnline {
		return domain.OrderResponse{}, domain.ErrInvalidPaymentMethod
	}

	// A completed online payment must prove itself before an order may be
	// marked paid. An unverifiable signature aborts; the order is never
	// quietly downgraded to pending.
	if req.PaymentMethod == domain.PaymentMethodOnline && req.GatewayPaymentID != "" {
		if !s.paymentService.VerifyPayment(req.GatewayOrderID, req.GatewayPaymentID, req.GatewaySignature) {
			return domain.OrderResponse{}, domain.ErrPaymentNotVerified
		}
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.OrderResponse{}, domain.ErrParseUUID
	}

	// The cart is read once here; totals and frozen unit prices all come
	// from this snapshot.
	items, err := s.cartRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.OrderResponse{}, err
	}
	if len(items) == 0 {
		return domain.OrderResponse{}, domain.ErrEmptyCart
	}

	// Best effort: keep the address for future checkouts, but never block
	// the order on it.
	address := &entities.Address{
		ID:           uuid.New(),
		UserID:       userUUID,
		FullName:     req.Address.FullName,
		Phone:        req.Address.Phone,
		AddressLine1: req.Address.AddressLine1,
		AddressLine2: req.Address.AddressLine2,
		City:         req.Address.City,
		State:        req.Address.State,
		PostalCode:   req.Address.PostalCode,
	}
	if err := s.orderRepository.SaveAddress(ctx, address); err != nil {
		log.Printf("error saving address for user %s: %v", userID, err)
	}

	subtotal := cart.CartTotal(items)
	deliveryFee := DeliveryFeeFor(subtotal)
	total := subtotal + deliveryFee

	order := &entities.Order{
		ID:            uuid.New(),
		UserID:        userUUID,
		OrderNumber:   generateOrderNumber(),
		Status:        domain.OrderStatusConfirmed,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: PaymentStatusFor(req.PaymentMethod, req.GatewayPaymentID),
		Subtotal:      subtotal,
		DeliveryFee:   deliveryFee,
		Total:         total,
		DeliveryAddress: entities.DeliveryAddress{
			FullName:     req.Address.FullName,
			Phone:        req.Address.Phone,
			AddressLine1: req.Address.AddressLine1,
			AddressLine2: req.Address.AddressLine2,
			City:         req.Address.City,
			State:        req.Address.State,
			PostalCode:   req.Address.PostalCode,
		},
		Notes:            req.Notes,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
	}

	orderItems := make([]*entities.OrderItem, 0, len(items))
	for _, item := range items {
		unitPrice := 0.0
		if item.Product != nil {
			unitPrice = item.Product.Price
		}
		orderItems = append(orderItems, &entities.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: unitPrice * item.Quantity,
		})
	}

	if err := s.orderRepository.CreateOrderWithItems(ctx, order, orderItems); err != nil {
		return domain.OrderResponse{}, err
	}

	// Best effort: the order already exists, so a failed cart clear or
	// confirmation mail is logged and swallowed.
	if err := s.cartRepository.ClearItems(ctx, userID); err != nil {
		log.Printf("error clearing cart after order %s: %v", order.OrderNumber, err)
	}
	s.sendOrderConfirmation(ctx, userID, order)

	order.OrderItems = orderItems
	return toOrderResponse(order), nil
}

func (s *orderService) sendOrderConfirmation(ctx context.Context, userID string, order *entities.Order) {
	if utils.GetConfig("SMTP_HOST") == "" {
		return
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Printf("error loading user %s for order confirmation: %v", userID, err)
		return
	}

	subject := fmt.Sprintf("Your FreshBasket order %s", order.OrderNumber)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for your order <b>%s</b>.</p><p>Subtotal: %.2f<br>Delivery fee: %.2f<br>Total: <b>%.2f</b></p><p>Payment: %s (%s)</p>",
		u.FullName, order.OrderNumber,
		order.Subtotal, order.DeliveryFee, order.Total,
		order.PaymentMethod, order.PaymentStatus,
	)
	if err := mailing.SendMail(u.Email, subject, body); err != nil {
		log.Printf("error sending order confirmation for %s: %v", order.OrderNumber, err)
	}
}

func (s *orderService) GetUserOrders(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrders(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	return response, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string, userID string) (domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrderResponse{}, domain.ErrOrderNotFound
		}
		return domain.OrderResponse{}, err
	}

	return toOrderResponse(order), nil
}

func (s *orderService) GetAddresses(ctx context.Context, userID string) ([]domain.AddressResponse, error) {
	addresses, err := s.orderRepository.GetAddresses(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		response = append(response, domain.AddressResponse{
			ID:           a.ID.String(),
			FullName:     a.FullName,
			Phone:        a.Phone,
			AddressLine1: a.AddressLine1,
			AddressLine2: a.AddressLine2,
			City:         a.City,
			State:        a.State,
			PostalCode:   a.PostalCode,
			IsDefault:    a.IsDefault,
		})
	}

	return response, nil
}

func (s *orderService) DeleteAddress(ctx context.Context, addressID string, userID string) error {
	return s.orderRepository.DeleteAddress(ctx, addressID, userID)
}

func toOrderResponse(o *entities.Order) domain.OrderResponse {
	response := domain.OrderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		Subtotal:      o.Subtotal,
		DeliveryFee:   o.DeliveryFee,
		Total:         o.Total,
		DeliveryAddress: domain.OrderAddressRequest{
			FullName:     o.DeliveryAddress.FullName,
			Phone:        o.DeliveryAddress.Phone,
			AddressLine1: o.DeliveryAddress.AddressLine1,
			AddressLine2: o.DeliveryAddress.AddressLine2,
			City:         o.DeliveryAddress.City,
			State:        o.DeliveryAddress.State,
			PostalCode:   o.DeliveryAddress.PostalCode,
		},
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
	}

	for _, item := range o.OrderItems {
		itemResponse := domain.OrderItemResponse{
			ID:         item.ID.String(),
			ProductID:  item.ProductID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		}
		if item.Product != nil {
			itemResponse.Product = &domain.ProductResponse{
				ID:       item.Product.ID.String(),
				Name:     item.Product.Name,
				Price:    item.Product.Price,
				Unit:     item.Product.Unit,
				ImageURL: item.Product.ImageURL,
			}
		}
		response.Items = append(response.Items, itemResponse)
	}

	return response
}
