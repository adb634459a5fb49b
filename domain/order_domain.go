package domain

import (
	"errors"
	"time"
)

// Fixed business constants: delivery is free from this subtotal upwards,
// below it a flat fee applies.
const (
	FreeDeliveryThreshold = 500.0
	DeliveryFee           = 50.0

	PaymentMethodCOD    = "cod"
	PaymentMethodOnline = "online"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"

	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	OrderNumberPrefix = "FB"
)

var (
	MessageSuccessCreateOrder = "order placed successfully"
	MessageSuccessGetOrders   = "orders retrieved successfully"
	MessageSuccessGetOrder    = "order retrieved successfully"

	MessageFailedCreateOrder = "failed to place order"
	MessageFailedGetOrders   = "failed to retrieve orders"
	MessageFailedGetOrder    = "failed to retrieve order"

	ErrOrderNotFound        = errors.New("order not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentNotVerified   = errors.New("online payment not verified")
)

type (
	OrderAddressRequest struct {
		FullName     string `json:"full_name" validate:"required"`
		Phone        string `json:"phone" validate:"required,min=10,max=15,numeric"`
		AddressLine1 string `json:"address_line_1" validate:"required"`
		AddressLine2 string `json:"address_line_2" validate:"omitempty"`
		City         string `json:"city" validate:"required"`
		State        string `json:"state" validate:"required"`
		PostalCode   string `json:"postal_code" validate:"required,len=6,numeric"`
	}

	CreateOrderRequest struct {
		Address          OrderAddressRequest `json:"address" validate:"required"`
		PaymentMethod    string              `json:"payment_method" validate:"required,oneof=cod online"`
		Notes            string              `json:"notes" validate:"omitempty"`
		GatewayPaymentID string              `json:"gateway_payment_id" validate:"omitempty"`
		GatewayOrderID   string              `json:"gateway_order_id" validate:"omitempty"`
		GatewaySignature string              `json:"gateway_signature" validate:"omitempty"`
	}

	OrderItemResponse struct {
		ID         string           `json:"id"`
		ProductID  string           `json:"product_id"`
		Quantity   float64          `json:"quantity"`
		UnitPrice  float64          `json:"unit_price"`
		TotalPrice float64          `json:"total_price"`
		Product    *ProductResponse `json:"product,omitempty"`
	}

	OrderResponse struct {
		ID              string              `json:"id"`
		OrderNumber     string              `json:"order_number"`
		Status          string              `json:"status"`
		PaymentMethod   string              `json:"payment_method"`
		PaymentStatus   string              `json:"payment_status"`
		Subtotal        float64             `json:"subtotal"`
		DeliveryFee     float64             `json:"delivery_fee"`
		Total           float64             `json:"total"`
		DeliveryAddress OrderAddressRequest `json:"delivery_address"`
		Notes           string              `json:"notes,omitempty"`
		Items           []OrderItemResponse `json:"items,omitempty"`
		CreatedAt       time.Time           `json:"created_at"`
	}
)
