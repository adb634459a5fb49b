package entities

import (
	"github.com/google/uuid"
)

// DeliveryAddress is the address copied onto an order when it is placed.
// It is stored as a JSON column, not a foreign key, so later edits to the
// user's saved addresses never alter past orders.
type DeliveryAddress struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line_1"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
}

type Order struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID       `gorm:"index" json:"user_id"`
	OrderNumber      string          `gorm:"uniqueIndex" json:"order_number"`
	Status           string          `json:"status"`         // "pending", "confirmed", "shipped", "delivered", "cancelled"
	PaymentMethod    string          `json:"payment_method"` // "cod" or "online"
	PaymentStatus    string          `json:"payment_status"` // "pending" or "paid"
	Subtotal         float64         `json:"subtotal"`
	DeliveryFee      float64         `json:"delivery_fee"`
	Total            float64         `json:"total"`
	DeliveryAddress  DeliveryAddress `gorm:"serializer:json" json:"delivery_address"`
	Notes            string          `json:"notes,omitempty"`
	GatewayOrderID   string          `json:"gateway_order_id,omitempty"`
	GatewayPaymentID string          `json:"gateway_payment_id,omitempty"`

	User       *User        `gorm:"foreignKey:UserID"`
	OrderItems []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

type OrderItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID    uuid.UUID `gorm:"index" json:"order_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   float64   `json:"quantity"`
	UnitPrice  float64   `json:"unit_price"` // frozen at order time, never recomputed
	TotalPrice float64   `json:"total_price"`

	Order   *Order   `gorm:"foreignKey:OrderID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
