package entities

import (
	"github.com/google/uuid"
)

// CartItem holds one (user, product) line. At most one row exists per pair;
// adding an already-present product increments the stored quantity instead.
type CartItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"index" json:"user_id"`
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      float64   `json:"quantity"` // integer count, or fractional for weighed items
	WeightInGrams *float64  `json:"weight_in_grams,omitempty"`

	User    *User    `gorm:"foreignKey:UserID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}

// GuestCartItem is a cart line for a not-yet-signed-in shopper, keyed by a
// client-generated guest id. The product fields are a snapshot captured when
// the line was added and are never refreshed from the catalog.
type GuestCartItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GuestID       string    `gorm:"index" json:"guest_id"`
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      float64   `json:"quantity"`
	WeightInGrams *float64  `json:"weight_in_grams,omitempty"`

	ProductName  string  `json:"product_name"`
	ProductUnit  string  `json:"product_unit"`
	ProductImage string  `json:"product_image,omitempty"`
	ProductPrice float64 `json:"product_price"`

	Timestamp
}
