package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`

	Products []*Product `gorm:"foreignKey:CategoryID"`
	Timestamp
}

type Product struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Price           float64           `json:"price"`
	Unit            string            `json:"unit"` // "kg", "piece", "litre", ...
	CategoryID      uuid.UUID         `json:"category_id"`
	ImageURL        string            `json:"image_url,omitempty"`
	IsFeatured      bool              `json:"is_featured"`
	IsActive        bool              `json:"is_active"`
	StockQuantity   int               `json:"stock_quantity"`
	NutritionalInfo map[string]string `gorm:"serializer:json" json:"nutritional_info,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Timestamp
}
