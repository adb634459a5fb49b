package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"` // empty for OAuth-only accounts
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone,omitempty"`
	Provider string    `json:"provider"` // "local" or "google"
	Role     string    `json:"role"`
	ImageURL string    `json:"image_url,omitempty"`

	Addresses []*Address `gorm:"foreignKey:UserID"`
	Timestamp
}
