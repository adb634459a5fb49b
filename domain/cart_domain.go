package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddToCart      = "item added to cart"
	MessageSuccessUpdateCartItem = "cart item updated"
	MessageSuccessRemoveCartItem = "cart item removed"
	MessageSuccessClearCart      = "cart cleared"
	MessageSuccessMergeCart      = "guest cart merged"

	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedAddToCart      = "failed to add item to cart"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove cart item"
	MessageFailedClearCart      = "failed to clear cart"
	MessageFailedMergeCart      = "failed to merge guest cart"

	ErrCartItemNotFound = errors.New("cart item not found")
	ErrGuestIDRequired  = errors.New("guest id required")
)

type (
	AddToCartRequest struct {
		ProductID     string   `json:"product_id" validate:"required,uuid"`
		Quantity      float64  `json:"quantity" validate:"required,gt=0"`
		WeightInGrams *float64 `json:"weight_in_grams" validate:"omitempty,gt=0"`
	}

	UpdateCartItemRequest struct {
		Quantity      float64  `json:"quantity"` // zero or negative removes the line
		WeightInGrams *float64 `json:"weight_in_grams" validate:"omitempty,gt=0"`
	}

	MergeCartRequest struct {
		GuestID string `json:"guest_id" validate:"required"`
	}

	CartItemResponse struct {
		ID            string           `json:"id"`
		ProductID     string           `json:"product_id"`
		Quantity      float64          `json:"quantity"`
		WeightInGrams *float64         `json:"weight_in_grams,omitempty"`
		Product       *ProductResponse `json:"product,omitempty"`
		CreatedAt     time.Time        `json:"created_at"`
	}

	GuestCartItemResponse struct {
		ID            string    `json:"id"`
		ProductID     string    `json:"product_id"`
		Quantity      float64   `json:"quantity"`
		WeightInGrams *float64  `json:"weight_in_grams,omitempty"`
		ProductName   string    `json:"product_name"`
		ProductUnit   string    `json:"product_unit"`
		ProductImage  string    `json:"product_image,omitempty"`
		ProductPrice  float64   `json:"product_price"`
		CreatedAt     time.Time `json:"created_at"`
	}

	CartResponse struct {
		Items     []CartItemResponse `json:"items"`
		Total     float64            `json:"total"`
		ItemCount float64            `json:"item_count"`
	}

	GuestCartResponse struct {
		Items     []GuestCartItemResponse `json:"items"`
		Total     float64                 `json:"total"`
		ItemCount float64                 `json:"item_count"`
	}
)
