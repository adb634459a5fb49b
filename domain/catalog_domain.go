package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessGetProduct    = "product retrieved successfully"
	MessageSuccessGetCategories = "categories retrieved successfully"

	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedGetProduct    = "failed to retrieve product"
	MessageFailedGetCategories = "failed to retrieve categories"

	ErrProductNotFound = errors.New("product not found")
)

// Sort orders accepted by the products listing. Sorting happens after
// retrieval, over the fetched page.
const (
	SortByName      = "name"
	SortByPriceAsc  = "price_asc"
	SortByPriceDesc = "price_desc"
	SortByFeatured  = "featured"
)

type (
	ProductFilter struct {
		CategoryID   string
		Search       string
		FeaturedOnly bool
		Limit        int
		SortBy       string
		MinPrice     float64
		MaxPrice     float64
	}

	CategoryResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		ImageURL    string `json:"image_url,omitempty"`
	}

	ProductResponse struct {
		ID              string            `json:"id"`
		Name            string            `json:"name"`
		Description     string            `json:"description,omitempty"`
		Price           float64           `json:"price"`
		Unit            string            `json:"unit"`
		CategoryID      string            `json:"category_id"`
		ImageURL        string            `json:"image_url,omitempty"`
		IsFeatured      bool              `json:"is_featured"`
		StockQuantity   int               `json:"stock_quantity"`
		NutritionalInfo map[string]string `json:"nutritional_info,omitempty"`
		Category        *CategoryResponse `json:"category,omitempty"`
		CreatedAt       time.Time         `json:"created_at"`
	}
)
