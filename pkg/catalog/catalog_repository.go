package catalog

import (
	"context"
	"strings"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/entities"

	"gorm.io/gorm"
)

type (
	CatalogRepository interface {
		GetProducts(ctx context.Context, filter domain.ProductFilter) ([]*entities.Product, error)
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]*entities.Product, error) {
	var products []*entities.Product

	// Category rows for the result page are fetched in a single batched
	// lookup over the distinct category ids, not per product.
	query := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true)

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}

	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *catalogRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
