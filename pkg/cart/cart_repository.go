package cart

import (
	"context"

	"FreshBasket-Backend/entities"

	"gorm.io/gorm"
)

type (
	CartRepository interface {
		GetItems(ctx context.Context, userID string) ([]*entities.CartItem, error)
		GetItemByID(ctx context.Context, itemID string) (*entities.CartItem, error)
		GetItemByProduct(ctx context.Context, userID string, productID string) (*entities.CartItem, error)
		CreateItem(ctx context.Context, item *entities.CartItem) error
		UpdateItem(ctx context.Context, item *entities.CartItem) error
		DeleteItem(ctx context.Context, itemID string) error
		ClearItems(ctx context.Context, userID string) error
	}

	cartRepository struct {
		db *gorm.DB
	}
)

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetItems(ctx context.Context, userID string) ([]*entities.CartItem, error) {
	var items []*entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) GetItemByID(ctx context.Context, itemID string) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", itemID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) GetItemByProduct(ctx context.Context, userID string, productID string) (*entities.CartItem, error) {
	var item entities.CartItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) CreateItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) UpdateItem(ctx context.Context, item *entities.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&entities.CartItem{}).Error
}

func (r *cartRepository) ClearItems(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.CartItem{}).Error
}
