package guestcart

import (
	"context"

	"FreshBasket-Backend/entities"

	"gorm.io/gorm"
)

type (
	GuestCartRepository interface {
		GetItems(ctx context.Context, guestID string) ([]*entities.GuestCartItem, error)
		GetItemByID(ctx context.Context, itemID string) (*entities.GuestCartItem, error)
		GetItemByProduct(ctx context.Context, guestID string, productID string) (*entities.GuestCartItem, error)
		CreateItem(ctx context.Context, item *entities.GuestCartItem) error
		UpdateItem(ctx context.Context, item *entities.GuestCartItem) error
		DeleteItem(ctx context.Context, itemID string) error
		ClearItems(ctx context.Context, guestID string) error
	}

	guestCartRepository struct {
		db *gorm.DB
	}
)

func NewGuestCartRepository(db *gorm.DB) GuestCartRepository {
	return &guestCartRepository{db: db}
}

func (r *guestCartRepository) GetItems(ctx context.Context, guestID string) ([]*entities.GuestCartItem, error) {
	var items []*entities.GuestCartItem
	if err := r.db.WithContext(ctx).
		Where("guest_id = ?", guestID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *guestCartRepository) GetItemByID(ctx context.Context, itemID string) (*entities.GuestCartItem, error) {
	var item entities.GuestCartItem
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *guestCartRepository) GetItemByProduct(ctx context.Context, guestID string, productID string) (*entities.GuestCartItem, error) {
	var item entities.GuestCartItem
	if err := r.db.WithContext(ctx).
		Where("guest_id = ? AND product_id = ?", guestID, productID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *guestCartRepository) CreateItem(ctx context.Context, item *entities.GuestCartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *guestCartRepository) UpdateItem(ctx context.Context, item *entities.GuestCartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *guestCartRepository) DeleteItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&entities.GuestCartItem{}).Error
}

func (r *guestCartRepository) ClearItems(ctx context.Context, guestID string) error {
	return r.db.WithContext(ctx).Where("guest_id = ?", guestID).Delete(&entities.GuestCartItem{}).Error
}
