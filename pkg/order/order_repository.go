package order

import (
	"context"

	"FreshBasket-Backend/entities"

	"gorm.io/gorm"
)

type (
	OrderRepository interface {
		SaveAddress(ctx context.Context, address *entities.Address) error
		GetAddresses(ctx context.Context, userID string) ([]*entities.Address, error)
		DeleteAddress(ctx context.Context, addressID string, userID string) error
		CreateOrderWithItems(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error
		GetOrders(ctx context.Context, userID string) ([]*entities.Order, error)
		GetOrderByID(ctx context.Context, orderID string, userID string) (*entities.Order, error)
	}

	orderRepository struct {
		db *gorm.DB
	}
)

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) SaveAddress(ctx context.Context, address *entities.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *orderRepository) GetAddresses(ctx context.Context, userID string) ([]*entities.Address, error) {
	var addresses []*entities.Address
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *orderRepository) DeleteAddress(ctx context.Context, addressID string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&entities.Address{}).Error
}

// CreateOrderWithItems inserts the order header and all line items inside a
// single transaction, so a failed item insert leaves no orphaned header.
func (r *orderRepository) CreateOrderWithItems(ctx context.Context, order *entities.Order, items []*entities.OrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetOrders(ctx context.Context, userID string) ([]*entities.Order, error) {
	var orders []*entities.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, orderID string, userID string) (*entities.Order, error) {
	var order entities.Order
	if err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("OrderItems.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
