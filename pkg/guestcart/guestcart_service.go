package guestcart

import (
	"context"
	"errors"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/entities"
	"FreshBasket-Backend/pkg/catalog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	GuestCartService interface {
		List(ctx context.Context, guestID string) (domain.GuestCartResponse, error)
		Add(ctx context.Context, guestID string, req domain.AddToCartRequest) error
		Update(ctx context.Context, itemID string, req domain.UpdateCartItemRequest) error
		Remove(ctx context.Context, itemID string) error
		Clear(ctx context.Context, guestID string) error
	}

	guestCartService struct {
		guestCartRepository GuestCartRepository
		catalogRepository   catalog.CatalogRepository
	}
)

func NewGuestCartService(guestCartRepository GuestCartRepository, catalogRepository catalog.CatalogRepository) GuestCartService {
	return &guestCartService{
		guestCartRepository: guestCartRepository,
		catalogRepository:   catalogRepository,
	}
}

// CartTotal sums price x quantity over the snapshot prices captured at
// add time.
func CartTotal(items []*entities.GuestCartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.ProductPrice * item.Quantity
	}
	return total
}

func CartItemCount(items []*entities.GuestCartItem) float64 {
	count := 0.0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func (s *guestCartService) List(ctx context.Context, guestID string) (domain.GuestCartResponse, error) {
	if guestID == "" {
		return domain.GuestCartResponse{}, domain.ErrGuestIDRequired
	}

	items, err := s.guestCartRepository.GetItems(ctx, guestID)
	if err != nil {
		return domain.GuestCartResponse{}, err
	}

	response := domain.GuestCartResponse{
		Items:     make([]domain.GuestCartItemResponse, 0, len(items)),
		Total:     CartTotal(items),
		ItemCount: CartItemCount(items),
	}
	for _, item := range items {
		response.Items = append(response.Items, domain.GuestCartItemResponse{
			ID:            item.ID.String(),
			ProductID:     item.ProductID.String(),
			Quantity:      item.Quantity,
			WeightInGrams: item.WeightInGrams,
			ProductName:   item.ProductName,
			ProductUnit:   item.ProductUnit,
			ProductImage:  item.ProductImage,
			ProductPrice:  item.ProductPrice,
			CreatedAt:     item.CreatedAt,
		})
	}

	return response, nil
}

func (s *guestCartService) Add(ctx context.Context, guestID string, req domain.AddToCartRequest) error {
	if guestID == "" {
		return domain.ErrGuestIDRequired
	}

	existing, err := s.guestCartRepository.GetItemByProduct(ctx, guestID, req.ProductID)
	if err == nil {
		existing.Quantity += req.Quantity
		if req.WeightInGrams != nil {
			weight := *req.WeightInGrams
			if existing.WeightInGrams != nil {
				weight += *existing.WeightInGrams
			}
			existing.WeightInGrams = &weight
		}
		return s.guestCartRepository.UpdateItem(ctx, existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	product, err := s.catalogRepository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	item := &entities.GuestCartItem{
		ID:            uuid.New(),
		GuestID:       guestID,
		ProductID:     product.ID,
		Quantity:      req.Quantity,
		WeightInGrams: req.WeightInGrams,
		ProductName:   product.Name,
		ProductUnit:   product.Unit,
		ProductImage:  product.ImageURL,
		ProductPrice:  product.Price,
	}

	return s.guestCartRepository.CreateItem(ctx, item)
}

func (s *guestCartService) Update(ctx context.Context, itemID string, req domain.UpdateCartItemRequest) error {
	if req.Quantity <= 0 {
		return s.Remove(ctx, itemID)
	}

	item, err := s.guestCartRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	item.Quantity = req.Quantity
	if req.WeightInGrams != nil {
		item.WeightInGrams = req.WeightInGrams
	}

	return s.guestCartRepository.UpdateItem(ctx, item)
}

func (s *guestCartService) Remove(ctx context.Context, itemID string) error {
	if _, err := s.guestCartRepository.GetItemByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}
	return s.guestCartRepository.DeleteItem(ctx, itemID)
}

func (s *guestCartService) Clear(ctx context.Context, guestID string) error {
	if guestID == "" {
		return domain.ErrGuestIDRequired
	}
	return s.guestCartRepository.ClearItems(ctx, guestID)
}
