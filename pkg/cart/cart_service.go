package cart

import (
	"context"
	"errors"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/entities"
	"FreshBasket-Backend/pkg/catalog"
	"FreshBasket-Backend/pkg/guestcart"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		List(ctx context.Context, userID string) (domain.CartResponse, error)
		Add(ctx context.Context, userID string, req domain.AddToCartRequest) error
		Update(ctx context.Context, itemID string, userID string, req domain.UpdateCartItemRequest) error
		Remove(ctx context.Context, itemID string, userID string) error
		Clear(ctx context.Context, userID string) error
		MergeGuestCart(ctx context.Context, guestID string, userID string) error
	}

	cartService struct {
		cartRepository      CartRepository
		guestCartRepository guestcart.GuestCartRepository
		catalogRepository   catalog.CatalogRepository
	}
)

func NewCartService(
	cartRepository CartRepository,
	guestCartRepository guestcart.GuestCartRepository,
	catalogRepository catalog.CatalogRepository,
) CartService {
	return &cartService{
		cartRepository:      cartRepository,
		guestCartRepository: guestCartRepository,
		catalogRepository:   catalogRepository,
	}
}

// CartTotal sums price x quantity over the live product prices joined onto
// the cart rows.
func CartTotal(items []*entities.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		total += item.Product.Price * item.Quantity
	}
	return total
}

func CartItemCount(items []*entities.CartItem) float64 {
	count := 0.0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func (s *cartService) List(ctx context.Context, userID string) (domain.CartResponse, error) {
	items, err := s.cartRepository.GetItems(ctx, userID)
	if err != nil {
		return domain.CartResponse{}, err
	}

	response := domain.CartResponse{
		Items:     make([]domain.CartItemResponse, 0, len(items)),
		Total:     CartTotal(items),
		ItemCount: CartItemCount(items),
	}
	for _, item := range items {
		itemResponse := domain.CartItemResponse{
			ID:            item.ID.String(),
			ProductID:     item.ProductID.String(),
			Quantity:      item.Quantity,
			WeightInGrams: item.WeightInGrams,
			CreatedAt:     item.CreatedAt,
		}
		if item.Product != nil {
			product := toCartProductResponse(item.Product)
			itemResponse.Product = &product
		}
		response.Items = append(response.Items, itemResponse)
	}

	return response, nil
}

// Add upserts a cart line: an existing (user, product) row is incremented,
// otherwise a new row is inserted. The check and the write are two separate
// statements; concurrent adds of the same product from two sessions can race,
// which is accepted for this domain.
func (s *cartService) Add(ctx context.Context, userID string, req domain.AddToCartRequest) error {
	existing, err := s.cartRepository.GetItemByProduct(ctx, userID, req.ProductID)
	if err == nil {
		existing.Quantity += req.Quantity
		if req.WeightInGrams != nil {
			weight := *req.WeightInGrams
			if existing.WeightInGrams != nil {
				weight += *existing.WeightInGrams
			}
			existing.WeightInGrams = &weight
		}
		return s.cartRepository.UpdateItem(ctx, existing)
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

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	item := &entities.CartItem{
		ID:            uuid.New(),
		UserID:        userUUID,
		ProductID:     product.ID,
		Quantity:      req.Quantity,
		WeightInGrams: req.WeightInGrams,
	}

	return s.cartRepository.CreateItem(ctx, item)
}

func (s *cartService) Update(ctx context.Context, itemID string, userID string, req domain.UpdateCartItemRequest) error {
	if req.Quantity <= 0 {
		return s.Remove(ctx, itemID, userID)
	}

	item, err := s.cartRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	item.Quantity = req.Quantity
	if req.WeightInGrams != nil {
		item.WeightInGrams = req.WeightInGrams
	}

	return s.cartRepository.UpdateItem(ctx, item)
}

func (s *cartService) Remove(ctx context.Context, itemID string, userID string) error {
	item, err := s.cartRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.cartRepository.DeleteItem(ctx, itemID)
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	return s.cartRepository.ClearItems(ctx, userID)
}

// MergeGuestCart migrates guest cart lines into the user's cart, quantity and
// weight included. Each guest row is deleted only after its migration
// succeeded; a failure stops the merge and leaves the remaining guest lines
// in place so nothing is silently dropped.
func (s *cartService) MergeGuestCart(ctx context.Context, guestID string, userID string) error {
	if guestID == "" {
		return domain.ErrGuestIDRequired
	}

	items, err := s.guestCartRepository.GetItems(ctx, guestID)
	if err != nil {
		return err
	}

	for _, item := range items {
		req := domain.AddToCartRequest{
			ProductID:     item.ProductID.String(),
			Quantity:      item.Quantity,
			WeightInGrams: item.WeightInGrams,
		}
		if err := s.Add(ctx, userID, req); err != nil {
			return err
		}
		if err := s.guestCartRepository.DeleteItem(ctx, item.ID.String()); err != nil {
			return err
		}
	}

	return nil
}

func toCartProductResponse(p *entities.Product) domain.ProductResponse {
	response := domain.ProductResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Unit:          p.Unit,
		CategoryID:    p.CategoryID.String(),
		ImageURL:      p.ImageURL,
		IsFeatured:    p.IsFeatured,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
	}
	if p.Category != nil {
		response.Category = &domain.CategoryResponse{
			ID:          p.Category.ID.String(),
			Name:        p.Category.Name,
			Description: p.Category.Description,
			ImageURL:    p.Category.ImageURL,
		}
	}
	return response
}
