package catalog

import (
	"context"
	"errors"
	"sort"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/entities"

	"gorm.io/gorm"
)

type (
	CatalogService interface {
		ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductResponse, error)
		GetProduct(ctx context.Context, id string) (domain.ProductResponse, error)
		GetFeaturedProducts(ctx context.Context, limit int) ([]domain.ProductResponse, error)
		ListCategories(ctx context.Context) ([]domain.CategoryResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.ProductResponse, error) {
	products, err := s.catalogRepository.GetProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Price-range filtering and sorting happen here, over the fetched page.
	if filter.MinPrice > 0 || filter.MaxPrice > 0 {
		filtered := products[:0]
		for _, p := range products {
			if filter.MinPrice > 0 && p.Price < filter.MinPrice {
				continue
			}
			if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
				continue
			}
			filtered = append(filtered, p)
		}
		products = filtered
	}

	sortProducts(products, filter.SortBy)

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}

	return response, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.catalogRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, domain.ErrProductNotFound
		}
		return domain.ProductResponse{}, err
	}

	return toProductResponse(product), nil
}

func (s *catalogService) GetFeaturedProducts(ctx context.Context, limit int) ([]domain.ProductResponse, error) {
	if limit <= 0 {
		limit = 8
	}
	return s.ListProducts(ctx, domain.ProductFilter{FeaturedOnly: true, Limit: limit})
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.catalogRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, domain.CategoryResponse{
			ID:          c.ID.String(),
			Name:        c.Name,
			Description: c.Description,
			ImageURL:    c.ImageURL,
		})
	}

	return response, nil
}

func sortProducts(products []*entities.Product, sortBy string) {
	switch sortBy {
	case domain.SortByName:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case domain.SortByPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortByPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortByFeatured:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsFeatured && !products[j].IsFeatured
		})
	}
}

func toProductResponse(p *entities.Product) domain.ProductResponse {
	response := domain.ProductResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		Unit:            p.Unit,
		CategoryID:      p.CategoryID.String(),
		ImageURL:        p.ImageURL,
		IsFeatured:      p.IsFeatured,
		StockQuantity:   p.StockQuantity,
		NutritionalInfo: p.NutritionalInfo,
		CreatedAt:       p.CreatedAt,
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
