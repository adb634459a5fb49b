package handlers

import (
	"strconv"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/internal/api/presenters"
	"FreshBasket-Backend/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetProducts(c *fiber.Ctx) error
		GetProductDetails(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) GetProducts(c *fiber.Ctx) error {
	filter := domain.ProductFilter{
		CategoryID:   c.Query("category"),
		Search:       c.Query("search"),
		FeaturedOnly: c.Query("featured") == "true",
		SortBy:       c.Query("sort"),
	}

	if limit, err := strconv.Atoi(c.Query("limit", "0")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if minPrice, err := strconv.ParseFloat(c.Query("min_price", "0"), 64); err == nil && minPrice > 0 {
		filter.MinPrice = minPrice
	}
	if maxPrice, err := strconv.ParseFloat(c.Query("max_price", "0"), 64); err == nil && maxPrice > 0 {
		filter.MaxPrice = maxPrice
	}

	products, err := h.catalogService.ListProducts(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, products, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *catalogHandler) GetProductDetails(c *fiber.Ctx) error {
	productID := c.Params("id")

	product, err := h.catalogService.GetProduct(c.Context(), productID)
	if err != nil {
		status := fiber.StatusBadRequest
		if err == domain.ErrProductNotFound {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetProduct, err)
	}

	return presenters.SuccessResponse(c, product, fiber.StatusOK, domain.MessageSuccessGetProduct)
}

func (h *catalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}
