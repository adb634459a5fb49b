package handlers

import (
	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/internal/api/presenters"
	"FreshBasket-Backend/pkg/guestcart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GuestCartHandler interface {
		GetCart(c *fiber.Ctx) error
		AddToCart(c *fiber.Ctx) error
		UpdateCartItem(c *fiber.Ctx) error
		RemoveCartItem(c *fiber.Ctx) error
		ClearCart(c *fiber.Ctx) error
	}

	guestCartHandler struct {
		guestCartService guestcart.GuestCartService
		validator        *validator.Validate
	}
)

func NewGuestCartHandler(guestCartService guestcart.GuestCartService, validator *validator.Validate) GuestCartHandler {
	return &guestCartHandler{
		guestCartService: guestCartService,
		validator:        validator,
	}
}

// The guest id is a client-generated opaque identifier sent on every guest
// cart call, either as a query parameter or the X-Guest-ID header.
func guestIDFrom(c *fiber.Ctx) string {
	if id := c.Query("guest_id"); id != "" {
		return id
	}
	return c.Get("X-Guest-ID")
}

func (h *guestCartHandler) GetCart(c *fiber.Ctx) error {
	res, err := h.guestCartService.List(c.Context(), guestIDFrom(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCart, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCart)
}

func (h *guestCartHandler) AddToCart(c *fiber.Ctx) error {
	req := new(domain.AddToCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	if err := h.guestCartService.Add(c.Context(), guestIDFrom(c), *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddToCart)
}

func (h *guestCartHandler) UpdateCartItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCartItem, err)
	}

	if err := h.guestCartService.Update(c.Context(), itemID, *req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCartItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateCartItem)
}

func (h *guestCartHandler) RemoveCartItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.guestCartService.Remove(c.Context(), itemID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCartItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveCartItem)
}

func (h *guestCartHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.guestCartService.Clear(c.Context(), guestIDFrom(c)); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearCart, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearCart)
}
