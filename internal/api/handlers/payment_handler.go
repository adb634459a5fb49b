package handlers

import (
	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/pkg/payment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	// PaymentHandler serves the checkout widget's two bridge endpoints.
	// Their response bodies follow the gateway contract directly rather
	// than the presenter envelope, because the widget consumes them as-is.
	PaymentHandler interface {
		CreateGatewayOrder(c *fiber.Ctx) error
		VerifyPayment(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

func (h *paymentHandler) CreateGatewayOrder(c *fiber.Ctx) error {
	req := new(domain.CreateGatewayOrderRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": domain.MessageFailedBodyRequest})
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.paymentService.CreateGatewayOrder(c.Context(), *req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": domain.MessageFailedCreateGatewayOrder})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// VerifyPayment never errors on a mismatch: callers branch on the verified
// boolean, and an internal failure also answers verified:false.
func (h *paymentHandler) VerifyPayment(c *fiber.Ctx) error {
	req := new(domain.VerifyPaymentRequest)

	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusOK).JSON(domain.VerifyPaymentResponse{Verified: false})
	}

	verified := h.paymentService.VerifyPayment(req.GatewayOrderID, req.GatewayPaymentID, req.Signature)

	return c.Status(fiber.StatusOK).JSON(domain.VerifyPaymentResponse{Verified: verified})
}
