package domain

import "errors"

var (
	MessageFailedCreateGatewayOrder = "failed to create payment order"

	ErrGatewayOrderFailed = errors.New("payment gateway order creation failed")
)

type (
	CreateGatewayOrderRequest struct {
		// Amount in minor currency units (paise).
		Amount   int64  `json:"amount" validate:"required,gt=0"`
		Currency string `json:"currency" validate:"omitempty,len=3"`
		Receipt  string `json:"receipt" validate:"required"`
	}

	CreateGatewayOrderResponse struct {
		GatewayOrderID string `json:"gatewayOrderId"`
		Amount         int64  `json:"amount"`
		Currency       string `json:"currency"`
		PublicKey      string `json:"publicKey"`
	}

	VerifyPaymentRequest struct {
		GatewayOrderID   string `json:"gatewayOrderId" validate:"required"`
		GatewayPaymentID string `json:"gatewayPaymentId" validate:"required"`
		Signature        string `json:"signature" validate:"required"`
	}

	VerifyPaymentResponse struct {
		Verified bool `json:"verified"`
	}
)
