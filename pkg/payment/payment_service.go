package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"FreshBasket-Backend/domain"
	"FreshBasket-Backend/internal/utils"

	razorpay "github.com/razorpay/razorpay-go"
)

type (
	// PaymentService is the server-side bridge to the payment gateway. The
	// secret key stays here; clients only ever receive the public key id.
	PaymentService interface {
		CreateGatewayOrder(ctx context.Context, req domain.CreateGatewayOrderRequest) (domain.CreateGatewayOrderResponse, error)
		VerifyPayment(gatewayOrderID string, gatewayPaymentID string, signature string) bool
	}

	paymentService struct {
		client    *razorpay.Client
		keyID     string
		keySecret string
	}
)

func NewPaymentService() PaymentService {
	return NewPaymentServiceWithKeys(
		utils.GetConfig("RAZORPAY_KEY_ID"),
		utils.GetConfig("RAZORPAY_KEY_SECRET"),
	)
}

func NewPaymentServiceWithKeys(keyID string, keySecret string) PaymentService {
	return &paymentService{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (s *paymentService) CreateGatewayOrder(ctx context.Context, req domain.CreateGatewayOrderRequest) (domain.CreateGatewayOrderResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":   req.Amount,
		"currency": currency,
		"receipt":  req.Receipt,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		return domain.CreateGatewayOrderResponse{}, domain.ErrGatewayOrderFailed
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return domain.CreateGatewayOrderResponse{}, domain.ErrGatewayOrderFailed
	}

	amount := req.Amount
	if v, ok := body["amount"].(float64); ok {
		amount = int64(v)
	}
	if v, ok := body["currency"].(string); ok && v != "" {
		currency = v
	}

	return domain.CreateGatewayOrderResponse{
		GatewayOrderID: orderID,
		Amount:         amount,
		Currency:       currency,
		PublicKey:      s.keyID,
	}, nil
}

// VerifyPayment recomputes the HMAC-SHA256 of "orderID|paymentID" with the
// secret key and compares it against the signature the checkout widget
// reported. This is the sole proof that an online payment actually completed.
func (s *paymentService) VerifyPayment(gatewayOrderID string, gatewayPaymentID string, signature string) bool {
	if gatewayOrderID == "" || gatewayPaymentID == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
