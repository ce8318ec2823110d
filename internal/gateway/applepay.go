package gateway

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/altruist/ucp-payments/internal/dto"
	"github.com/altruist/ucp-payments/internal/model"
)

// ApplePayGateway is a stub backend for Apple Pay.
type ApplePayGateway struct{}

func NewApplePayGateway() *ApplePayGateway { return &ApplePayGateway{} }

func (g *ApplePayGateway) ProcessPayment(ctx context.Context, req *dto.PaymentRequest) *dto.PaymentResponse {
	log.Info().Str("toAccount", req.ToAccount).Msg("processing payment through Apple Pay gateway")

	return &dto.PaymentResponse{
		Status:      model.StatusSuccess,
		Message:     "Payment processed successfully via Apple Pay",
		GatewayUsed: g.GatewayType(),
	}
}

func (g *ApplePayGateway) GatewayType() string { return "APPLE_PAY" }
