package gateway

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/altruist/ucp-payments/internal/dto"
	"github.com/altruist/ucp-payments/internal/model"
)

// CardGateway is a stub backend for card payments.
type CardGateway struct{}

func NewCardGateway() *CardGateway { return &CardGateway{} }

func (g *CardGateway) ProcessPayment(ctx context.Context, req *dto.PaymentRequest) *dto.PaymentResponse {
	log.Info().Str("toAccount", req.ToAccount).Msg("processing payment through CARD gateway")

	return &dto.PaymentResponse{
		Status:      model.StatusSuccess,
		Message:     "Payment processed successfully via Card",
		GatewayUsed: g.GatewayType(),
	}
}

func (g *CardGateway) GatewayType() string { return "CARD" }
