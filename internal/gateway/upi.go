package gateway

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/altruist/ucp-payments/internal/dto"
	"github.com/altruist/ucp-payments/internal/model"
)

// UPIGateway is a stub backend for UPI transfers.
type UPIGateway struct{}

func NewUPIGateway() *UPIGateway { return &UPIGateway{} }

func (g *UPIGateway) ProcessPayment(ctx context.Context, req *dto.PaymentRequest) *dto.PaymentResponse {
	log.Info().Str("toAccount", req.ToAccount).Msg("processing payment through UPI gateway")

	return &dto.PaymentResponse{
		Status:      model.StatusSuccess,
		Message:     "Payment processed successfully via UPI",
		GatewayUsed: g.GatewayType(),
	}
}

func (g *UPIGateway) GatewayType() string { return "UPI" }
