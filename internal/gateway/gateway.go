// Package gateway holds the payment-method backends and the registry that
// keys them by method code.
package gateway

import (
	"context"

	"github.com/altruist/ucp-payments/internal/dto"
)

// PaymentGateway finalizes a payment for one method code. Implementations
// are synchronous and must report failures through the response rather than
// panicking; the dispatcher converts anything that escapes into a FAILED
// response as a backstop.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, req *dto.PaymentRequest) *dto.PaymentResponse
	GatewayType() string
}
