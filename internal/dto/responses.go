package dto

// PaymentResponse is returned by gateways and enriched by the orchestrator
// with the record id, charges and total amount.
type PaymentResponse struct {
	PaymentID   *int64  `json:"paymentId,omitempty"`
	Status      string  `json:"status"`
	Message     string  `json:"message,omitempty"`
	TotalAmount float64 `json:"totalAmount"`
	Charges     float64 `json:"charges"`
	GatewayUsed string  `json:"gatewayUsed,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
