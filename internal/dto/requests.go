package dto

// PaymentRequest is the inbound payment intent. Method and amount are
// checked by the orchestrator rather than binding tags so that their
// absence produces the documented FAILED response instead of a generic
// binding error.
type PaymentRequest struct {
	Name               string   `json:"name"`
	ToAccount          string   `json:"toAccount"`
	FromAccount        string   `json:"fromAccount"`
	Description        string   `json:"description"`
	DestinationCountry string   `json:"destinationCountry"`
	PaymentMethod      string   `json:"paymentMethod"`
	Amount             *float64 `json:"amount"`
}
