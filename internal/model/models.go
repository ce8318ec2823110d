package model

import (
	"time"
)

// CountryPaymentRule is the per-country payment policy: an amount envelope
// plus an optional local-time operation window. At most one enabled rule
// exists per country code at a time.
type CountryPaymentRule struct {
	ID                 int64    `json:"id"`
	CountryCode        string   `json:"countryCode"`
	MinAmount          *float64 `json:"minAmount,omitempty"`
	MaxAmount          *float64 `json:"maxAmount,omitempty"`
	OperationStartTime *string  `json:"operationStartTime,omitempty"`
	OperationEndTime   *string  `json:"operationEndTime,omitempty"`
	Timezone           string   `json:"timezone,omitempty"`
	Enabled            bool     `json:"enabled"`
	Description        string   `json:"description,omitempty"`
}

// HasTimeWindow reports whether both ends of the operation window are set.
func (r *CountryPaymentRule) HasTimeWindow() bool {
	return r.OperationStartTime != nil && r.OperationEndTime != nil
}

const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Payment is the record of one dispatch attempt. Charges, total amount and
// status are filled in by the post-dispatch update; a row where they are
// still NULL marks a crash between insert and update.
type Payment struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name,omitempty"`
	ToAccount          string    `json:"toAccount,omitempty"`
	FromAccount        string    `json:"fromAccount,omitempty"`
	Description        string    `json:"description,omitempty"`
	Amount             float64   `json:"amount"`
	Charges            *float64  `json:"charges,omitempty"`
	TotalAmount        *float64  `json:"totalAmount,omitempty"`
	PaymentMethod      string    `json:"paymentMethod"`
	Status             *string   `json:"status,omitempty"`
	DestinationCountry string    `json:"destinationCountry"`
	Timestamp          time.Time `json:"timestamp"`
}
