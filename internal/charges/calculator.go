// Package charges computes the country-indexed service charge added to a
// payment's principal.
package charges

import "strings"

// DefaultRate applies to any country not present in the rate table.
const DefaultRate = 0.035

var countryRates = map[string]float64{
	"IN":    0.010,
	"INDIA": 0.010,
	"US":    0.030,
	"USA":   0.030,
	"UK":    0.025,
	"GB":    0.025,
	"EU":    0.028,
	"EUR":   0.028,
}

// Rate returns the charge rate for the destination country,
// case-insensitively, falling back to DefaultRate.
func Rate(destinationCountry string) float64 {
	if rate, ok := countryRates[strings.ToUpper(destinationCountry)]; ok {
		return rate
	}
	return DefaultRate
}

// Calculate returns the service charge for the amount. A missing country or
// amount yields zero; the calculator never fails.
func Calculate(destinationCountry string, amount *float64) float64 {
	if destinationCountry == "" || amount == nil {
		return 0
	}
	return *amount * Rate(destinationCountry)
}
