package domain

// Currency is an enumerated currency code.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	RUB Currency = "RUB"
)

// SupportedCurrencies lists every currency accounts may be denominated in.
var SupportedCurrencies = []Currency{USD, EUR, GBP, RUB}

// IsValid reports whether c is one of the supported currency codes.
func (c Currency) IsValid() bool {
	for _, known := range SupportedCurrencies {
		if c == known {
			return true
		}
	}
	return false
}
