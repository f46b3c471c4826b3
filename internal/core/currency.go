package core

// Currency describes a supported display currency. Amounts are passed through
// from the backend as-is; the currency only affects formatting.
type Currency struct {
	Code          string
	Name          string
	Symbol        string
	DecimalDigits int
}

var currencies = map[string]Currency{
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$", DecimalDigits: 2},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€", DecimalDigits: 2},
	"GBP": {Code: "GBP", Name: "British Pound", Symbol: "£", DecimalDigits: 2},
	"INR": {Code: "INR", Name: "Indian Rupee", Symbol: "₹", DecimalDigits: 2},
	"AUD": {Code: "AUD", Name: "Australian Dollar", Symbol: "A$", DecimalDigits: 2},
}

// CurrencyCodes returns the supported codes in display order.
func CurrencyCodes() []string {
	return []string{"USD", "EUR", "GBP", "INR", "AUD"}
}

// LookupCurrency returns the currency for a settings code.
func LookupCurrency(code string) (Currency, bool) {
	c, ok := currencies[code]
	return c, ok
}

// CurrencySymbol returns the display symbol for a settings code, or "" when
// the code is unknown or unset.
func CurrencySymbol(code string) string {
	return currencies[code].Symbol
}
