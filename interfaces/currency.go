package interfaces

import "strings"

// Quote currencies offered by the dashboard
const (
	CurrencyUSD = "usd"
	CurrencyBRL = "brl"
)

// SupportedCurrencies lists the selectable quote currencies in display order
var SupportedCurrencies = []string{CurrencyUSD, CurrencyBRL}

// NormalizeCurrency lowercases and trims a currency code
func NormalizeCurrency(currency string) string {
	return strings.ToLower(strings.TrimSpace(currency))
}
