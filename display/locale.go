package display

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/status-im/market-dashboard/interfaces"
)

// NotAvailable is rendered in place of a missing value
const NotAvailable = "N/A"

var printer = message.NewPrinter(language.English)

// separatorSwapper exchanges ',' and '.' in one pass
var separatorSwapper = strings.NewReplacer(",", ".", ".", ",")

// SwapSeparators exchanges the decimal and thousands separators of an
// already formatted number: "1,234.56" becomes "1.234,56". It is a plain
// character substitution applied to the whole string.
func SwapSeparators(s string) string {
	return separatorSwapper.Replace(s)
}

// SwapsSeparators reports whether currency is displayed with swapped separators
func SwapsSeparators(currency string) bool {
	return interfaces.NormalizeCurrency(currency) == interfaces.CurrencyBRL
}

// CurrencySymbol returns the prefix used for amounts in the market table
func CurrencySymbol(currency string) string {
	switch c := interfaces.NormalizeCurrency(currency); c {
	case interfaces.CurrencyUSD:
		return "$"
	case interfaces.CurrencyBRL:
		return "R$"
	default:
		return strings.ToUpper(c) + " "
	}
}

// DetailCurrencySymbol returns the prefix used in the coin detail panel
func DetailCurrencySymbol(currency string) string {
	if interfaces.NormalizeCurrency(currency) == interfaces.CurrencyUSD {
		return "$"
	}
	return "R$"
}

// formatAmount groups thousands and renders decimals digits. Missing or
// non-finite values yield NotAvailable.
func formatAmount(v *float64, decimals int) (string, bool) {
	if !finite(v) {
		return NotAvailable, false
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), *v), true
}

// formatPercent renders two decimals and a trailing "%", without grouping
func formatPercent(v *float64) (string, bool) {
	if !finite(v) {
		return NotAvailable, false
	}
	return fmt.Sprintf("%.2f%%", *v), true
}

// localize applies the currency's separator convention to a formatted number
func localize(s, currency string) string {
	if SwapsSeparators(currency) {
		return SwapSeparators(s)
	}
	return s
}

func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}
