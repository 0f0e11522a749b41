package display

import (
	"github.com/status-im/market-dashboard/interfaces"
)

// CoinDetail is the formatted detail panel of one coin
type CoinDetail struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	Price       string `json:"price"`
	Change24h   Cell   `json:"change_24h"`
	MarketCap   string `json:"market_cap"`
	Volume24h   string `json:"volume_24h"`
	High24h     string `json:"high_24h,omitempty"`
	Low24h      string `json:"low_24h,omitempty"`
	HasHighLow  bool   `json:"has_high_low"`
	CurrencyTag string `json:"vs_currency"`
}

// FormatDetail renders the detail panel. The 24h high and low are shown
// only when both are present and non-zero.
func FormatDetail(e interfaces.MarketEntry, currency string) CoinDetail {
	currency = interfaces.NormalizeCurrency(currency)
	symbol := DetailCurrencySymbol(currency)

	detail := CoinDetail{
		ID:          e.ID,
		Label:       FormatName(e),
		Name:        e.Name,
		Image:       e.Image,
		Price:       formatMoney(e.CurrentPrice, symbol, currency, 2),
		Change24h:   changeCell(e.PriceChange24h, currency),
		MarketCap:   formatMoney(e.MarketCap, symbol, currency, 0),
		Volume24h:   formatMoney(e.TotalVolume, symbol, currency, 0),
		CurrencyTag: currency,
	}

	if nonZero(e.High24h) && nonZero(e.Low24h) {
		detail.HasHighLow = true
		detail.High24h = formatMoney(e.High24h, symbol, currency, 2)
		detail.Low24h = formatMoney(e.Low24h, symbol, currency, 2)
	}

	return detail
}

func nonZero(v *float64) bool {
	return finite(v) && *v != 0
}
