package coingecko_market_chart

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/status-im/market-dashboard/interfaces"
)

// MaxDays is the upper bound of a numeric days window
const MaxDays = 365

// DaysMax requests the full history
const DaysMax = "max"

// marketChartResponse is the subset of the upstream payload used by the dashboard
type marketChartResponse struct {
	// Prices is nil when the key is absent or null
	Prices *[][]*float64 `json:"prices"`
}

// NormalizeDays trims and lowercases a days value
func NormalizeDays(days string) string {
	return strings.ToLower(strings.TrimSpace(days))
}

// ValidateDays accepts "max" or a whole number of days in 1..365
func ValidateDays(days string) error {
	if days == DaysMax {
		return nil
	}
	n, err := strconv.Atoi(days)
	if err != nil {
		return fmt.Errorf("days must be a number or %q, got %q", DaysMax, days)
	}
	if n < 1 || n > MaxDays {
		return fmt.Errorf("days must be between 1 and %d, got %d", MaxDays, n)
	}
	return nil
}

// validateParams checks already normalized params
func validateParams(params interfaces.ChartParams) error {
	if strings.TrimSpace(params.ID) == "" {
		return errors.New("coin ID is required")
	}
	if params.Currency == "" {
		return errors.New("vs_currency is required")
	}
	return ValidateDays(params.Days)
}
