// Package session holds the viewer's selection for one dashboard render.
package session

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/status-im/market-dashboard/interfaces"
)

// Selection bounds and defaults
const (
	MinRows     = 1
	MaxRows     = 50
	DefaultRows = 10
	DefaultDays = 30
)

// Query parameter names
const (
	ParamCurrency = "currency"
	ParamRows     = "rows"
	ParamDays     = "days"
	ParamCoin     = "coin"
)

// DayChoices are the selectable chart windows in display order
var DayChoices = []int{7, 30, 90, 365}

// Selection is the state that drives one render
type Selection struct {
	Currency string `validate:"oneof=usd brl"`
	Rows     int    `validate:"min=1,max=50"`
	Days     int    `validate:"oneof=7 30 90 365"`
	CoinID   string `validate:"omitempty,max=128"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the selection of a first visit
func Default() Selection {
	return Selection{
		Currency: interfaces.CurrencyUSD,
		Rows:     DefaultRows,
		Days:     DefaultDays,
	}
}

// Validate checks the selection against the allowed values
func (s Selection) Validate() error {
	return validate.Struct(s)
}

// DaysParam returns the chart window as sent upstream
func (s Selection) DaysParam() string {
	return strconv.Itoa(s.Days)
}

// Values encodes the selection as query parameters
func (s Selection) Values() url.Values {
	v := url.Values{}
	v.Set(ParamCurrency, s.Currency)
	v.Set(ParamRows, strconv.Itoa(s.Rows))
	v.Set(ParamDays, s.DaysParam())
	if s.CoinID != "" {
		v.Set(ParamCoin, s.CoinID)
	}
	return v
}

// Parse reads a selection from query parameters. Absent parameters take
// their defaults. Invalid parameters also take their defaults and are
// reported in the returned error; the selection is always usable.
func Parse(values url.Values) (Selection, error) {
	sel := Default()
	var problems []string

	if c := interfaces.NormalizeCurrency(values.Get(ParamCurrency)); c != "" {
		sel.Currency = c
	}
	if raw := strings.TrimSpace(values.Get(ParamRows)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("rows: %q is not a number", raw))
		} else {
			sel.Rows = n
		}
	}
	if raw := strings.TrimSpace(values.Get(ParamDays)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("days: %q is not a number", raw))
		} else {
			sel.Days = n
		}
	}
	sel.CoinID = strings.TrimSpace(values.Get(ParamCoin))

	if err := sel.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Default(), err
		}
		defaults := Default()
		for _, fe := range verrs {
			switch fe.StructField() {
			case "Currency":
				sel.Currency = defaults.Currency
			case "Rows":
				sel.Rows = defaults.Rows
			case "Days":
				sel.Days = defaults.Days
			case "CoinID":
				sel.CoinID = defaults.CoinID
			}
			problems = append(problems, fmt.Sprintf("%s: %v is not allowed", strings.ToLower(fe.StructField()), fe.Value()))
		}
	}

	if len(problems) > 0 {
		return sel, fmt.Errorf("invalid selection, using defaults for %s", strings.Join(problems, "; "))
	}
	return sel, nil
}
