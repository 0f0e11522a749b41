package session

import (
	"fmt"
	"strings"

	"github.com/status-im/market-dashboard/interfaces"
)

// Option is a labelled choice of a select control
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CoinOptions lists the selectable coins as "Name (SYMBOL)" labels in input
// order. Entries without a name or id are left out. When two entries share a
// label the option keeps its first position and points at the later id.
func CoinOptions(entries []interfaces.MarketEntry) []Option {
	options := make([]Option, 0, len(entries))
	index := make(map[string]int, len(entries))
	for _, e := range entries {
		if e.Name == "" || e.ID == "" {
			continue
		}
		label := fmt.Sprintf("%s (%s)", e.Name, strings.ToUpper(e.Symbol))
		if i, ok := index[label]; ok {
			options[i].Value = e.ID
			continue
		}
		index[label] = len(options)
		options = append(options, Option{Label: label, Value: e.ID})
	}
	return options
}

// Resolve returns the option for the selected coin, falling back to the
// first option. ok is false when there are no options.
func Resolve(sel Selection, options []Option) (Option, bool) {
	if len(options) == 0 {
		return Option{}, false
	}
	for _, o := range options {
		if o.Value == sel.CoinID {
			return o, true
		}
	}
	return options[0], true
}

// CurrencyOptions lists the quote currencies
func CurrencyOptions() []Option {
	options := make([]Option, 0, len(interfaces.SupportedCurrencies))
	for _, c := range interfaces.SupportedCurrencies {
		options = append(options, Option{Label: strings.ToUpper(c), Value: c})
	}
	return options
}

// DayOptions lists the chart windows
func DayOptions() []Option {
	options := make([]Option, 0, len(DayChoices))
	for _, d := range DayChoices {
		options = append(options, Option{Label: fmt.Sprintf("%d days", d), Value: fmt.Sprint(d)})
	}
	return options
}
