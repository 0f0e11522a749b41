package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/coingecko_market_chart.go . IMarketChartService

// IMarketChartService defines the interface for the market chart fetcher
type IMarketChartService interface {
	// MarketChart returns the price history of one coin. On failure the
	// series is empty but FetchedAt still records when the attempt happened.
	MarketChart(ctx context.Context, params ChartParams) (ChartSeries, error)

	// Healthy reports whether at least one upstream fetch succeeded
	Healthy() bool
}

// ChartParams represents parameters for market chart requests
type ChartParams struct {
	// ID is the coin id
	ID string `json:"id"`

	// Currency to compare against (e.g., "usd", "brl")
	Currency string `json:"vs_currency"`

	// Days is the window size: a day count or "max"
	Days string `json:"days"`
}

// PricePoint is a single (timestamp, price) sample
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// ChartSeries is the price history of one coin over one window, in source order
type ChartSeries struct {
	CoinID      string       `json:"id"`
	Currency    string       `json:"vs_currency"`
	Days        string       `json:"days"`
	Points      []PricePoint `json:"prices"`
	FetchedAt   time.Time    `json:"fetched_at"`
	CacheStatus CacheStatus  `json:"cache_status"`
}

// Empty reports whether the series has no points
func (s ChartSeries) Empty() bool {
	return len(s.Points) == 0
}
