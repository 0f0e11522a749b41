package interfaces

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -destination=mocks/coingecko_markets.go . IMarketsService

// IMarketsService defines the interface for the markets fetcher
type IMarketsService interface {
	// Markets returns one page of coins with market fields. On failure the
	// snapshot is empty but FetchedAt still records when the attempt happened.
	Markets(ctx context.Context, params MarketsParams) (MarketsSnapshot, error)

	// Healthy reports whether at least one upstream fetch succeeded
	Healthy() bool
}

// MarketsParams represents parameters for markets requests.
// Together they form the cache key.
type MarketsParams struct {
	// Currency to compare against (e.g., "usd", "brl")
	Currency string `json:"vs_currency"`

	// Order specifies sorting order (e.g., "market_cap_desc")
	Order string `json:"order"`

	// PerPage specifies number of results per page (1-250)
	PerPage int `json:"per_page"`

	// Page number for pagination (1-based)
	Page int `json:"page"`
}

// Validate validates the MarketsParams
func (p MarketsParams) Validate() error {
	if p.Currency == "" {
		return errors.New("vs_currency is required")
	}
	if p.PerPage < 1 || p.PerPage > 250 {
		return errors.New("per_page must be between 1 and 250")
	}
	if p.Page < 1 {
		return errors.New("page must be greater than 0")
	}
	return nil
}

// MarketEntry is one coin's market snapshot as returned by /coins/markets.
// Every numeric field is optional: absent or null values stay nil.
type MarketEntry struct {
	ID             string   `json:"id"`
	Symbol         string   `json:"symbol"`
	Name           string   `json:"name"`
	Image          string   `json:"image,omitempty"`
	MarketCapRank  *int     `json:"market_cap_rank"`
	CurrentPrice   *float64 `json:"current_price"`
	MarketCap      *float64 `json:"market_cap"`
	TotalVolume    *float64 `json:"total_volume"`
	High24h        *float64 `json:"high_24h"`
	Low24h         *float64 `json:"low_24h"`
	PriceChange1h  *float64 `json:"price_change_percentage_1h_in_currency"`
	PriceChange24h *float64 `json:"price_change_percentage_24h_in_currency"`
	PriceChange7d  *float64 `json:"price_change_percentage_7d_in_currency"`
}

// HasRank reports whether the coin is ranked
func (e MarketEntry) HasRank() bool {
	return e.MarketCapRank != nil
}

// MarketsSnapshot is the result of one markets fetch
type MarketsSnapshot struct {
	Entries     []MarketEntry `json:"entries"`
	FetchedAt   time.Time     `json:"fetched_at"`
	CacheStatus CacheStatus   `json:"cache_status"`
}

// FindByID returns the entry with the given coin id
func (s MarketsSnapshot) FindByID(id string) (MarketEntry, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return MarketEntry{}, false
}
