package interfaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarketsParams_Validate(t *testing.T) {
	valid := MarketsParams{Currency: "usd", Order: "market_cap_desc", PerPage: 50, Page: 1}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(p *MarketsParams)
	}{
		{"missing currency", func(p *MarketsParams) { p.Currency = "" }},
		{"per_page zero", func(p *MarketsParams) { p.PerPage = 0 }},
		{"per_page too large", func(p *MarketsParams) { p.PerPage = 251 }},
		{"page zero", func(p *MarketsParams) { p.Page = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestMarketsSnapshot_FindByID(t *testing.T) {
	snapshot := MarketsSnapshot{Entries: []MarketEntry{{ID: "bitcoin"}, {ID: "ethereum"}}}

	entry, ok := snapshot.FindByID("ethereum")
	assert.True(t, ok)
	assert.Equal(t, "ethereum", entry.ID)

	_, ok = snapshot.FindByID("dogecoin")
	assert.False(t, ok)
}

func TestCacheStatusFromHit(t *testing.T) {
	assert.Equal(t, CacheStatusFull, CacheStatusFromHit(true))
	assert.Equal(t, CacheStatusMiss, CacheStatusFromHit(false))
	assert.Equal(t, "miss", CacheStatusMiss.String())
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "brl", NormalizeCurrency("  BRL "))
}

func TestChartSeries_Empty(t *testing.T) {
	assert.True(t, ChartSeries{}.Empty())
	assert.False(t, ChartSeries{Points: []PricePoint{{Price: 1}}}.Empty())
}
