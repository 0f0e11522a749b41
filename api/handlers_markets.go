package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/status-im/market-dashboard/coingecko_market_chart"
	"github.com/status-im/market-dashboard/dashboard"
	"github.com/status-im/market-dashboard/display"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/session"
)

// MarketsResponse is the body of /api/v1/markets
type MarketsResponse struct {
	Table     display.Table `json:"table"`
	FetchedAt string        `json:"fetched_at"`
	Error     string        `json:"error,omitempty"`
}

// ChartResponse is the body of /api/v1/coins/{id}/chart
type ChartResponse struct {
	interfaces.ChartSeries
	Error string `json:"error,omitempty"`
}

// handleMarkets responds with the formatted market table.
// Upstream failures still answer 200 with an empty table and an error message.
func (s *Server) handleMarkets(w http.ResponseWriter, r *http.Request) {
	sel, err := session.Parse(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := s.dashboard.MarketTable(r.Context(), sel.Currency, sel.Rows)

	response := MarketsResponse{
		Table:     view.Table,
		FetchedAt: view.FetchedAt.UTC().Format(time.RFC3339),
		Error:     dashboard.UserMessage(err),
	}

	s.setCacheStatusHeader(w, view.CacheStatus.String())
	s.sendJSONResponse(w, response)
}

// handleCoinChart responds with the price series of one coin
func (s *Server) handleCoinChart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	currency := getParamLowercase(r, "vs_currency")
	if currency == "" {
		currency = getParamLowercase(r, session.ParamCurrency)
	}
	if currency == "" {
		currency = interfaces.CurrencyUSD
	}

	days := getParamLowercase(r, session.ParamDays)
	if days == "" {
		days = session.Default().DaysParam()
	}
	if err := coingecko_market_chart.ValidateDays(days); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	series, err := s.dashboard.Chart(r.Context(), interfaces.ChartParams{
		ID:       id,
		Currency: currency,
		Days:     days,
	})

	s.setCacheStatusHeader(w, series.CacheStatus.String())
	s.sendJSONResponse(w, ChartResponse{
		ChartSeries: series,
		Error:       dashboard.UserMessage(err),
	})
}

// handleCacheClear drops every cached result. Form posts are redirected back
// to the dashboard with their selection; other clients get JSON.
func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	s.dashboard.ClearCache()

	if wantsHTML(r) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		sel, _ := session.Parse(r.PostForm)
		http.Redirect(w, r, "/?"+sel.Values().Encode(), http.StatusSeeOther)
		return
	}

	s.sendJSONResponse(w, map[string]string{"status": "cleared"})
}
