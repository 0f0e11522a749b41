package e2etest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// MockServer imitates the two CoinGecko endpoints the dashboard calls
type MockServer struct {
	server *httptest.Server

	mu             sync.Mutex
	marketsData    string
	marketsStatus  int
	chartStatus    int
	marketsHits    int
	chartHits      int
	lastMarketsURL string
	lastChartURL   string
}

// NewMockServer creates and starts a new mock server
func NewMockServer() *MockServer {
	ms := &MockServer{
		marketsData:   defaultMarketsData,
		marketsStatus: http.StatusOK,
		chartStatus:   http.StatusOK,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", ms.handleRequest)

	// httptest.Server selects a free port
	ms.server = httptest.NewServer(mux)
	return ms
}

// URL returns the base URL of the mock server
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close stops the mock server
func (ms *MockServer) Close() {
	if ms.server != nil {
		ms.server.Close()
	}
}

// SetMarketsStatus makes the markets endpoint answer with status
func (ms *MockServer) SetMarketsStatus(status int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.marketsStatus = status
}

// SetChartStatus makes the market chart endpoint answer with status
func (ms *MockServer) SetChartStatus(status int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.chartStatus = status
}

// SetMarketsData replaces the markets response body
func (ms *MockServer) SetMarketsData(body string) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.marketsData = body
}

// MarketsHits returns how many markets requests reached the mock
func (ms *MockServer) MarketsHits() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.marketsHits
}

// ChartHits returns how many market chart requests reached the mock
func (ms *MockServer) ChartHits() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.chartHits
}

// LastMarketsURL returns the request URI of the latest markets call
func (ms *MockServer) LastMarketsURL() string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.lastMarketsURL
}

// LastChartURL returns the request URI of the latest market chart call
func (ms *MockServer) LastChartURL() string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.lastChartURL
}

func (ms *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	ms.mu.Lock()
	defer ms.mu.Unlock()

	switch {
	case path == "/api/v3/coins/markets":
		ms.marketsHits++
		ms.lastMarketsURL = r.URL.RequestURI()
		if ms.marketsStatus != http.StatusOK {
			if ms.marketsStatus == http.StatusTooManyRequests {
				w.Header().Set("Retry-After", "60")
			}
			http.Error(w, `{"status":{"error_code":`+fmt.Sprint(ms.marketsStatus)+`}}`, ms.marketsStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, ms.marketsData)

	case strings.HasPrefix(path, "/api/v3/coins/") && strings.HasSuffix(path, "/market_chart"):
		ms.chartHits++
		ms.lastChartURL = r.URL.RequestURI()
		if ms.chartStatus != http.StatusOK {
			http.Error(w, "upstream failure", ms.chartStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, generateMarketChartData(time.Now()))

	default:
		http.NotFound(w, r)
	}
}

// generateMarketChartData builds a short hourly series ending at now
func generateMarketChartData(now time.Time) string {
	var points []string
	for i := 4; i >= 0; i-- {
		ts := now.Add(-time.Duration(i) * time.Hour).UnixMilli()
		points = append(points, fmt.Sprintf("[%d, %.2f]", ts, 50000.0+float64(4-i)*250))
	}
	return `{"prices": [` + strings.Join(points, ", ") + `], "market_caps": [], "total_volumes": []}`
}

const defaultMarketsData = `[
  {
    "id": "bitcoin",
    "symbol": "btc",
    "name": "Bitcoin",
    "current_price": 50000.5,
    "market_cap": 950000000000,
    "market_cap_rank": 1,
    "total_volume": 35000000000,
    "high_24h": 51000,
    "low_24h": 49000,
    "price_change_percentage_1h_in_currency": 0.52,
    "price_change_percentage_24h_in_currency": -1.25,
    "price_change_percentage_7d_in_currency": 0
  },
  {
    "id": "ethereum",
    "symbol": "eth",
    "name": "Ethereum",
    "current_price": 3000,
    "market_cap": 360000000000,
    "market_cap_rank": 2,
    "total_volume": 15000000000,
    "high_24h": 3100,
    "low_24h": 2900,
    "price_change_percentage_1h_in_currency": -0.1,
    "price_change_percentage_24h_in_currency": 3.33,
    "price_change_percentage_7d_in_currency": 5.5
  },
  {
    "id": "unranked-coin",
    "symbol": "unr",
    "name": "Unranked",
    "current_price": 0.01,
    "market_cap": 1000,
    "market_cap_rank": null,
    "total_volume": 10,
    "high_24h": null,
    "low_24h": null,
    "price_change_percentage_1h_in_currency": null,
    "price_change_percentage_24h_in_currency": null,
    "price_change_percentage_7d_in_currency": null
  }
]`
