package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/cache"
	"github.com/status-im/market-dashboard/chart"
	"github.com/status-im/market-dashboard/config"
	"github.com/status-im/market-dashboard/display"
	"github.com/status-im/market-dashboard/interfaces"
	"github.com/status-im/market-dashboard/session"
)

// TimestampLayout is day/month/year hours:minutes:seconds
const TimestampLayout = "02/01/2006 15:04:05"

// Page is the view model of one dashboard render
type Page struct {
	Title    string `json:"title"`
	Footer   string `json:"footer"`
	Year     int    `json:"year"`
	LoadedAt string `json:"loaded_at"`

	Selection       session.Selection `json:"-"`
	CurrencyOptions []session.Option  `json:"currency_options"`
	DayOptions      []session.Option  `json:"day_options"`
	MinRows         int               `json:"min_rows"`
	MaxRows         int               `json:"max_rows"`

	MarketsOK      bool          `json:"markets_ok"`
	MarketsCaption string        `json:"markets_caption"`
	Table          display.Table `json:"table"`

	CoinOptions  []session.Option    `json:"coin_options"`
	SelectedCoin *session.Option     `json:"selected_coin,omitempty"`
	Detail       *display.CoinDetail `json:"detail,omitempty"`

	ChartTitle   string        `json:"chart_title,omitempty"`
	ChartYLabel  string        `json:"chart_y_label,omitempty"`
	Chart        *chart.Figure `json:"chart,omitempty"`
	ChartCaption string        `json:"chart_caption,omitempty"`
	ChartStart   string        `json:"chart_start,omitempty"`
	ChartEnd     string        `json:"chart_end,omitempty"`
	ChartMin     string        `json:"chart_min,omitempty"`
	ChartMax     string        `json:"chart_max,omitempty"`

	Messages []Message `json:"messages"`
}

// TableView is the market table served by the JSON API
type TableView struct {
	Table       display.Table          `json:"table"`
	FetchedAt   time.Time              `json:"fetched_at"`
	CacheStatus interfaces.CacheStatus `json:"cache_status"`
}

// Service runs the fetch, format and render cycle
type Service struct {
	markets interfaces.IMarketsService
	charts  interfaces.IMarketChartService
	cache   cache.Cache
	config  *config.Config
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates the dashboard service. cache is cleared on manual reload.
func NewService(markets interfaces.IMarketsService, charts interfaces.IMarketChartService, c cache.Cache, cfg *config.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		markets: markets,
		charts:  charts,
		cache:   c,
		config:  cfg,
		logger:  logger.Named("dashboard"),
		now:     time.Now,
	}
}

// Render builds the page for sel. Fetch failures never abort the render;
// they become page messages next to an empty table or chart.
func (s *Service) Render(ctx context.Context, sel session.Selection) Page {
	now := s.now()
	page := Page{
		Title:           s.config.Dashboard.Title,
		Footer:          s.config.Dashboard.Footer,
		Year:            now.Year(),
		LoadedAt:        FormatTimestamp(now),
		Selection:       sel,
		CurrencyOptions: session.CurrencyOptions(),
		DayOptions:      session.DayOptions(),
		MinRows:         session.MinRows,
		MaxRows:         session.MaxRows,
		Messages:        []Message{},
	}

	snapshot, err := s.markets.Markets(ctx, s.marketsParams(sel.Currency))
	page.Table = display.BuildTable(snapshot.Entries, sel.Rows, sel.Currency)

	if err != nil || len(snapshot.Entries) == 0 {
		page.MarketsCaption = fmt.Sprintf("Failed to fetch market data. Attempted at: %s", FormatTimestamp(snapshot.FetchedAt))
		if err != nil {
			page.addMessage(LevelError, UserMessage(err))
		}
		page.addMessage(LevelError, "Could not load cryptocurrency data. Check your connection or wait and reload.")
		return page
	}
	page.MarketsOK = true
	page.MarketsCaption = fmt.Sprintf("Market data updated by the API at: %s", FormatTimestamp(snapshot.FetchedAt))

	page.CoinOptions = session.CoinOptions(snapshot.Entries)
	selected, ok := session.Resolve(sel, page.CoinOptions)
	if !ok {
		page.addMessage(LevelWarning, "No coins available for selection.")
		return page
	}
	page.SelectedCoin = &selected
	page.Selection.CoinID = selected.Value

	entry, found := snapshot.FindByID(selected.Value)
	if !found {
		page.addMessage(LevelWarning, "Details of the selected coin were not found.")
		return page
	}
	detail := display.FormatDetail(entry, sel.Currency)
	page.Detail = &detail

	s.renderChart(ctx, &page, selected, sel)
	return page
}

func (s *Service) renderChart(ctx context.Context, page *Page, coin session.Option, sel session.Selection) {
	series, err := s.charts.MarketChart(ctx, interfaces.ChartParams{
		ID:       coin.Value,
		Currency: sel.Currency,
		Days:     sel.DaysParam(),
	})
	if err != nil {
		page.addMessage(LevelError, UserMessage(err))
	}

	fig, plotErr := chart.Plot(series, s.config.Dashboard.ChartWidth, s.config.Dashboard.ChartHeight)
	if plotErr != nil {
		if err == nil {
			s.logger.Debug("nothing to plot", zap.String("coin", coin.Value), zap.Error(plotErr))
		}
		page.addMessage(LevelWarning, fmt.Sprintf("Could not load chart data for %s.", coin.Label))
		return
	}

	page.Chart = &fig
	page.ChartTitle = fmt.Sprintf("Price history (%s)", coin.Label)
	page.ChartYLabel = fmt.Sprintf("Price (%s)", strings.ToUpper(sel.Currency))
	page.ChartCaption = fmt.Sprintf("Chart data updated by the API at: %s", FormatTimestamp(series.FetchedAt))
	page.ChartStart = FormatTimestamp(fig.Start)
	page.ChartEnd = FormatTimestamp(fig.End)
	page.ChartMin = display.FormatPrice(fig.MinPrice, sel.Currency)
	page.ChartMax = display.FormatPrice(fig.MaxPrice, sel.Currency)
}

// MarketTable fetches markets and returns the formatted top rows
func (s *Service) MarketTable(ctx context.Context, currency string, rows int) (TableView, error) {
	snapshot, err := s.markets.Markets(ctx, s.marketsParams(currency))
	return TableView{
		Table:       display.BuildTable(snapshot.Entries, rows, currency),
		FetchedAt:   snapshot.FetchedAt,
		CacheStatus: snapshot.CacheStatus,
	}, err
}

// Chart returns the price series of one coin
func (s *Service) Chart(ctx context.Context, params interfaces.ChartParams) (interfaces.ChartSeries, error) {
	return s.charts.MarketChart(ctx, params)
}

// ClearCache drops every cached fetch result, forcing fresh upstream calls
func (s *Service) ClearCache() {
	if s.cache == nil {
		return
	}
	s.cache.Clear()
	s.logger.Info("cache cleared on request")
}

// Healthy reports the upstream state of each fetcher
func (s *Service) Healthy() map[string]bool {
	return map[string]bool{
		"coingecko_markets":      s.markets.Healthy(),
		"coingecko_market_chart": s.charts.Healthy(),
	}
}

func (s *Service) marketsParams(currency string) interfaces.MarketsParams {
	return interfaces.MarketsParams{
		Currency: currency,
		Order:    s.config.CoingeckoMarkets.Order,
		PerPage:  s.config.CoingeckoMarkets.PerPage,
		Page:     1,
	}
}

func (p *Page) addMessage(level Level, text string) {
	p.Messages = append(p.Messages, Message{Level: level, Text: text})
}

// FormatTimestamp renders t in local time as dd/mm/yyyy hh:mm:ss
func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}
