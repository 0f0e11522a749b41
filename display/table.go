package display

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/status-im/market-dashboard/interfaces"
)

// Align is the horizontal alignment of a column
type Align string

const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// Column keys in display order
const (
	ColumnRank      = "rank"
	ColumnName      = "name"
	ColumnPrice     = "price"
	ColumnChange1h  = "change_1h"
	ColumnChange24h = "change_24h"
	ColumnChange7d  = "change_7d"
	ColumnMarketCap = "market_cap"
)

// Column holds presentation metadata shared by every cell of a column
type Column struct {
	Key    string `json:"key"`
	Header string `json:"header"`
	Align  Align  `json:"align"`
	Bold   bool   `json:"bold"`
}

// Cell is one rendered value. Styled is set on change cells holding a value.
type Cell struct {
	Text   string `json:"text"`
	Style  Style  `json:"style"`
	Styled bool   `json:"styled"`
}

// CSS returns the inline style of the cell, empty when unstyled
func (c Cell) CSS() string {
	if !c.Styled {
		return ""
	}
	return c.Style.CSS()
}

// Row is the display projection of one MarketEntry, cells in column order
type Row struct {
	CoinID string `json:"id"`
	Cells  []Cell `json:"cells"`
}

// Table is the formatted market table
type Table struct {
	Currency string   `json:"vs_currency"`
	Columns  []Column `json:"columns"`
	Rows     []Row    `json:"rows"`
}

// Columns returns the column metadata for currency
func Columns(currency string) []Column {
	code := strings.ToUpper(interfaces.NormalizeCurrency(currency))
	return []Column{
		{Key: ColumnRank, Header: "Rank", Align: AlignCenter, Bold: true},
		{Key: ColumnName, Header: "Name", Align: AlignLeft, Bold: true},
		{Key: ColumnPrice, Header: fmt.Sprintf("Price (%s)", code), Align: AlignRight},
		{Key: ColumnChange1h, Header: "Change (1h) %", Align: AlignRight},
		{Key: ColumnChange24h, Header: "Change (24h) %", Align: AlignRight},
		{Key: ColumnChange7d, Header: "Change (7d) %", Align: AlignRight},
		{Key: ColumnMarketCap, Header: fmt.Sprintf("Market Cap (%s)", code), Align: AlignRight},
	}
}

// FilterTopRanked keeps the entries ranked at most n, ordered by rank.
// Unranked entries are dropped; equal ranks keep their input order.
func FilterTopRanked(entries []interfaces.MarketEntry, n int) []interfaces.MarketEntry {
	filtered := make([]interfaces.MarketEntry, 0, n)
	for _, e := range entries {
		if e.MarketCapRank != nil && *e.MarketCapRank <= n {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return *filtered[i].MarketCapRank < *filtered[j].MarketCapRank
	})
	return filtered
}

// FormatTable renders entries as table rows for currency. A missing field
// never fails its row; it renders as NotAvailable.
func FormatTable(entries []interfaces.MarketEntry, currency string) Table {
	currency = interfaces.NormalizeCurrency(currency)
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, formatRow(e, currency))
	}
	return Table{
		Currency: currency,
		Columns:  Columns(currency),
		Rows:     rows,
	}
}

// BuildTable filters entries to the top limit ranks and formats them
func BuildTable(entries []interfaces.MarketEntry, limit int, currency string) Table {
	return FormatTable(FilterTopRanked(entries, limit), currency)
}

func formatRow(e interfaces.MarketEntry, currency string) Row {
	symbol := CurrencySymbol(currency)
	return Row{
		CoinID: e.ID,
		Cells: []Cell{
			{Text: formatRank(e.MarketCapRank)},
			{Text: FormatName(e)},
			{Text: formatMoney(e.CurrentPrice, symbol, currency, 2)},
			changeCell(e.PriceChange1h, currency),
			changeCell(e.PriceChange24h, currency),
			changeCell(e.PriceChange7d, currency),
			{Text: formatMoney(e.MarketCap, symbol, currency, 2)},
		},
	}
}

// FormatName renders "Name (SYMBOL)" with NotAvailable for missing parts
func FormatName(e interfaces.MarketEntry) string {
	name, symbol := e.Name, strings.ToUpper(e.Symbol)
	if name == "" {
		name = NotAvailable
	}
	if symbol == "" {
		symbol = NotAvailable
	}
	return fmt.Sprintf("%s (%s)", name, symbol)
}

func formatRank(rank *int) string {
	if rank == nil {
		return NotAvailable
	}
	return strconv.Itoa(*rank)
}

func formatMoney(v *float64, symbol, currency string, decimals int) string {
	s, ok := formatAmount(v, decimals)
	if !ok {
		return s
	}
	return symbol + localize(s, currency)
}

func changeCell(v *float64, currency string) Cell {
	s, ok := formatPercent(v)
	if !ok {
		return Cell{Text: s, Style: StyleNeutral}
	}
	return Cell{Text: localize(s, currency), Style: ChangeStyle(v), Styled: true}
}

// FormatPrice renders a single price with the table currency conventions
func FormatPrice(v float64, currency string) string {
	currency = interfaces.NormalizeCurrency(currency)
	return formatMoney(&v, CurrencySymbol(currency), currency, 2)
}
