// Package chart turns a price series into line-chart geometry for SVG rendering.
package chart

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/status-im/market-dashboard/interfaces"
)

// ErrEmptySeries is returned when there is nothing to plot
var ErrEmptySeries = errors.New("price series is empty")

// Plot margins in pixels, inside the figure box
const (
	marginLeft   = 12.0
	marginRight  = 12.0
	marginTop    = 12.0
	marginBottom = 12.0
)

// Vertex is a point in figure coordinates, origin top-left
type Vertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Figure is a line chart scaled to a Width x Height box
type Figure struct {
	Width    int       `json:"width"`
	Height   int       `json:"height"`
	Vertices []Vertex  `json:"vertices"`
	MinPrice float64   `json:"min_price"`
	MaxPrice float64   `json:"max_price"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// Plot scales series into a width x height figure. Time maps to X and price
// to Y; a flat series or a single point is drawn at mid height.
func Plot(series interfaces.ChartSeries, width, height int) (Figure, error) {
	if series.Empty() {
		return Figure{}, ErrEmptySeries
	}
	if width <= 0 || height <= 0 {
		return Figure{}, fmt.Errorf("invalid figure size %dx%d", width, height)
	}

	points := series.Points
	fig := Figure{
		Width:    width,
		Height:   height,
		Vertices: make([]Vertex, 0, len(points)),
		MinPrice: points[0].Price,
		MaxPrice: points[0].Price,
		Start:    points[0].Timestamp,
		End:      points[0].Timestamp,
	}
	for _, p := range points[1:] {
		if p.Price < fig.MinPrice {
			fig.MinPrice = p.Price
		}
		if p.Price > fig.MaxPrice {
			fig.MaxPrice = p.Price
		}
		if p.Timestamp.Before(fig.Start) {
			fig.Start = p.Timestamp
		}
		if p.Timestamp.After(fig.End) {
			fig.End = p.Timestamp
		}
	}

	plotWidth := float64(width) - marginLeft - marginRight
	plotHeight := float64(height) - marginTop - marginBottom
	span := fig.End.Sub(fig.Start).Seconds()
	priceRange := fig.MaxPrice - fig.MinPrice

	for _, p := range points {
		x := marginLeft + plotWidth/2
		if span > 0 {
			x = marginLeft + plotWidth*p.Timestamp.Sub(fig.Start).Seconds()/span
		}
		y := marginTop + plotHeight/2
		if priceRange > 0 {
			y = marginTop + plotHeight*(1-(p.Price-fig.MinPrice)/priceRange)
		}
		fig.Vertices = append(fig.Vertices, Vertex{X: x, Y: y})
	}

	return fig, nil
}

// Polyline renders the vertices as an SVG points attribute
func (f Figure) Polyline() string {
	var sb strings.Builder
	for i, v := range f.Vertices {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", v.X, v.Y)
	}
	return sb.String()
}

// SinglePoint reports whether the figure has exactly one vertex
func (f Figure) SinglePoint() bool {
	return len(f.Vertices) == 1
}
