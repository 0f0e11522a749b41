package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-im/market-dashboard/interfaces"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func series(prices ...float64) interfaces.ChartSeries {
	points := make([]interfaces.PricePoint, 0, len(prices))
	for i, p := range prices {
		points = append(points, interfaces.PricePoint{Timestamp: base.Add(time.Duration(i) * time.Hour), Price: p})
	}
	return interfaces.ChartSeries{CoinID: "bitcoin", Points: points}
}

func TestPlot_Empty(t *testing.T) {
	_, err := Plot(interfaces.ChartSeries{}, 100, 100)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestPlot_InvalidSize(t *testing.T) {
	_, err := Plot(series(1), 0, 100)
	assert.Error(t, err)
}

func TestPlot_SinglePoint(t *testing.T) {
	fig, err := Plot(series(42), 124, 124)
	require.NoError(t, err)

	require.True(t, fig.SinglePoint())
	assert.Equal(t, Vertex{X: 62, Y: 62}, fig.Vertices[0])
	assert.Equal(t, 42.0, fig.MinPrice)
	assert.Equal(t, 42.0, fig.MaxPrice)
	assert.Equal(t, fig.Start, fig.End)
}

func TestPlot_ScalesToBox(t *testing.T) {
	fig, err := Plot(series(10, 30, 20), 224, 124)
	require.NoError(t, err)
	require.Len(t, fig.Vertices, 3)

	// Plot area is 200x100 after margins
	assert.Equal(t, Vertex{X: 12, Y: 112}, fig.Vertices[0])
	assert.Equal(t, Vertex{X: 112, Y: 12}, fig.Vertices[1])
	assert.Equal(t, Vertex{X: 212, Y: 62}, fig.Vertices[2])

	assert.Equal(t, 10.0, fig.MinPrice)
	assert.Equal(t, 30.0, fig.MaxPrice)
	assert.Equal(t, base, fig.Start)
	assert.Equal(t, base.Add(2*time.Hour), fig.End)
	assert.Equal(t, "12.0,112.0 112.0,12.0 212.0,62.0", fig.Polyline())
}

func TestPlot_FlatSeries(t *testing.T) {
	fig, err := Plot(series(5, 5), 124, 124)
	require.NoError(t, err)
	for _, v := range fig.Vertices {
		assert.Equal(t, 62.0, v.Y)
	}
}

func TestPlot_PreservesSourceOrder(t *testing.T) {
	s := series(1, 2, 3)
	s.Points[0], s.Points[2] = s.Points[2], s.Points[0]

	fig, err := Plot(s, 224, 124)
	require.NoError(t, err)

	assert.Greater(t, fig.Vertices[0].X, fig.Vertices[2].X)
}
