// Package chart turns a name's trend series into something to look at:
// a line chart for the terminal or a render-ready config for a web client.
package chart

import (
	"fmt"
	"strconv"

	"babynames/internal/models"
	"github.com/guptarohit/asciigraph"
)

const (
	DefaultHeight = 15

	girlsColor = "#EC4899"
	boysColor  = "#4F46E5"
)

// Title is the heading shown above a trend chart.
func Title(name string) string {
	return fmt.Sprintf("Trend for the name %s", name)
}

// Tick shortens a year to its last two digits, e.g. 1985 -> "85".
func Tick(year int) string {
	s := strconv.Itoa(year)
	if len(s) > 2 {
		return s[len(s)-2:]
	}
	return s
}

// Render draws the girls and boys series as one terminal line chart.
// It returns an empty string for an empty series.
func Render(series models.TrendSeries, height int) string {
	if len(series.Years) == 0 {
		return ""
	}
	if height <= 0 {
		height = DefaultHeight
	}

	graph := asciigraph.PlotMany(
		[][]float64{floats(series.Girls), floats(series.Boys)},
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.HotPink, asciigraph.Blue),
		asciigraph.Caption(fmt.Sprintf("%s, %s-%s (pink: Girls, blue: Boys)",
			Title(series.Name), Tick(series.Years[0]), Tick(series.Years[len(series.Years)-1]))),
	)
	return graph
}

// Config builds a line chart config with one point per year.
func Config(series models.TrendSeries) models.ChartConfig {
	return models.ChartConfig{
		ChartType: "line",
		Title:     Title(series.Name),
		XAxis:     "Years",
		YAxis:     "Frequency of Name",
		Series: []models.ChartSeries{
			{Name: "Girls", Data: points(series.Years, series.Girls), Color: girlsColor},
			{Name: "Boys", Data: points(series.Years, series.Boys), Color: boysColor},
		},
		Colors:     []string{girlsColor, boysColor},
		ShowLegend: true,
	}
}

func points(years, values []int) []models.ChartPoint {
	out := make([]models.ChartPoint, 0, len(years))
	for i, y := range years {
		out = append(out, models.ChartPoint{Label: Tick(y), Value: values[i]})
	}
	return out
}

func floats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
