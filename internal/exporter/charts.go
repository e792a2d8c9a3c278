package exporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"kokoloko/internal/analytics"
	"kokoloko/internal/i18n"
	"kokoloko/internal/sales"
)

// Chart output file names.
const (
	DailyRevenueChart    = "daily_revenue.html"
	CategoryRevenueChart = "revenue_by_category.html"
	TopItemsChart        = "top_items.html"
	MenuRevenueChart     = "menu_revenue.html"
	SalesHeatmapChart    = "sales_heatmap.html"
)

// ChartRenderer renders analysis charts as standalone HTML files in the
// output directory.
type ChartRenderer struct {
	outputDir string
	lang      string
}

// NewChartRenderer creates a renderer for the given output directory and
// label language.
func NewChartRenderer(outputDir, lang string) *ChartRenderer {
	return &ChartRenderer{outputDir: outputDir, lang: lang}
}

// RenderWeeklyCharts produces the weekly report charts: a daily revenue
// bar chart, a category revenue pie and a top-items bar chart. An empty
// dataset renders nothing.
func (c *ChartRenderer) RenderWeeklyCharts(ds sales.Dataset, categories []analytics.CategorySummary) ([]string, error) {
	if ds.IsEmpty() {
		return nil, nil
	}
	labels := i18n.For(c.lang)
	var paths []string

	dates, revenues := dailyRevenue(ds)
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: labels.DailyRevenue}),
		charts.WithYAxisOpts(opts.YAxis{Name: labels.Revenue}),
	)
	barData := make([]opts.BarData, len(revenues))
	for i, v := range revenues {
		barData[i] = opts.BarData{Value: v}
	}
	bar.SetXAxis(dates).AddSeries(labels.Revenue, barData)

	path, err := c.render(bar, DailyRevenueChart)
	if err != nil {
		return paths, err
	}
	paths = append(paths, path)

	path, err = c.categoryPie(categories, labels.RevenueByCategory)
	if err != nil {
		return paths, err
	}
	paths = append(paths, path)

	path, err = c.itemRevenueBar(analytics.RankItems(ds), labels.TopItems, TopItemsChart)
	if err != nil {
		return paths, err
	}
	paths = append(paths, path)

	return paths, nil
}

// RenderMenuCharts produces the menu analysis charts: an item revenue
// bar chart, the item-by-weekday heatmap and a category revenue pie.
func (c *ChartRenderer) RenderMenuCharts(perf []analytics.ItemPerformance, patterns analytics.DayPattern, categories []analytics.CategorySummary) ([]string, error) {
	if len(perf) == 0 {
		return nil, nil
	}
	labels := i18n.For(c.lang)
	var paths []string

	path, err := c.itemRevenueBar(perf, labels.BestByRevenue, MenuRevenueChart)
	if err != nil {
		return paths, err
	}
	paths = append(paths, path)

	if !patterns.IsEmpty() {
		path, err = c.salesHeatmap(patterns, labels.HeatmapTitle, labels.Quantity)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	if len(categories) > 0 {
		path, err = c.categoryPie(categories, labels.CategoryBreakdown)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func (c *ChartRenderer) categoryPie(categories []analytics.CategorySummary, title string) (string, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	data := make([]opts.PieData, len(categories))
	for i, cat := range categories {
		data[i] = opts.PieData{Name: cat.Category, Value: cat.TotalRevenue}
	}
	pie.AddSeries(title, data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
	)
	return c.render(pie, CategoryRevenueChart)
}

func (c *ChartRenderer) itemRevenueBar(perf []analytics.ItemPerformance, title, fileName string) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	names := make([]string, len(perf))
	data := make([]opts.BarData, len(perf))
	for i, row := range perf {
		names[i] = row.ItemName
		data[i] = opts.BarData{Value: row.TotalRevenue}
	}
	bar.SetXAxis(names).AddSeries(title, data)
	return c.render(bar, fileName)
}

func (c *ChartRenderer) salesHeatmap(patterns analytics.DayPattern, title, quantityLabel string) (string, error) {
	days := i18n.DayNames(c.lang)

	var data []opts.HeatMapData
	maxQty := 0
	for y, item := range patterns.Items {
		cells := patterns.Quantities[item]
		for x := 0; x < 7; x++ {
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, y, cells[x]}})
			if cells[x] > maxQty {
				maxQty = cells[x]
			}
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: days[:]}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: patterns.Items}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxQty),
			Text:       []string{quantityLabel, ""},
		}),
	)
	hm.AddSeries(quantityLabel, data)
	return c.render(hm, SalesHeatmapChart)
}

type renderable interface {
	Render(w io.Writer) error
}

func (c *ChartRenderer) render(chart renderable, fileName string) (string, error) {
	if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	fullPath := filepath.Join(c.outputDir, fileName)
	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return "", fmt.Errorf("render chart %s: %w", fileName, err)
	}
	return fullPath, nil
}

// dailyRevenue sums revenue per calendar date, sorted chronologically,
// with dates formatted as month-day labels.
func dailyRevenue(ds sales.Dataset) ([]string, []float64) {
	totals := make(map[time.Time]float64)
	for _, r := range ds {
		totals[r.Date] += r.Revenue
	}

	dates := make([]time.Time, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	labels := make([]string, len(dates))
	values := make([]float64, len(dates))
	for i, d := range dates {
		labels[i] = d.Format("01-02")
		values[i] = totals[d]
	}
	return labels, values
}
