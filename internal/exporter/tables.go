package exporter

import (
	"fmt"
	"strconv"

	"kokoloko/internal/analytics"
	"kokoloko/internal/i18n"
)

// Output file names for the exported tables.
const (
	ItemPerformanceCSV = "item_performance.csv"
	DayPatternCSV      = "day_patterns.csv"
	CategorySummaryCSV = "category_summary.csv"
)

// WritePerformanceTable persists the ranked item table as CSV.
func (w *CSVWriter) WritePerformanceTable(perf []analytics.ItemPerformance) (string, error) {
	headers := []string{"ItemName", "TotalRevenue", "TotalQuantity", "AvgUnitPrice", "DaysSold", "RevenueRank", "VolumeRank"}
	records := make([][]string, len(perf))
	for i, row := range perf {
		records[i] = []string{
			row.ItemName,
			formatFloat(row.TotalRevenue),
			strconv.Itoa(row.TotalQuantity),
			formatFloat(row.AvgUnitPrice),
			strconv.Itoa(row.DaysSold),
			strconv.Itoa(row.RevenueRank),
			strconv.Itoa(row.VolumeRank),
		}
	}
	return w.WriteSimpleCSV(ItemPerformanceCSV, headers, records)
}

// WriteDayPatternTable persists the item-by-weekday grid as CSV with
// localized weekday column names.
func (w *CSVWriter) WriteDayPatternTable(patterns analytics.DayPattern, lang string) (string, error) {
	days := i18n.DayNames(lang)
	headers := append([]string{"ItemName"}, days[:]...)

	records := make([][]string, len(patterns.Items))
	for i, item := range patterns.Items {
		row := make([]string, 0, 8)
		row = append(row, item)
		cells := patterns.Quantities[item]
		for day := 0; day < 7; day++ {
			row = append(row, strconv.Itoa(cells[day]))
		}
		records[i] = row
	}
	return w.WriteSimpleCSV(DayPatternCSV, headers, records)
}

// WriteCategoryTable persists the category breakdown as CSV.
func (w *CSVWriter) WriteCategoryTable(categories []analytics.CategorySummary) (string, error) {
	headers := []string{"Category", "TotalRevenue", "TotalQuantity", "ItemCount", "RevenuePct"}
	records := make([][]string, len(categories))
	for i, cat := range categories {
		records[i] = []string{
			cat.Category,
			formatFloat(cat.TotalRevenue),
			strconv.Itoa(cat.TotalQuantity),
			strconv.Itoa(cat.ItemCount),
			fmt.Sprintf("%.1f", cat.RevenuePct),
		}
	}
	return w.WriteSimpleCSV(CategorySummaryCSV, headers, records)
}

// formatFloat formats a monetary value with exactly 2 decimal places so
// values like 13.4 appear as 13.40 in CSV.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
