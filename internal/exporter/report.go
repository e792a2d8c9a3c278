package exporter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"kokoloko/internal/analytics"
	"kokoloko/internal/i18n"
)

// Output file names for the text reports.
const (
	WeeklyReportTxt = "weekly_report.txt"
	MenuAnalysisTxt = "menu_analysis.txt"
)

// FormatWeeklyReport renders the weekly metrics as a human-readable
// text block with localized labels.
func FormatWeeklyReport(m analytics.WeeklyMetrics, lang string) string {
	labels := i18n.For(lang)

	start, end := "?", "?"
	if m.StartDate != nil {
		start = m.StartDate.Format("Jan 02")
	}
	if m.EndDate != nil {
		end = m.EndDate.Format("Jan 02, 2006")
	}

	wowSign := ""
	if m.WoWChange >= 0 {
		wowSign = "+"
	}
	starSign := ""
	if m.RisingStarPct >= 0 {
		starSign = "+"
	}

	rule := strings.Repeat("=", 50)
	lines := []string{
		rule,
		"  " + labels.ReportTitle,
		fmt.Sprintf("  %s - %s", start, end),
		rule,
		fmt.Sprintf("  %s €%s (%s%.1f%% WoW)", dotPad(labels.TotalRevenue, 30), formatMoney(m.TotalRevenue), wowSign, m.WoWChange),
		fmt.Sprintf("  %s %d", dotPad(labels.TotalItemsSold, 30), m.TotalQuantity),
		fmt.Sprintf("  %s €%s", dotPad(labels.AvgDailyRevenue, 30), formatMoney(m.AvgDaily)),
		fmt.Sprintf("  %s %s", dotPad(labels.TopSeller, 30), m.TopSeller),
		fmt.Sprintf("  %s %s", dotPad(labels.SlowMover, 30), m.SlowMover),
		fmt.Sprintf("  %s %s (%s%.0f%%)", dotPad(labels.RisingStar, 30), m.RisingStar, starSign, m.RisingStarPct),
		rule,
	}
	return strings.Join(lines, "\n")
}

// FormatMenuReport renders the menu analysis: best and worst performers,
// category breakdown and recommendations.
func FormatMenuReport(perf []analytics.ItemPerformance, categories []analytics.CategorySummary, recs []analytics.Recommendation, lang string) string {
	labels := i18n.For(lang)

	rule := strings.Repeat("=", 55)
	subRule := "  " + strings.Repeat("-", 40)
	var lines []string

	lines = append(lines, rule, "  "+labels.MenuTitle, rule)

	lines = append(lines, "", "  "+labels.BestByRevenue, subRule)
	for _, row := range headRows(perf, 3) {
		lines = append(lines, fmt.Sprintf("  %-25s €%8.2f  (%d sold)", row.ItemName, row.TotalRevenue, row.TotalQuantity))
	}

	lines = append(lines, "", "  "+labels.WorstByRevenue, subRule)
	for _, row := range tailRows(perf, 3) {
		lines = append(lines, fmt.Sprintf("  %-25s €%8.2f  (%d sold)", row.ItemName, row.TotalRevenue, row.TotalQuantity))
	}

	lines = append(lines, "", "  "+labels.CategoryBreakdown, subRule)
	for _, cat := range categories {
		lines = append(lines, fmt.Sprintf("  %-20s €%8.2f  (%.1f%%)", cat.Category, cat.TotalRevenue, cat.RevenuePct))
	}

	lines = append(lines, "", "  "+labels.Recommendations, subRule)
	actionLabels := map[analytics.Action]string{
		analytics.ActionPromote:  labels.Promote,
		analytics.ActionDiscount: labels.Discount,
		analytics.ActionRemove:   labels.Remove,
	}
	for _, rec := range recs {
		label, ok := actionLabels[rec.Action]
		if !ok {
			label = strings.ToUpper(string(rec.Action))
		}
		lines = append(lines, fmt.Sprintf("  [%s] %s: %s", label, rec.Item, rec.Reason))
	}

	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

func headRows(perf []analytics.ItemPerformance, n int) []analytics.ItemPerformance {
	if len(perf) < n {
		n = len(perf)
	}
	return perf[:n]
}

func tailRows(perf []analytics.ItemPerformance, n int) []analytics.ItemPerformance {
	if len(perf) < n {
		n = len(perf)
	}
	return perf[len(perf)-n:]
}

// dotPad left-justifies a label and pads it with dots to the given
// width, counted in runes so localized labels line up.
func dotPad(label string, width int) string {
	n := width - utf8.RuneCountInString(label)
	if n < 0 {
		n = 0
	}
	return label + strings.Repeat(".", n)
}

// formatMoney renders a value with two decimals and thousands separators.
func formatMoney(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, fracPart, _ := strings.Cut(s, ".")

	var sb strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	out := sb.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
