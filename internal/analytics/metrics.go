package analytics

import (
	"sort"

	"kokoloko/internal/sales"
)

// ComputeMetrics derives the weekly key figures from the current window,
// using the previous window only for the comparative fields. It is a
// pure function: identical inputs always produce identical output.
func ComputeMetrics(current, previous sales.Dataset) WeeklyMetrics {
	m := WeeklyMetrics{
		TotalRevenue:  current.TotalRevenue(),
		TotalQuantity: current.TotalQuantity(),
		TopSeller:     NoItem,
		SlowMover:     NoItem,
		RisingStar:    NoItem,
	}

	numDays := current.DistinctDates()
	if numDays < 1 {
		numDays = 1
	}
	m.AvgDaily = m.TotalRevenue / float64(numDays)

	if prevRevenue := previous.TotalRevenue(); prevRevenue > 0 {
		m.WoWChange = (m.TotalRevenue - prevRevenue) / prevRevenue * 100
	}

	currItems := revenueByItem(current)
	prevItems := revenueByItem(previous)

	if len(currItems) > 0 {
		m.TopSeller, m.SlowMover = extremes(currItems)
	}

	// Rising star: largest per-item revenue change over the union of
	// items seen in either week. An item with no previous-week revenue
	// has no meaningful baseline, so its change is pinned to 0.0 rather
	// than treated as infinite growth.
	if len(currItems) > 0 {
		if star, pct, ok := risingStar(currItems, prevItems); ok {
			m.RisingStar = star
			m.RisingStarPct = pct
		}
	}

	if start, ok := current.MinDate(); ok {
		end, _ := current.MaxDate()
		m.StartDate = &start
		m.EndDate = &end
	}

	return m
}

func revenueByItem(ds sales.Dataset) map[string]float64 {
	out := make(map[string]float64)
	for _, r := range ds {
		out[r.ItemName] += r.Revenue
	}
	return out
}

// extremes returns the items with the highest and lowest total revenue.
// Ties resolve to the alphabetically first item for stable output.
func extremes(revenue map[string]float64) (top, low string) {
	items := sortedKeys(revenue)
	top, low = items[0], items[0]
	for _, item := range items[1:] {
		if revenue[item] > revenue[top] {
			top = item
		}
		if revenue[item] < revenue[low] {
			low = item
		}
	}
	return top, low
}

func risingStar(curr, prev map[string]float64) (string, float64, bool) {
	union := make(map[string]struct{}, len(curr)+len(prev))
	for item := range curr {
		union[item] = struct{}{}
	}
	for item := range prev {
		union[item] = struct{}{}
	}
	if len(union) == 0 {
		return "", 0, false
	}

	items := make([]string, 0, len(union))
	for item := range union {
		items = append(items, item)
	}
	sort.Strings(items)

	star := items[0]
	best := changePct(curr[star], prev[star])
	for _, item := range items[1:] {
		if pct := changePct(curr[item], prev[item]); pct > best {
			star = item
			best = pct
		}
	}
	return star, best, true
}

func changePct(current, previous float64) float64 {
	if previous <= 0 {
		return 0.0
	}
	return (current - previous) / previous * 100
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
