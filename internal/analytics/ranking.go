package analytics

import (
	"math"
	"sort"
	"time"

	"kokoloko/internal/sales"
)

// RankItems aggregates the dataset per menu item and ranks the result.
// Rows are sorted by total revenue descending; ties keep the order in
// which the items first appear in the input. Revenue and volume ranks
// are assigned independently using competition ranking.
//
// An empty dataset yields an empty table.
func RankItems(ds sales.Dataset) []ItemPerformance {
	if ds.IsEmpty() {
		return nil
	}

	index := make(map[string]int)
	var items []*itemAccumulator
	for _, r := range ds {
		i, ok := index[r.ItemName]
		if !ok {
			i = len(items)
			index[r.ItemName] = i
			items = append(items, &itemAccumulator{name: r.ItemName, days: make(map[time.Time]struct{})})
		}
		acc := items[i]
		acc.revenue += r.Revenue
		acc.quantity += r.Quantity
		acc.priceSum += r.UnitPrice
		acc.rows++
		acc.days[r.Date] = struct{}{}
	}

	perf := make([]ItemPerformance, len(items))
	for i, acc := range items {
		perf[i] = ItemPerformance{
			ItemName:      acc.name,
			TotalRevenue:  acc.revenue,
			TotalQuantity: acc.quantity,
			AvgUnitPrice:  acc.priceSum / float64(acc.rows),
			DaysSold:      len(acc.days),
		}
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].TotalRevenue > perf[j].TotalRevenue
	})

	assignRanks(perf)
	return perf
}

type itemAccumulator struct {
	name     string
	revenue  float64
	quantity int
	priceSum float64
	rows     int
	days     map[time.Time]struct{}
}

// assignRanks applies competition ranking over both metrics: an item's
// rank is one plus the number of items with a strictly better value.
func assignRanks(perf []ItemPerformance) {
	for i := range perf {
		revRank, volRank := 1, 1
		for j := range perf {
			if perf[j].TotalRevenue > perf[i].TotalRevenue {
				revRank++
			}
			if perf[j].TotalQuantity > perf[i].TotalQuantity {
				volRank++
			}
		}
		perf[i].RevenueRank = revRank
		perf[i].VolumeRank = volRank
	}
}

// DayPatterns builds the dense item-by-weekday quantity grid. Items keep
// first-encounter order; cells without sales are zero.
func DayPatterns(ds sales.Dataset) DayPattern {
	pattern := DayPattern{Quantities: make(map[string][7]int)}
	if ds.IsEmpty() {
		return pattern
	}

	for _, r := range ds {
		day := sales.ISOWeekday(r.Date)
		pattern.DaysPresent[day] = true
		if _, ok := pattern.Quantities[r.ItemName]; !ok {
			pattern.Items = append(pattern.Items, r.ItemName)
		}
		cells := pattern.Quantities[r.ItemName]
		cells[day] += r.Quantity
		pattern.Quantities[r.ItemName] = cells
	}
	return pattern
}

// SummarizeCategories aggregates revenue, quantity and distinct item
// counts per category, with each category's share of the grand total
// rounded to one decimal. Sorted by total revenue descending, ties in
// first-encounter order.
func SummarizeCategories(ds sales.Dataset) []CategorySummary {
	if ds.IsEmpty() {
		return nil
	}

	index := make(map[string]int)
	var summaries []CategorySummary
	itemSets := make(map[string]map[string]struct{})

	for _, r := range ds {
		i, ok := index[r.Category]
		if !ok {
			i = len(summaries)
			index[r.Category] = i
			summaries = append(summaries, CategorySummary{Category: r.Category})
			itemSets[r.Category] = make(map[string]struct{})
		}
		summaries[i].TotalRevenue += r.Revenue
		summaries[i].TotalQuantity += r.Quantity
		itemSets[r.Category][r.ItemName] = struct{}{}
	}

	var grandTotal float64
	for i := range summaries {
		summaries[i].ItemCount = len(itemSets[summaries[i].Category])
		grandTotal += summaries[i].TotalRevenue
	}
	if grandTotal > 0 {
		for i := range summaries {
			summaries[i].RevenuePct = math.Round(summaries[i].TotalRevenue/grandTotal*1000) / 10
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalRevenue > summaries[j].TotalRevenue
	})
	return summaries
}
