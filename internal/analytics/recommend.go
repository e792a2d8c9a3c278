package analytics

import (
	"fmt"
	"sort"
)

// weekendSkewThreshold is the weekend/weekday sales ratio above which an
// item is worth promoting as a weekend special.
const weekendSkewThreshold = 2.0

// Recommend applies the menu recommendation rules to a ranked
// performance table and the day-of-week pattern grid.
//
// The top third of items by revenue (at least one) is promoted. The
// bottom third is either removed (volume below half the median) or
// discounted. With fewer than three items the two tiers overlap, so a
// single item can be both promoted and discounted; that mirrors the
// tier arithmetic and is accepted behavior. Weekend-skewed items gain
// an extra promote on top of anything from the tier rules.
func Recommend(perf []ItemPerformance, patterns DayPattern) []Recommendation {
	var recs []Recommendation
	if len(perf) == 0 {
		return recs
	}

	tierSize := len(perf) / 3
	if tierSize < 1 {
		tierSize = 1
	}

	for _, row := range perf[:tierSize] {
		recs = append(recs, Recommendation{
			Action: ActionPromote,
			Item:   row.ItemName,
			Reason: fmt.Sprintf("Top revenue: €%.2f, %d sold", row.TotalRevenue, row.TotalQuantity),
		})
	}

	median := medianQuantity(perf)
	for _, row := range perf[len(perf)-tierSize:] {
		if float64(row.TotalQuantity) < median*0.5 {
			recs = append(recs, Recommendation{
				Action: ActionRemove,
				Item:   row.ItemName,
				Reason: fmt.Sprintf("Low volume (%d) and low revenue (€%.2f)", row.TotalQuantity, row.TotalRevenue),
			})
		} else {
			recs = append(recs, Recommendation{
				Action: ActionDiscount,
				Item:   row.ItemName,
				Reason: fmt.Sprintf("Below average revenue (€%.2f), decent volume (%d)", row.TotalRevenue, row.TotalQuantity),
			})
		}
	}

	recs = append(recs, weekendSkewRecommendations(patterns)...)
	return recs
}

func medianQuantity(perf []ItemPerformance) float64 {
	quantities := make([]int, len(perf))
	for i, row := range perf {
		quantities[i] = row.TotalQuantity
	}
	sort.Ints(quantities)

	mid := len(quantities) / 2
	if len(quantities)%2 == 1 {
		return float64(quantities[mid])
	}
	return float64(quantities[mid-1]+quantities[mid]) / 2
}

// weekendSkewRecommendations promotes items that sell disproportionately
// on weekends. Only weekdays actually present in the data participate in
// either mean, and a zero weekday mean is substituted with 1 to keep the
// ratio finite.
func weekendSkewRecommendations(patterns DayPattern) []Recommendation {
	if patterns.IsEmpty() {
		return nil
	}

	var weekendDays, weekdayDays []int
	for day := 0; day < 7; day++ {
		if !patterns.DaysPresent[day] {
			continue
		}
		if day >= 5 {
			weekendDays = append(weekendDays, day)
		} else {
			weekdayDays = append(weekdayDays, day)
		}
	}
	if len(weekendDays) == 0 || len(weekdayDays) == 0 {
		return nil
	}

	var recs []Recommendation
	for _, item := range patterns.Items {
		cells := patterns.Quantities[item]

		weekendAvg := meanOver(cells, weekendDays)
		weekdayAvg := meanOver(cells, weekdayDays)
		if weekdayAvg == 0 {
			weekdayAvg = 1
		}

		if ratio := weekendAvg / weekdayAvg; ratio > weekendSkewThreshold {
			recs = append(recs, Recommendation{
				Action: ActionPromote,
				Item:   item,
				Reason: fmt.Sprintf("Sells %.1fx more on weekends — great for weekend specials", ratio),
			})
		}
	}
	return recs
}

func meanOver(cells [7]int, days []int) float64 {
	var sum int
	for _, day := range days {
		sum += cells[day]
	}
	return float64(sum) / float64(len(days))
}
