package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kokoloko/internal/sales"
)

func TestRankItems(t *testing.T) {
	ds := sales.Dataset{
		rec("2025-06-09", "Sarma", "Mains", 10, 5),   // 50
		rec("2025-06-10", "Sarma", "Mains", 4, 6),    // 24
		rec("2025-06-09", "Cevapi", "Mains", 5, 8),   // 40
		rec("2025-06-10", "Rakija", "Drinks", 20, 1), // 20
	}

	perf := RankItems(ds)

	require.Len(t, perf, 3)
	assert.Equal(t, "Sarma", perf[0].ItemName)
	assert.Equal(t, "Cevapi", perf[1].ItemName)
	assert.Equal(t, "Rakija", perf[2].ItemName)

	sarma := perf[0]
	assert.InDelta(t, 74.0, sarma.TotalRevenue, 1e-9)
	assert.Equal(t, 14, sarma.TotalQuantity)
	assert.InDelta(t, 5.5, sarma.AvgUnitPrice, 1e-9)
	assert.Equal(t, 2, sarma.DaysSold)
	assert.Equal(t, 1, sarma.RevenueRank)

	// Volume ranks are independent of revenue ranks: Rakija moves the
	// most units despite the lowest revenue.
	assert.Equal(t, 1, perf[2].VolumeRank)
	assert.Equal(t, 3, perf[2].RevenueRank)
}

func TestRankItems_RevenueConservation(t *testing.T) {
	ds := sales.Dataset{
		rec("2025-06-09", "Sarma", "Mains", 10, 5),
		rec("2025-06-10", "Cevapi", "Mains", 5, 8),
		rec("2025-06-11", "Baklava", "Desserts", 7, 3.5),
		rec("2025-06-11", "Sarma", "Mains", 3, 5),
	}

	perf := RankItems(ds)

	var grouped float64
	for _, row := range perf {
		grouped += row.TotalRevenue
	}
	assert.InDelta(t, ds.TotalRevenue(), grouped, 1e-9)
}

func TestRankItems_Ties(t *testing.T) {
	ds := sales.Dataset{
		rec("2025-06-09", "Sarma", "Mains", 10, 5),  // 50
		rec("2025-06-09", "Cevapi", "Mains", 5, 10), // 50
		rec("2025-06-09", "Rakija", "Drinks", 5, 4), // 20
	}

	perf := RankItems(ds)

	require.Len(t, perf, 3)
	// Equal revenues share a rank; the next distinct value resumes at
	// the count of strictly better items plus one.
	assert.Equal(t, 1, perf[0].RevenueRank)
	assert.Equal(t, 1, perf[1].RevenueRank)
	assert.Equal(t, 3, perf[2].RevenueRank)
	// Ties keep first-encounter order.
	assert.Equal(t, "Sarma", perf[0].ItemName)
	assert.Equal(t, "Cevapi", perf[1].ItemName)
}

func TestRankItems_Empty(t *testing.T) {
	assert.Empty(t, RankItems(sales.Dataset{}))
}

func TestDayPatterns(t *testing.T) {
	ds := sales.Dataset{
		rec("2025-06-02", "Sarma", "Mains", 3, 5), // Monday
		rec("2025-06-09", "Sarma", "Mains", 2, 5), // next Monday
		rec("2025-06-07", "Sarma", "Mains", 8, 5), // Saturday
		rec("2025-06-07", "Cevapi", "Mains", 1, 8),
	}

	patterns := DayPatterns(ds)

	require.Len(t, patterns.Items, 2)
	assert.Equal(t, []string{"Sarma", "Cevapi"}, patterns.Items)

	sarma := patterns.Quantities["Sarma"]
	assert.Equal(t, 5, sarma[0]) // Mondays summed
	assert.Equal(t, 8, sarma[5]) // Saturday
	assert.Equal(t, 0, sarma[2]) // no Wednesday sales

	assert.True(t, patterns.DaysPresent[0])
	assert.True(t, patterns.DaysPresent[5])
	assert.False(t, patterns.DaysPresent[6])
}

func TestDayPatterns_Empty(t *testing.T) {
	patterns := DayPatterns(sales.Dataset{})
	assert.True(t, patterns.IsEmpty())
}

func TestSummarizeCategories(t *testing.T) {
	ds := sales.Dataset{
		rec("2025-06-09", "Sarma", "Mains", 10, 5),    // 50
		rec("2025-06-09", "Cevapi", "Mains", 5, 8),    // 40
		rec("2025-06-09", "Rakija", "Drinks", 2, 5),   // 10
	}

	cats := SummarizeCategories(ds)

	require.Len(t, cats, 2)
	assert.Equal(t, "Mains", cats[0].Category)
	assert.InDelta(t, 90.0, cats[0].TotalRevenue, 1e-9)
	assert.Equal(t, 2, cats[0].ItemCount)
	assert.InDelta(t, 90.0, cats[0].RevenuePct, 1e-9)
	assert.InDelta(t, 10.0, cats[1].RevenuePct, 1e-9)
}

func TestSummarizeCategories_PctSumsToHundred(t *testing.T) {
	ds := sales.Dataset{
		rec("2025-06-09", "Sarma", "Mains", 3, 7.3),
		rec("2025-06-09", "Baklava", "Desserts", 7, 3.7),
		rec("2025-06-09", "Rakija", "Drinks", 11, 4.1),
		rec("2025-06-09", "Shopska Salad", "Salads", 2, 6.9),
	}

	cats := SummarizeCategories(ds)

	var pctSum float64
	for _, cat := range cats {
		pctSum += cat.RevenuePct
	}
	assert.InDelta(t, 100.0, pctSum, 1.0)
}

func TestSummarizeCategories_ZeroRevenue(t *testing.T) {
	ds := sales.Dataset{rec("2025-06-09", "Water", "Drinks", 5, 0)}

	cats := SummarizeCategories(ds)

	require.Len(t, cats, 1)
	assert.Equal(t, 0.0, cats[0].RevenuePct)
}

func TestSummarizeCategories_Empty(t *testing.T) {
	assert.Empty(t, SummarizeCategories(sales.Dataset{}))
}
