package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kokoloko/internal/sales"
)

func actionsFor(recs []Recommendation, item string) []Action {
	var out []Action
	for _, r := range recs {
		if r.Item == item {
			out = append(out, r.Action)
		}
	}
	return out
}

func TestRecommend_TopAndBottomTiers(t *testing.T) {
	// Six items, tier size 2: two promotes, two bottom-tier entries.
	ds := sales.Dataset{
		rec("2025-06-09", "Sarma", "Mains", 30, 5),    // 150
		rec("2025-06-09", "Cevapi", "Mains", 20, 6),   // 120
		rec("2025-06-09", "Baklava", "Desserts", 15, 4), // 60
		rec("2025-06-09", "Shopska Salad", "Salads", 12, 4), // 48
		rec("2025-06-09", "Turkish Coffee", "Drinks", 10, 2), // 20
		rec("2025-06-09", "Rakija", "Drinks", 2, 4),   // 8
	}
	perf := RankItems(ds)

	recs := Recommend(perf, DayPatterns(ds))

	assert.ElementsMatch(t, []Action{ActionPromote}, actionsFor(recs, "Sarma"))
	assert.ElementsMatch(t, []Action{ActionPromote}, actionsFor(recs, "Cevapi"))
	// Median quantity is 13.5; Turkish Coffee (10) stays above half of
	// that, Rakija (2) does not.
	assert.ElementsMatch(t, []Action{ActionDiscount}, actionsFor(recs, "Turkish Coffee"))
	assert.ElementsMatch(t, []Action{ActionRemove}, actionsFor(recs, "Rakija"))
	assert.Empty(t, actionsFor(recs, "Baklava"))
}

func TestRecommend_ActionsClosedSetAndItemsKnown(t *testing.T) {
	ds := sales.Dataset{
		rec("2025-06-02", "Sarma", "Mains", 10, 5),
		rec("2025-06-07", "Cevapi", "Mains", 25, 8),
		rec("2025-06-03", "Rakija", "Drinks", 1, 4),
	}
	perf := RankItems(ds)

	recs := Recommend(perf, DayPatterns(ds))

	known := map[string]bool{}
	for _, row := range perf {
		known[row.ItemName] = true
	}
	for _, r := range recs {
		assert.Contains(t, []Action{ActionPromote, ActionDiscount, ActionRemove}, r.Action)
		assert.True(t, known[r.Item], "recommendation for unknown item %q", r.Item)
		assert.NotEmpty(t, r.Reason)
	}
}

func TestRecommend_SingleItemOverlapsTiers(t *testing.T) {
	// One item is both the top and the bottom tier. That overlap is the
	// documented small-N behavior, not something to smooth over.
	ds := sales.Dataset{rec("2025-06-09", "Sarma", "Mains", 10, 5)}
	perf := RankItems(ds)

	recs := Recommend(perf, DayPatterns(ds))

	require.Len(t, recs, 2)
	got := actionsFor(recs, "Sarma")
	assert.Contains(t, got, ActionPromote)
	// Median equals its own quantity, so the bottom-tier rule yields a
	// discount, never a remove.
	assert.Contains(t, got, ActionDiscount)
	assert.NotContains(t, got, ActionRemove)
}

func TestRecommend_WeekendSkew(t *testing.T) {
	// Rakija sells 3x more on weekends than weekdays.
	ds := sales.Dataset{
		rec("2025-06-02", "Rakija", "Drinks", 4, 4),  // Monday
		rec("2025-06-07", "Rakija", "Drinks", 12, 4), // Saturday
		rec("2025-06-02", "Sarma", "Mains", 10, 5),
		rec("2025-06-07", "Sarma", "Mains", 10, 5),
		rec("2025-06-03", "Cevapi", "Mains", 8, 8),
	}
	perf := RankItems(ds)

	recs := Recommend(perf, DayPatterns(ds))

	assert.Contains(t, actionsFor(recs, "Rakija"), ActionPromote)
}

func TestRecommend_NoWeekendData(t *testing.T) {
	ds := sales.Dataset{
		rec("2025-06-02", "Sarma", "Mains", 10, 5),
		rec("2025-06-03", "Cevapi", "Mains", 5, 8),
		rec("2025-06-04", "Rakija", "Drinks", 1, 4),
	}
	perf := RankItems(ds)

	recs := Recommend(perf, DayPatterns(ds))

	// Without any weekend sales there is nothing to compare against, so
	// only the tier rules fire.
	for _, r := range recs {
		assert.NotContains(t, r.Reason, "weekend")
	}
}

func TestRecommend_Empty(t *testing.T) {
	assert.Empty(t, Recommend(nil, DayPattern{}))
}

func TestMedianQuantity(t *testing.T) {
	odd := []ItemPerformance{{TotalQuantity: 1}, {TotalQuantity: 9}, {TotalQuantity: 5}}
	assert.InDelta(t, 5.0, medianQuantity(odd), 1e-9)

	even := []ItemPerformance{{TotalQuantity: 2}, {TotalQuantity: 4}, {TotalQuantity: 6}, {TotalQuantity: 10}}
	assert.InDelta(t, 5.0, medianQuantity(even), 1e-9)
}
