package analytics

import (
	"time"

	"kokoloko/internal/sales"
)

// NoItem is the sentinel used when a metric has no item to report.
const NoItem = "N/A"

// Window pairs the current 7-calendar-day dataset with the 7 days
// immediately preceding it. The two never overlap and are only ever
// compared, never merged.
type Window struct {
	Current  sales.Dataset
	Previous sales.Dataset
}

// WeeklyMetrics is the flat result of the weekly metrics computation.
type WeeklyMetrics struct {
	TotalRevenue  float64
	TotalQuantity int
	AvgDaily      float64
	// WoWChange is the week-over-week revenue change in percent. It is
	// 0.0 whenever the previous week's revenue is zero or negative.
	WoWChange     float64
	TopSeller     string
	SlowMover     string
	RisingStar    string
	RisingStarPct float64
	// StartDate and EndDate bound the current window; nil when the
	// current window is empty.
	StartDate *time.Time
	EndDate   *time.Time
}

// ItemPerformance aggregates one menu item over a dataset.
type ItemPerformance struct {
	ItemName      string
	TotalRevenue  float64
	TotalQuantity int
	AvgUnitPrice  float64
	DaysSold      int
	// Ranks use standard competition ranking: rank 1 is best and equal
	// values share a rank. The two ranks are assigned independently.
	RevenueRank int
	VolumeRank  int
}

// DayPattern is a dense item-by-weekday grid of summed quantities.
// Weekdays use the ISO index, Monday=0 through Sunday=6. Items keeps
// the stable row order; combinations absent from the data are zero.
type DayPattern struct {
	Items      []string
	Quantities map[string][7]int
	// DaysPresent marks which weekdays occur anywhere in the source
	// data. Weekend/weekday comparisons only consider present days.
	DaysPresent [7]bool
}

// IsEmpty reports whether the pattern holds no items.
func (p DayPattern) IsEmpty() bool {
	return len(p.Items) == 0
}

// CategorySummary aggregates one menu category over a dataset.
type CategorySummary struct {
	Category      string
	TotalRevenue  float64
	TotalQuantity int
	ItemCount     int
	// RevenuePct is the share of the grand total revenue, rounded to
	// one decimal. 0.0 when the grand total is zero.
	RevenuePct float64
}

// Action classifies a recommendation.
type Action string

const (
	ActionPromote  Action = "promote"
	ActionDiscount Action = "discount"
	ActionRemove   Action = "remove"
)

// Recommendation is an actionable suggestion for a single menu item.
type Recommendation struct {
	Action Action
	Item   string
	Reason string
}
