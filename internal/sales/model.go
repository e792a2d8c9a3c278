package sales

import (
	"time"
)

// Record represents a single sales line item.
type Record struct {
	Date      time.Time `json:"date"`
	ItemName  string    `json:"item_name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	// Revenue is always recomputed as Quantity * UnitPrice at load time,
	// never taken from the input file.
	Revenue float64 `json:"revenue"`
}

// Dataset is an ordered collection of sales records. It is treated as
// immutable after load: every derived view returns a copy or projection.
type Dataset []Record

// IsEmpty reports whether the dataset contains no records.
func (ds Dataset) IsEmpty() bool {
	return len(ds) == 0
}

// TotalRevenue returns the sum of revenue across all records.
func (ds Dataset) TotalRevenue() float64 {
	var total float64
	for _, r := range ds {
		total += r.Revenue
	}
	return total
}

// TotalQuantity returns the sum of quantity across all records.
func (ds Dataset) TotalQuantity() int {
	var total int
	for _, r := range ds {
		total += r.Quantity
	}
	return total
}

// DistinctDates returns the number of distinct calendar dates present.
func (ds Dataset) DistinctDates() int {
	seen := make(map[time.Time]struct{}, len(ds))
	for _, r := range ds {
		seen[r.Date] = struct{}{}
	}
	return len(seen)
}

// MaxDate returns the latest date in the dataset and whether one exists.
func (ds Dataset) MaxDate() (time.Time, bool) {
	if len(ds) == 0 {
		return time.Time{}, false
	}
	max := ds[0].Date
	for _, r := range ds[1:] {
		if r.Date.After(max) {
			max = r.Date
		}
	}
	return max, true
}

// MinDate returns the earliest date in the dataset and whether one exists.
func (ds Dataset) MinDate() (time.Time, bool) {
	if len(ds) == 0 {
		return time.Time{}, false
	}
	min := ds[0].Date
	for _, r := range ds[1:] {
		if r.Date.Before(min) {
			min = r.Date
		}
	}
	return min, true
}

// FilterDateRange returns a new dataset containing records whose date
// falls within [start, end], inclusive on both ends. The source dataset
// is never modified.
func (ds Dataset) FilterDateRange(start, end time.Time) Dataset {
	out := make(Dataset, 0, len(ds))
	for _, r := range ds {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ISOWeekday returns the ISO weekday index for a date: Monday=0 .. Sunday=6.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsWeekend reports whether the record falls on Saturday or Sunday.
func (r Record) IsWeekend() bool {
	return ISOWeekday(r.Date) >= 5
}
