package analytics

import (
	"time"

	"kokoloko/internal/sales"
)

// SplitWeek splits the dataset into the target week and the week before
// it. The current window covers [end-6d, end] inclusive; the previous
// window covers the 7 days immediately before the current start.
//
// A nil end defaults to the latest date present in the data. An empty
// input yields two empty windows.
func SplitWeek(ds sales.Dataset, end *time.Time) Window {
	if ds.IsEmpty() {
		return Window{Current: sales.Dataset{}, Previous: sales.Dataset{}}
	}

	endDate := time.Time{}
	if end != nil {
		endDate = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		endDate, _ = ds.MaxDate()
	}

	startDate := endDate.AddDate(0, 0, -6)
	prevEnd := startDate.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -6)

	return Window{
		Current:  ds.FilterDateRange(startDate, endDate),
		Previous: ds.FilterDateRange(prevStart, prevEnd),
	}
}
