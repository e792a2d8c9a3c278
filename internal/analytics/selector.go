package analytics

import (
	"kokoloko/internal/sales"
)

// DefaultFeaturedItem is used when there is no data to pick from.
const DefaultFeaturedItem = "Roasted Chicken"

// FeaturedItem picks the item with the highest aggregate revenue for
// featured content. Ties resolve to the item encountered first in the
// dataset; an empty dataset falls back to DefaultFeaturedItem.
func FeaturedItem(ds sales.Dataset) string {
	item, _, ok := bestByMetric(ds, func(r sales.Record) float64 { return r.Revenue })
	if !ok {
		return DefaultFeaturedItem
	}
	return item
}

// TopSellerByQuantity returns the item with the most units sold and its
// quantity. ok is false for an empty dataset.
func TopSellerByQuantity(ds sales.Dataset) (item string, quantity int, ok bool) {
	item, total, ok := bestByMetric(ds, func(r sales.Record) float64 { return float64(r.Quantity) })
	return item, int(total), ok
}

// WeekendTopItem returns the item with the most units sold on Saturdays
// and Sundays. When the dataset has no weekend rows the whole dataset is
// used instead, so a weekend promo can still feature something.
func WeekendTopItem(ds sales.Dataset) (string, bool) {
	weekend := make(sales.Dataset, 0, len(ds))
	for _, r := range ds {
		if r.IsWeekend() {
			weekend = append(weekend, r)
		}
	}
	if len(weekend) == 0 {
		weekend = ds
	}
	item, _, ok := bestByMetric(weekend, func(r sales.Record) float64 { return float64(r.Quantity) })
	return item, ok
}

// bestByMetric sums the metric per item and returns the item with the
// highest total, preferring earlier-encountered items on ties.
func bestByMetric(ds sales.Dataset, metric func(sales.Record) float64) (string, float64, bool) {
	if ds.IsEmpty() {
		return "", 0, false
	}

	totals := make(map[string]float64)
	var order []string
	for _, r := range ds {
		if _, ok := totals[r.ItemName]; !ok {
			order = append(order, r.ItemName)
		}
		totals[r.ItemName] += metric(r)
	}

	best := order[0]
	for _, item := range order[1:] {
		if totals[item] > totals[best] {
			best = item
		}
	}
	return best, totals[best], true
}
