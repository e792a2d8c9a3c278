// Package analytics implements the weekly sales analysis pipeline for
// restaurant sales data.
//
// # Components
//
// The package is organized around a one-way data flow:
//
//  1. window.go: splits a dataset into the current week and the week
//     before it for comparison
//  2. metrics.go: weekly key figures (revenue, quantity, daily average,
//     week-over-week change, top/slow/rising items)
//  3. ranking.go: per-item performance table with competition ranks,
//     the item-by-weekday quantity grid, and the category breakdown
//  4. recommend.go: promote/discount/remove rules over the ranked table
//  5. selector.go: featured-item picks feeding content generation
//
// Every function here is pure: it takes its full input, returns a new
// result and keeps no state between calls. Degraded inputs (empty
// datasets, zero baselines) yield empty or neutral results, never
// errors, NaN or Inf.
//
// # Usage
//
//	win := analytics.SplitWeek(ds, nil)
//	metrics := analytics.ComputeMetrics(win.Current, win.Previous)
//	perf := analytics.RankItems(win.Current)
//	recs := analytics.Recommend(perf, analytics.DayPatterns(win.Current))
package analytics
