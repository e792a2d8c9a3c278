// Package exporter turns analysis results into the files a run leaves
// behind: plain-text reports, CSV tables and HTML charts, all written
// into the caller's output directory.
package exporter
