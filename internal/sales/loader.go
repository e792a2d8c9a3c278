package sales

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	time.RFC3339,
}

// LoadStats reports what happened while loading a sales file.
type LoadStats struct {
	RowsRead       int
	RowsDropped    int
	MissingColumns []string
}

// Loader reads tabular sales data from CSV or XLSX files.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads the file at path and returns the parsed dataset.
//
// The loader is deliberately forgiving: a file that cannot be opened or
// parsed at all yields an empty dataset and a warning, not an error.
// Rows with unparseable dates are dropped and counted; unparseable
// quantities default to 0 and unparseable prices to 0.0. Revenue is
// recomputed for every surviving row.
func (l *Loader) Load(path string) (Dataset, LoadStats) {
	var rows [][]string
	var err error

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		rows, err = readXLSX(path)
	} else {
		rows, err = readCSV(path)
	}
	if err != nil {
		l.logger.Warn("failed to load sales file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return Dataset{}, LoadStats{}
	}
	if len(rows) < 2 {
		l.logger.Warn("sales file has no data rows", slog.String("path", path))
		return Dataset{}, LoadStats{}
	}

	cols := findColumnIndices(rows[0])
	stats := LoadStats{MissingColumns: cols.missing()}
	if len(stats.MissingColumns) > 0 {
		l.logger.Warn("missing columns in sales data",
			slog.String("path", path),
			slog.Any("columns", stats.MissingColumns))
	}

	ds := make(Dataset, 0, len(rows)-1)
	for _, row := range rows[1:] {
		stats.RowsRead++

		date, ok := parseDate(cellAt(row, cols.date))
		if !ok {
			stats.RowsDropped++
			continue
		}

		qty := parseQuantity(cellAt(row, cols.quantity))
		price := parsePrice(cellAt(row, cols.unitPrice))

		ds = append(ds, Record{
			Date:      date,
			ItemName:  cellAt(row, cols.itemName),
			Category:  cellAt(row, cols.category),
			Quantity:  qty,
			UnitPrice: price,
			Revenue:   float64(qty) * price,
		})
	}

	if stats.RowsDropped > 0 {
		l.logger.Warn("dropped rows with unparseable dates",
			slog.String("path", path),
			slog.Int("dropped", stats.RowsDropped))
	}
	l.logger.Info("loaded sales data",
		slog.String("path", path),
		slog.Int("rows", len(ds)))

	return ds, stats
}

// columnIndices holds the positions of the expected columns, -1 when absent.
type columnIndices struct {
	date      int
	itemName  int
	category  int
	quantity  int
	unitPrice int
}

func (c columnIndices) missing() []string {
	var out []string
	for name, idx := range map[string]int{
		"date":       c.date,
		"item_name":  c.itemName,
		"category":   c.category,
		"quantity":   c.quantity,
		"unit_price": c.unitPrice,
	} {
		if idx == -1 {
			out = append(out, name)
		}
	}
	return out
}

// findColumnIndices matches header cells against the expected column
// names, tolerating case differences, surrounding whitespace and a
// UTF-8 BOM on the first cell.
func findColumnIndices(header []string) columnIndices {
	cols := columnIndices{date: -1, itemName: -1, category: -1, quantity: -1, unitPrice: -1}

	for i, cell := range header {
		clean := strings.TrimSpace(cell)
		clean = strings.TrimPrefix(clean, "\uFEFF")
		clean = strings.TrimLeft(clean, "\u200B\u200C\u200D\u2060\uFEFF")

		switch strings.ToLower(strings.TrimSpace(clean)) {
		case "date", "sale_date", "day":
			cols.date = i
		case "item_name", "item", "name", "product":
			cols.itemName = i
		case "category", "menu_category":
			cols.category = i
		case "quantity", "qty", "count":
			cols.quantity = i
		case "unit_price", "price", "unitprice":
			cols.unitPrice = i
		}
	}
	return cols
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDate tries the known layouts in order and normalizes the result
// to midnight UTC so records compare as calendar dates.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func parseQuantity(s string) int {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Spreadsheets often store integers as floats ("12.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

func parsePrice(s string) float64 {
	if s == "" {
		return 0.0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0.0
	}
	return f
}

// readCSV reads all rows from a CSV file, stripping a UTF-8 BOM if present.
func readCSV(path string) ([][]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		content = content[3:]
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

// readXLSX extracts rows from the first sheet that carries a
// recognizable sales header.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fallback [][]string
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) == 0 {
			continue
		}
		if cols := findColumnIndices(rows[0]); cols.date != -1 {
			return rows, nil
		}
		if fallback == nil {
			fallback = rows
		}
	}
	return fallback, nil
}
