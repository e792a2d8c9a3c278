package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// CSVWriter writes analysis tables into the run's output directory.
type CSVWriter struct {
	outputDir string
}

// NewCSVWriter creates a CSV writer rooted at outputDir.
func NewCSVWriter(outputDir string) *CSVWriter {
	return &CSVWriter{outputDir: outputDir}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file under the output directory and
// returns the full path of the written file.
func (w *CSVWriter) WriteCSV(fileName string, options WriteOptions) (string, error) {
	fullPath := filepath.Join(w.outputDir, fileName)

	slog.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return "", fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return "", fmt.Errorf("write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return fullPath, writer.Error()
}

// WriteSimpleCSV writes a headers-plus-records CSV with a BOM prefix.
func (w *CSVWriter) WriteSimpleCSV(fileName string, headers []string, records [][]string) (string, error) {
	return w.WriteCSV(fileName, WriteOptions{
		Headers:   headers,
		Records:   records,
		BOMPrefix: true,
	})
}
