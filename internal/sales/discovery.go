package sales

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo describes a discovered sales export file.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// salesExtensions are the file types the loader understands.
var salesExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".xls":  true,
}

// FindSalesFiles lists the loadable sales exports in dir, newest first.
func FindSalesFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !salesExtensions[ext] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(dir, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

// ResolveInput turns an input path into a concrete file to load. A file
// path is returned as-is; a directory resolves to its most recently
// modified sales export.
func ResolveInput(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat input %s: %w", path, err)
	}
	if !info.IsDir() {
		return path, nil
	}

	files, err := FindSalesFiles(path)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no sales files (.csv/.xlsx) found in %s", path)
	}

	slog.Debug("resolved input directory",
		slog.String("dir", path),
		slog.String("file", files[0].Name),
		slog.Int("candidates", len(files)))
	return files[0].Path, nil
}
