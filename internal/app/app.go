// Package app wires the sales analytics pipeline together: it loads the
// input data once per command, runs the analysis and writes the report,
// chart and content files for the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"kokoloko/internal/analytics"
	"kokoloko/internal/config"
	"kokoloko/internal/content"
	"kokoloko/internal/exporter"
	"kokoloko/internal/i18n"
	"kokoloko/internal/sales"
)

// App runs the analytics commands against a single configuration.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	loader *sales.Loader
}

// New creates an App. A nil logger falls back to slog.Default.
func New(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		cfg:    cfg,
		logger: logger,
		loader: sales.NewLoader(logger),
	}
}

// loadDataset resolves the configured input (a file, or a directory in
// which case the newest sales export wins) and loads it. Resolution or
// load failures degrade to an empty dataset.
func (a *App) loadDataset() sales.Dataset {
	path, err := sales.ResolveInput(a.cfg.Paths.InputFile)
	if err != nil {
		a.logger.Warn("input resolution failed",
			slog.String("input", a.cfg.Paths.InputFile),
			slog.String("error", err.Error()))
		return nil
	}
	ds, _ := a.loader.Load(path)
	return ds
}

// RunReport generates the weekly sales report: metrics text plus the
// weekly charts. weekEnd selects the target week; nil means the latest
// date in the data. An empty week yields a localized "no data" message
// and no error, per the degraded-mode contract.
func (a *App) RunReport(ctx context.Context, weekEnd *time.Time) (string, error) {
	labels := i18n.For(a.lang())

	ds := a.loadDataset()
	win := analytics.SplitWeek(ds, weekEnd)

	if win.Current.IsEmpty() {
		a.logger.Warn("no data for the requested week")
		return labels.NoDataWeek, nil
	}

	metrics := analytics.ComputeMetrics(win.Current, win.Previous)
	categories := analytics.SummarizeCategories(win.Current)

	renderer := exporter.NewChartRenderer(a.cfg.Paths.OutputDir, a.lang())
	charts, err := renderer.RenderWeeklyCharts(win.Current, categories)
	if err != nil {
		return "", fmt.Errorf("render weekly charts: %w", err)
	}
	a.logger.Info("weekly charts rendered", slog.Int("count", len(charts)))

	report := exporter.FormatWeeklyReport(metrics, a.lang())
	if err := a.writeTextFile(exporter.WeeklyReportTxt, report); err != nil {
		return "", err
	}
	return report, nil
}

// RunMenu runs the menu performance analysis over the full dataset:
// ranked items, day patterns, category breakdown, recommendations,
// charts and the exported CSV tables.
func (a *App) RunMenu(ctx context.Context) (string, error) {
	labels := i18n.For(a.lang())

	ds := a.loadDataset()
	if ds.IsEmpty() {
		a.logger.Warn("no data for menu analysis")
		return labels.NoDataMenu, nil
	}

	perf := analytics.RankItems(ds)
	patterns := analytics.DayPatterns(ds)
	categories := analytics.SummarizeCategories(ds)
	recs := analytics.Recommend(perf, patterns)

	renderer := exporter.NewChartRenderer(a.cfg.Paths.OutputDir, a.lang())
	charts, err := renderer.RenderMenuCharts(perf, patterns, categories)
	if err != nil {
		return "", fmt.Errorf("render menu charts: %w", err)
	}
	a.logger.Info("menu charts rendered", slog.Int("count", len(charts)))

	csvw := exporter.NewCSVWriter(a.cfg.Paths.OutputDir)
	if _, err := csvw.WritePerformanceTable(perf); err != nil {
		return "", fmt.Errorf("write performance table: %w", err)
	}
	if _, err := csvw.WriteDayPatternTable(patterns, a.lang()); err != nil {
		return "", fmt.Errorf("write day pattern table: %w", err)
	}
	if _, err := csvw.WriteCategoryTable(categories); err != nil {
		return "", fmt.Errorf("write category table: %w", err)
	}

	report := exporter.FormatMenuReport(perf, categories, recs, a.lang())
	if err := a.writeTextFile(exporter.MenuAnalysisTxt, report); err != nil {
		return "", err
	}
	return report, nil
}

// RunSocial generates the three social media posts and writes one text
// file per content type. AI generation is attempted when configured and
// silently replaced by templates when not.
func (a *App) RunSocial(ctx context.Context) (map[string]string, error) {
	ds := a.loadDataset()

	var gen content.Generator
	if g, err := content.NewGeminiGenerator(ctx, a.cfg.AI.APIKey, a.cfg.AI.Model, a.cfg.AI.MaxTokens, a.logger); err != nil {
		a.logger.Warn("AI generator unavailable, using template fallback",
			slog.String("error", err.Error()))
	} else if g != nil {
		gen = g
		defer g.Close()
	}

	builder := content.NewBuilder(gen, a.lang(), a.logger)
	featured := analytics.FeaturedItem(ds)

	posts := map[string]string{
		content.TypeDailySpecial: builder.DailySpecial(ctx, featured),
		content.TypeTopSeller:    builder.TopSellerPost(ctx, ds),
		content.TypeWeekendPromo: builder.WeekendPromo(ctx, ds),
	}

	for contentType, text := range posts {
		name := fmt.Sprintf("social_%s.txt", contentType)
		if err := a.writeTextFile(name, text); err != nil {
			return nil, err
		}
	}
	return posts, nil
}

// RunAll runs report, menu and social in sequence.
func (a *App) RunAll(ctx context.Context, weekEnd *time.Time) error {
	report, err := a.RunReport(ctx, weekEnd)
	if err != nil {
		return err
	}
	fmt.Println(report)

	menu, err := a.RunMenu(ctx)
	if err != nil {
		return err
	}
	fmt.Println(menu)

	posts, err := a.RunSocial(ctx)
	if err != nil {
		return err
	}
	for contentType, text := range posts {
		fmt.Printf("\n--- %s ---\n%s\n", contentType, text)
	}
	return nil
}

func (a *App) lang() string {
	return a.cfg.Locale.Language
}

func (a *App) writeTextFile(name, text string) error {
	if err := os.MkdirAll(a.cfg.Paths.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(a.cfg.Paths.OutputDir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	a.logger.Info("output written", slog.String("path", path))
	return nil
}
