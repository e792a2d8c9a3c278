// Command kokoloko is the Koko Loko restaurant analytics and automation
// suite: weekly sales reports, menu performance analysis and social
// media content generation from a single sales data file.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"kokoloko/internal/app"
	"kokoloko/internal/config"
	"kokoloko/internal/infrastructure"
)

var (
	flagConfig  string
	flagInput   string
	flagOutput  string
	flagLang    string
	flagVerbose bool
	flagWeekEnd string
)

var rootCmd = &cobra.Command{
	Use:          "kokoloko",
	Short:        "Koko Loko Restaurant Analytics & Automation Suite",
	SilenceUsage: true,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate weekly sales report",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := newApp()
		if err != nil {
			return err
		}
		defer cleanup()

		weekEnd, err := parseWeekEnd(flagWeekEnd)
		if err != nil {
			return err
		}

		report, err := a.RunReport(cmd.Context(), weekEnd)
		if err != nil {
			return err
		}
		fmt.Println(report)
		return nil
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run menu performance analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := newApp()
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := a.RunMenu(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(report)
		return nil
	},
}

var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Generate social media content",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := newApp()
		if err != nil {
			return err
		}
		defer cleanup()

		posts, err := a.RunSocial(cmd.Context())
		if err != nil {
			return err
		}
		for contentType, text := range posts {
			fmt.Printf("\n--- %s ---\n%s\n", contentType, text)
		}
		return nil
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run all analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := newApp()
		if err != nil {
			return err
		}
		defer cleanup()

		weekEnd, err := parseWeekEnd(flagWeekEnd)
		if err != nil {
			return err
		}
		return a.RunAll(cmd.Context(), weekEnd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "path to sales data file (CSV or XLSX)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output directory for reports and charts")
	rootCmd.PersistentFlags().StringVarP(&flagLang, "lang", "l", "", "output language: en (English) or sr (Serbian)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")

	reportCmd.Flags().StringVar(&flagWeekEnd, "week-end", "", "end date of the target week (YYYY-MM-DD), defaults to latest date in data")
	allCmd.Flags().StringVar(&flagWeekEnd, "week-end", "", "end date of the target week (YYYY-MM-DD), defaults to latest date in data")

	rootCmd.AddCommand(reportCmd, menuCmd, socialCmd, allCmd)
}

// newApp loads the configuration, applies flag overrides, initializes
// logging and builds the application.
func newApp() (*app.App, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}

	if flagInput != "" {
		cfg.Paths.InputFile = flagInput
	}
	if flagOutput != "" {
		cfg.Paths.OutputDir = flagOutput
	}
	if flagLang != "" {
		cfg.Locale.Language = flagLang
	}
	if flagVerbose {
		cfg.Logging.Level = "debug"
	}

	logger, cleanup, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return app.New(cfg, logger), cleanup, nil
}

func parseWeekEnd(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid --week-end date %q, expected YYYY-MM-DD", s)
	}
	return &t, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
