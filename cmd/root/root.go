// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"anjalsubedi/expense-tracker/cmd/common"
	"anjalsubedi/expense-tracker/internal/config"
	"anjalsubedi/expense-tracker/internal/container"
	"anjalsubedi/expense-tracker/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by every command
type CommonFlags struct {
	ConfigFile string
	Expenses   string
	Summary    string
	Plot       string
	Records    int
	LogLevel   string
	LogFormat  string
}

var (
	// Cmd is the root command. Run on its own it executes the full pipeline.
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "Generate, summarize and chart monthly expenses.",
		Long: `expense-tracker reads an expenses CSV file, creating one with sample data
on first run, totals spending per month and category, flags categories that
exceed their monthly budget, and writes a summary CSV and a bar chart.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initContainer,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.RunPipeline(AppContainer, cmd.OutOrStdout())
		},
	}

	// SharedFlags holds the values of the persistent flags
	SharedFlags = CommonFlags{}

	// AppConfig is the effective configuration, set before any command runs
	AppConfig *config.Config

	// AppContainer is the dependency container, set before any command runs
	AppContainer *container.Container

	initOnce sync.Once
)

// Init registers the persistent flags. It is safe to call more than once.
func Init() {
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.expense-tracker, .expense-tracker or .)")
		flags.StringVarP(&SharedFlags.Expenses, "expenses", "e", "", "Expenses CSV file")
		flags.StringVarP(&SharedFlags.Summary, "summary", "s", "", "Monthly summary CSV file")
		flags.StringVarP(&SharedFlags.Plot, "plot", "p", "", "Chart image file (.png, .svg, .pdf, .jpg, .tif, .eps)")
		flags.IntVarP(&SharedFlags.Records, "records", "n", 0, "Number of sample records to generate")
		flags.StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
		flags.StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
	})
}

// GetConfig returns the effective configuration
func GetConfig() *config.Config {
	return AppConfig
}

// GetContainer returns the dependency container
func GetContainer() *container.Container {
	return AppContainer
}

// LoadConfig reads configuration and applies any flags set on cmd.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.InitializeConfig(SharedFlags.ConfigFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("expenses") {
		cfg.Files.Expenses = SharedFlags.Expenses
	}
	if flags.Changed("summary") {
		cfg.Files.Summary = SharedFlags.Summary
	}
	if flags.Changed("plot") {
		cfg.Files.Plot = SharedFlags.Plot
	}
	if flags.Changed("records") {
		cfg.Generator.Records = SharedFlags.Records
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = SharedFlags.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func initContainer(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(cmd)
	if err != nil {
		return err
	}

	c, err := container.NewContainerWithOutput(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	AppConfig = cfg
	AppContainer = c
	if cfg.ConfigFile != "" {
		c.GetLogger().Debug("Using config file", logging.Field{Key: logging.FieldFile, Value: cfg.ConfigFile})
	}
	return nil
}
