// Package container provides dependency injection for the expense tracker.
// It centralizes the creation and wiring of all pipeline components,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"anjalsubedi/expense-tracker/internal/aggregator"
	"anjalsubedi/expense-tracker/internal/config"
	"anjalsubedi/expense-tracker/internal/logging"
	"anjalsubedi/expense-tracker/internal/report"
	"anjalsubedi/expense-tracker/internal/store"
	"anjalsubedi/expense-tracker/internal/synth"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: fields are private and only
// reachable through getters.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.ExpenseStore
	generator  *synth.Generator
	aggregator *aggregator.Aggregator
	exporter   *report.Exporter
}

// NewContainer creates and wires all application dependencies, logging to stderr.
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithOutput(cfg, nil)
}

// NewContainerWithOutput is NewContainer with log output sent to out.
// A nil out keeps the logrus default.
func NewContainerWithOutput(cfg *config.Config, out io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapterWithOutput(cfg.Log.Level, cfg.Log.Format, out))
}

// NewContainerWithLogger wires the components around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	minAmount, maxAmount, err := cfg.AmountRange()
	if err != nil {
		return nil, err
	}

	delimiter := cfg.Delimiter()

	expenseStore := store.NewExpenseStore(cfg.Files.Expenses, delimiter, logger)

	generator, err := synth.NewGenerator(logger,
		synth.WithSeed(cfg.Generator.Seed),
		synth.WithWindowDays(cfg.Generator.WindowDays),
		synth.WithAmountRange(minAmount, maxAmount),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	exporter := report.NewExporter(logger, delimiter, cfg.Chart.WidthInches, cfg.Chart.HeightInches)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldFile, Value: cfg.Files.Expenses},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      expenseStore,
		generator:  generator,
		aggregator: aggregator.NewAggregator(logger),
		exporter:   exporter,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the expenses file store.
func (c *Container) GetStore() *store.ExpenseStore {
	return c.store
}

// GetGenerator returns the sample data generator.
func (c *Container) GetGenerator() *synth.Generator {
	return c.generator
}

// GetAggregator returns the monthly aggregator.
func (c *Container) GetAggregator() *aggregator.Aggregator {
	return c.aggregator
}

// GetExporter returns the summary and chart exporter.
func (c *Container) GetExporter() *report.Exporter {
	return c.exporter
}
