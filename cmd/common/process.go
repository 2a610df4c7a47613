// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"anjalsubedi/expense-tracker/internal/aggregator"
	"anjalsubedi/expense-tracker/internal/budget"
	"anjalsubedi/expense-tracker/internal/container"
	"anjalsubedi/expense-tracker/internal/dateutils"
	"anjalsubedi/expense-tracker/internal/logging"
	"anjalsubedi/expense-tracker/internal/models"
	"anjalsubedi/expense-tracker/internal/report"
	"anjalsubedi/expense-tracker/internal/store"
)

// ErrNotInitialized is returned when a command runs without a container.
var ErrNotInitialized = errors.New("container not initialized")

// SampleSize is the number of loaded records echoed before aggregation.
const SampleSize = 5

// Generate writes sample expenses unless the expenses file already exists.
func Generate(c *container.Container, out io.Writer) error {
	if c == nil {
		return ErrNotInitialized
	}
	cfg := c.GetConfig()
	path := c.GetStore().Path()

	generated, err := c.GetGenerator().GenerateFile(c.GetStore(), cfg.Generator.Records)
	if err != nil {
		return fmt.Errorf("error generating sample data: %w", err)
	}
	if !generated {
		fmt.Fprintf(out, "'%s' already exists. Skipping generation.\n", path)
		return nil
	}
	fmt.Fprintf(out, "Generated %d sample records in '%s'.\n", cfg.Generator.Records, path)
	return nil
}

// Load reads the expenses file. ok is false when there is no file, in which
// case a message has been printed and the caller should stop without error.
func Load(c *container.Container, out io.Writer) (records []models.ExpenseRecord, ok bool, err error) {
	if c == nil {
		return nil, false, ErrNotInitialized
	}
	path := c.GetStore().Path()

	records, err = c.GetStore().Load()
	if errors.Is(err, store.ErrNoData) {
		fmt.Fprintf(out, "Error: '%s' not found.\n", path)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error loading expenses: %w", err)
	}

	fmt.Fprintf(out, "Loaded %d records from '%s'.\n", len(records), path)
	return records, true, nil
}

// Summarize aggregates records, prints the summary table and writes the summary file.
func Summarize(c *container.Container, out io.Writer, records []models.ExpenseRecord) ([]models.SummaryRow, error) {
	if c == nil {
		return nil, ErrNotInitialized
	}
	rows := c.GetAggregator().Aggregate(records)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Monthly Summary:")
	if err := PrintSummary(out, rows); err != nil {
		return nil, err
	}

	path := c.GetConfig().Files.Summary
	if err := c.GetExporter().WriteSummary(rows, path); err != nil {
		return nil, fmt.Errorf("error saving summary: %w", err)
	}
	fmt.Fprintf(out, "Summary saved to '%s'.\n", path)
	return rows, nil
}

// Chart renders the spending chart. An empty summary is reported and skipped.
func Chart(c *container.Container, out io.Writer, rows []models.SummaryRow) error {
	if c == nil {
		return ErrNotInitialized
	}
	path := c.GetConfig().Files.Plot

	err := c.GetExporter().RenderChart(rows, path)
	if errors.Is(err, report.ErrEmptySummary) {
		c.GetLogger().Warn("Nothing to plot, chart skipped", logging.Field{Key: logging.FieldFile, Value: path})
		fmt.Fprintln(out, "No data to plot.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error rendering chart: %w", err)
	}
	fmt.Fprintf(out, "Plot saved to '%s'.\n", path)
	return nil
}

// RunPipeline generates data if needed, loads it, and writes the summary and chart.
func RunPipeline(c *container.Container, out io.Writer) error {
	if err := Generate(c, out); err != nil {
		return err
	}

	records, ok, err := Load(c, out)
	if err != nil || !ok {
		return err
	}

	fmt.Fprintln(out, "Data Sample:")
	if err := PrintSample(out, records, SampleSize); err != nil {
		return err
	}

	rows, err := Summarize(c, out, records)
	if err != nil {
		return err
	}
	return Chart(c, out, rows)
}

// PrintSample writes the first n records as an aligned table.
func PrintSample(out io.Writer, records []models.ExpenseRecord, n int) error {
	if n > len(records) {
		n = len(records)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", models.HeaderDate, models.HeaderCategory, models.HeaderDescription, models.HeaderAmount)
	for _, r := range records[:n] {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", dateutils.ToISODate(r.Date), r.Category, r.Description, models.FormatAmount(r.Amount))
	}
	return w.Flush()
}

// PrintSummary writes summary rows as an aligned table, followed by the total
// per month and the groups that went over budget.
func PrintSummary(out io.Writer, rows []models.SummaryRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", models.HeaderMonth, models.HeaderCategory, models.HeaderAmount, models.HeaderOverBudget)
	for _, r := range rows {
		row := r.ToCSVRow()
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", row.Month, row.Category, row.Amount, row.OverBudget)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	totals := aggregator.MonthTotals(rows)
	months := make([]models.Month, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Monthly Totals:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, m := range months {
		fmt.Fprintf(w, "%s\t%s\n", m, models.FormatAmount(totals[m]))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	over := aggregator.OverBudget(rows)
	fmt.Fprintln(out)
	if len(over) == 0 {
		fmt.Fprintln(out, "Over Budget: none")
		return nil
	}
	fmt.Fprintln(out, "Over Budget:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, r := range over {
		limit, _ := budget.Threshold(r.Category)
		fmt.Fprintf(w, "%s\t%s\t%s\tlimit %s\n", r.Month, r.Category, models.FormatAmount(r.TotalAmount), models.FormatAmount(limit))
	}
	return w.Flush()
}
