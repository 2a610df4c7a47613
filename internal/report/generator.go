// Package report writes the monthly summary file and renders the spending chart.
package report

import (
	"errors"
	"fmt"

	"anjalsubedi/expense-tracker/internal/common"
	"anjalsubedi/expense-tracker/internal/logging"
	"anjalsubedi/expense-tracker/internal/models"

	"gonum.org/v1/plot/vg"
)

// ErrEmptySummary is returned by RenderChart when there is nothing to plot.
var ErrEmptySummary = errors.New("summary has no rows")

// Default chart dimensions in inches.
const (
	DefaultChartWidth  = 10.0
	DefaultChartHeight = 6.0
)

// Exporter produces the pipeline's output files.
type Exporter struct {
	delimiter rune
	width     vg.Length
	height    vg.Length
	logger    logging.Logger
}

// NewExporter creates an Exporter. Non-positive chart dimensions fall back to
// the defaults and a zero delimiter means comma.
func NewExporter(logger logging.Logger, delimiter rune, widthInches, heightInches float64) *Exporter {
	if delimiter == 0 {
		delimiter = common.DefaultDelimiter
	}
	if widthInches <= 0 {
		widthInches = DefaultChartWidth
	}
	if heightInches <= 0 {
		heightInches = DefaultChartHeight
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Exporter{
		delimiter: delimiter,
		width:     vg.Length(widthInches) * vg.Inch,
		height:    vg.Length(heightInches) * vg.Inch,
		logger:    logger,
	}
}

// WriteSummary writes rows to filePath, replacing any existing file.
// Columns: Month, Category, Amount (Rs), Over Budget (Yes/No).
func (e *Exporter) WriteSummary(rows []models.SummaryRow, filePath string) error {
	csvRows := make([]models.SummaryCSVRow, len(rows))
	for i, r := range rows {
		csvRows[i] = r.ToCSVRow()
	}

	if err := common.WriteCSVFile(csvRows, filePath, e.delimiter, e.logger); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	e.logger.Info("Summary saved",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return nil
}
