package report

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"anjalsubedi/expense-tracker/internal/aggregator"
	"anjalsubedi/expense-tracker/internal/fileutils"
	"anjalsubedi/expense-tracker/internal/logging"
	"anjalsubedi/expense-tracker/internal/models"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Chart labels
const (
	ChartTitle  = "Monthly Spending by Category"
	ChartXLabel = "Month"
	ChartYLabel = "Amount (Rs)"
)

// clusterWidth is the horizontal room shared by the bars of one month.
const clusterWidth = 0.8 * vg.Inch

// supportedFormats are the image formats plot.WriterTo accepts.
var supportedFormats = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "tif": true, "tiff": true,
	"svg": true, "pdf": true, "eps": true,
}

// ImageFormat derives the output format from a file extension. No extension means png.
func ImageFormat(filePath string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filePath), "."))
	if ext == "" {
		return "png", nil
	}
	if !supportedFormats[ext] {
		return "", fmt.Errorf("unsupported image format %q", ext)
	}
	return ext, nil
}

// LegendTitle heads the category legend.
const LegendTitle = "Category"

// Chart is a spending plot with its category legend, drawn in a column to the
// right of the plot area so it never overlaps the bars.
type Chart struct {
	Plot   *plot.Plot
	Legend plot.Legend

	// labels are the legend entries, heading first.
	labels []string
}

// BuildChart lays out a grouped bar chart: one cluster per month and one bar
// per category, with a legend of categories.
func BuildChart(rows []models.SummaryRow) (*Chart, error) {
	pivot := aggregator.NewPivot(rows)
	if pivot.IsEmpty() {
		return nil, ErrEmptySummary
	}

	p := plot.New()
	p.Title.Text = ChartTitle
	p.X.Label.Text = ChartXLabel
	p.Y.Label.Text = ChartYLabel
	p.Y.Min = 0

	legend := plot.NewLegend()
	legend.Top = true
	legend.Left = true
	legend.Add(LegendTitle)
	labels := []string{LegendTitle}

	n := len(pivot.Categories)
	barWidth := clusterWidth / vg.Length(n)

	for j, category := range pivot.Categories {
		column := pivot.Column(j)
		values := make(plotter.Values, len(column))
		for i, v := range column {
			values[i] = v.InexactFloat64()
		}

		bars, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return nil, fmt.Errorf("failed to build bars for %s: %w", category, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = categoryColor(category, j)
		bars.Offset = (vg.Length(j) - vg.Length(n-1)/2) * barWidth

		p.Add(bars)
		legend.Add(string(category), bars)
		labels = append(labels, string(category))
	}

	months := make([]string, len(pivot.Months))
	for i, m := range pivot.Months {
		months[i] = m.String()
	}
	p.NominalX(months...)

	return &Chart{Plot: p, Legend: legend, labels: labels}, nil
}

// LegendWidth is the width of the column reserved for the legend.
func (ch *Chart) LegendWidth() vg.Length {
	var text vg.Length
	for _, name := range ch.labels {
		if w := ch.Legend.TextStyle.Width(name); w > text {
			text = w
		}
	}
	gap := ch.Legend.TextStyle.Width(" ")
	return ch.Legend.ThumbnailWidth + gap + text + 2*ch.Legend.Padding + legendMargin
}

// legendMargin separates the legend column from the plot area.
const legendMargin = 0.15 * vg.Inch

// Draw renders the plot on the left of c and the legend in a column on its right.
func (ch *Chart) Draw(c draw.Canvas) {
	w := ch.LegendWidth()
	ch.Plot.Draw(draw.Crop(c, 0, -w, 0, 0))

	legendArea := draw.Crop(c, c.Max.X-c.Min.X-w+legendMargin, 0, 0, -legendMargin)
	ch.Legend.Draw(legendArea)
}

// categoryColor keeps a category's colour stable across runs: known categories
// use their position in models.Categories, others follow after them.
func categoryColor(c models.Category, column int) color.Color {
	for i, known := range models.Categories {
		if c == known {
			return plotutil.Color(i)
		}
	}
	return plotutil.Color(len(models.Categories) + column)
}

// RenderChart draws rows as a grouped bar chart into filePath, replacing any
// existing file. The image format follows the file extension.
func (e *Exporter) RenderChart(rows []models.SummaryRow, filePath string) error {
	format, err := ImageFormat(filePath)
	if err != nil {
		return err
	}

	chart, err := BuildChart(rows)
	if err != nil {
		return err
	}

	writer, err := draw.NewFormattedCanvas(e.width, e.height, format)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	chart.Draw(draw.New(writer))

	file, err := fileutils.CreateFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	if _, err := writer.WriteTo(file); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write chart: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	e.logger.Info("Plot saved",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: "format", Value: format})
	return nil
}

