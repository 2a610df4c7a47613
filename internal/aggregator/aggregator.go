// Package aggregator groups expenses by month and category and flags overspending.
package aggregator

import (
	"sort"

	"anjalsubedi/expense-tracker/internal/budget"
	"anjalsubedi/expense-tracker/internal/logging"
	"anjalsubedi/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// groupKey identifies one (month, category) bucket.
type groupKey struct {
	Month    models.Month
	Category models.Category
}

// Aggregator builds monthly summaries from expense records.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates a new Aggregator instance
func NewAggregator(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Aggregator{logger: logger}
}

// Aggregate sums amounts per (month, category) and sets OverBudget when a
// total strictly exceeds the category threshold. Rows are sorted by month,
// then category name. Each pair appears once.
func (a *Aggregator) Aggregate(records []models.ExpenseRecord) []models.SummaryRow {
	totals := make(map[groupKey]decimal.Decimal)
	for _, r := range records {
		key := groupKey{Month: r.Month(), Category: r.Category}
		totals[key] = totals[key].Add(r.Amount)
	}

	rows := make([]models.SummaryRow, 0, len(totals))
	flagged := 0
	for key, total := range totals {
		if _, known := budget.Threshold(key.Category); !known {
			a.logger.Debug("No threshold for category, using default",
				logging.Field{Key: logging.FieldCategory, Value: key.Category})
		}

		over := budget.IsOverBudget(key.Category, total)
		if over {
			flagged++
			a.logger.Debug("Category over budget",
				logging.Field{Key: logging.FieldMonth, Value: key.Month.String()},
				logging.Field{Key: logging.FieldCategory, Value: key.Category},
				logging.Field{Key: "total", Value: models.FormatAmount(total)})
		}

		rows = append(rows, models.SummaryRow{
			Month:       key.Month,
			Category:    key.Category,
			TotalAmount: total,
			OverBudget:  over,
		})
	}

	SortRows(rows)

	a.logger.Info("Aggregated expenses",
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: logging.FieldGroups, Value: len(rows)},
		logging.Field{Key: logging.FieldFlagged, Value: flagged})

	return rows
}

// SortRows orders rows by month, then category name.
func SortRows(rows []models.SummaryRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month.Before(rows[j].Month)
		}
		return rows[i].Category < rows[j].Category
	})
}

// MonthTotals returns the total spent per month across all categories.
func MonthTotals(rows []models.SummaryRow) map[models.Month]decimal.Decimal {
	totals := make(map[models.Month]decimal.Decimal)
	for _, r := range rows {
		totals[r.Month] = totals[r.Month].Add(r.TotalAmount)
	}
	return totals
}

// OverBudget returns the rows whose flag is set, in input order.
func OverBudget(rows []models.SummaryRow) []models.SummaryRow {
	var out []models.SummaryRow
	for _, r := range rows {
		if r.OverBudget {
			out = append(out, r)
		}
	}
	return out
}
