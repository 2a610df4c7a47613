package aggregator

import (
	"sort"

	"anjalsubedi/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// Pivot is a month x category matrix of totals.
// Months ascend, categories are sorted by name, and combinations with no
// spending hold zero.
type Pivot struct {
	Months     []models.Month
	Categories []models.Category
	// Cells[i][j] is the total for Months[i] and Categories[j].
	Cells [][]decimal.Decimal
}

// NewPivot reshapes summary rows into a Pivot.
func NewPivot(rows []models.SummaryRow) Pivot {
	monthIdx := map[models.Month]int{}
	catIdx := map[models.Category]int{}
	var months []models.Month
	var categories []models.Category

	for _, r := range rows {
		if _, ok := monthIdx[r.Month]; !ok {
			monthIdx[r.Month] = 0
			months = append(months, r.Month)
		}
		if _, ok := catIdx[r.Category]; !ok {
			catIdx[r.Category] = 0
			categories = append(categories, r.Category)
		}
	}

	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	for i, m := range months {
		monthIdx[m] = i
	}
	for j, c := range categories {
		catIdx[c] = j
	}

	cells := make([][]decimal.Decimal, len(months))
	for i := range cells {
		cells[i] = make([]decimal.Decimal, len(categories))
	}
	for _, r := range rows {
		i, j := monthIdx[r.Month], catIdx[r.Category]
		cells[i][j] = cells[i][j].Add(r.TotalAmount)
	}

	return Pivot{Months: months, Categories: categories, Cells: cells}
}

// Column returns the per-month totals of one category.
func (p Pivot) Column(j int) []decimal.Decimal {
	col := make([]decimal.Decimal, len(p.Months))
	for i := range p.Months {
		col[i] = p.Cells[i][j]
	}
	return col
}

// IsEmpty reports whether the pivot has no cells.
func (p Pivot) IsEmpty() bool {
	return len(p.Months) == 0 || len(p.Categories) == 0
}
