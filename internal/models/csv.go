package models

import "anjalsubedi/expense-tracker/internal/dateutils"

// Column headers of the files written and read by the pipeline.
const (
	HeaderDate        = "Date"
	HeaderCategory    = "Category"
	HeaderDescription = "Description"
	HeaderAmount      = "Amount (Rs)"
	HeaderMonth       = "Month"
	HeaderOverBudget  = "Over Budget"
)

// ExpenseHeader is the header row of the expenses file.
var ExpenseHeader = []string{HeaderDate, HeaderCategory, HeaderDescription, HeaderAmount}

// SummaryHeader is the header row of the summary file.
var SummaryHeader = []string{HeaderMonth, HeaderCategory, HeaderAmount, HeaderOverBudget}

// ExpenseCSVRow is a row of the expenses file as written on disk.
// It uses struct tags for gocsv marshaling.
type ExpenseCSVRow struct {
	Date        string `csv:"Date"`
	Category    string `csv:"Category"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount (Rs)"`
}

// SummaryCSVRow is a row of the summary file.
type SummaryCSVRow struct {
	Month      Month  `csv:"Month"`
	Category   string `csv:"Category"`
	Amount     string `csv:"Amount (Rs)"`
	OverBudget string `csv:"Over Budget"`
}

// Over Budget column values
const (
	OverBudgetYes = "Yes"
	OverBudgetNo  = "No"
)

// ToCSVRow converts a summary row to its on-disk shape.
func (s SummaryRow) ToCSVRow() SummaryCSVRow {
	flag := OverBudgetNo
	if s.OverBudget {
		flag = OverBudgetYes
	}
	return SummaryCSVRow{
		Month:      s.Month,
		Category:   string(s.Category),
		Amount:     FormatAmount(s.TotalAmount),
		OverBudget: flag,
	}
}

// ToCSVRow converts an expense to its on-disk shape.
func (r ExpenseRecord) ToCSVRow() ExpenseCSVRow {
	return ExpenseCSVRow{
		Date:        dateutils.ToISODate(r.Date),
		Category:    string(r.Category),
		Description: r.Description,
		Amount:      FormatAmount(r.Amount),
	}
}
