// Package models defines the data structures shared by the expense pipeline:
// expense records, months, and monthly summary rows.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the spending category of an expense.
type Category string

// Known categories
const (
	CategoryFood          Category = "Food"
	CategoryRent          Category = "Rent"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryShopping      Category = "Shopping"
)

// Categories is the fixed set the generator draws from, in display order.
var Categories = []Category{
	CategoryFood,
	CategoryRent,
	CategoryTransport,
	CategoryEntertainment,
	CategoryUtilities,
	CategoryShopping,
}

func (c Category) String() string {
	return string(c)
}

// ExpenseRecord is a single spending entry.
type ExpenseRecord struct {
	Date        time.Time
	Category    Category
	Description string
	Amount      decimal.Decimal
}

// Month returns the month the expense falls in.
func (r ExpenseRecord) Month() Month {
	return MonthOf(r.Date)
}

// SummaryRow is the total spent in one category during one month.
type SummaryRow struct {
	Month       Month
	Category    Category
	TotalAmount decimal.Decimal
	OverBudget  bool
}
