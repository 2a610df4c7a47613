// Package budget holds the monthly spending limits used to flag overspending.
// The limits only drive the Over Budget flag; nothing is enforced.
package budget

import (
	"anjalsubedi/expense-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultThreshold applies to categories missing from the table, so they never flag.
var DefaultThreshold = decimal.NewFromInt(999999)

// thresholds are monthly limits in Rs. Never mutated after init.
var thresholds = map[models.Category]decimal.Decimal{
	models.CategoryFood:          decimal.NewFromInt(10000),
	models.CategoryRent:          decimal.NewFromInt(20000),
	models.CategoryTransport:     decimal.NewFromInt(5000),
	models.CategoryEntertainment: decimal.NewFromInt(5000),
	models.CategoryUtilities:     decimal.NewFromInt(5000),
	models.CategoryShopping:      decimal.NewFromInt(8000),
}

// Threshold returns the monthly limit for a category and whether the category
// has an explicit entry. Unknown categories get DefaultThreshold.
func Threshold(c models.Category) (decimal.Decimal, bool) {
	if t, ok := thresholds[c]; ok {
		return t, true
	}
	return DefaultThreshold, false
}

// IsOverBudget reports whether total strictly exceeds the category's limit.
func IsOverBudget(c models.Category, total decimal.Decimal) bool {
	limit, _ := Threshold(c)
	return total.GreaterThan(limit)
}
