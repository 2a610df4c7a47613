package synth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"anjalsubedi/expense-tracker/internal/logging"
	"anjalsubedi/expense-tracker/internal/models"
	"anjalsubedi/expense-tracker/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 31, 18, 30, 0, 0, time.UTC)

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	base := []Option{WithClock(func() time.Time { return fixedNow }), WithSeed(42)}
	g, err := NewGenerator(logging.NewMockLogger(), append(base, opts...)...)
	require.NoError(t, err)
	return g
}

func TestGenerate_Bounds(t *testing.T) {
	g := newTestGenerator(t)

	records, err := g.Generate(2000)
	require.NoError(t, err)
	require.Len(t, records, 2000)

	earliest := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC) // 90 days before Mar 31 2024
	latest := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	min, max := decimal.NewFromInt(100), decimal.NewFromInt(5000)

	for _, r := range records {
		assert.False(t, r.Date.Before(earliest), "date %s before window", r.Date)
		assert.False(t, r.Date.After(latest), "date %s after now", r.Date)
		assert.Equal(t, r.Date, time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, time.UTC))

		assert.True(t, r.Amount.GreaterThanOrEqual(min), "amount %s below range", r.Amount)
		assert.True(t, r.Amount.LessThanOrEqual(max), "amount %s above range", r.Amount)
		assert.True(t, r.Amount.Equal(r.Amount.Round(2)), "amount %s has more than 2 decimals", r.Amount)

		assert.Contains(t, models.Categories, r.Category)
		assert.Equal(t, "Sample "+string(r.Category)+" expense", r.Description)
	}
}

func TestGenerate_CoversWindowAndCategories(t *testing.T) {
	g := newTestGenerator(t, WithWindowDays(3))

	records, err := g.Generate(500)
	require.NoError(t, err)

	days := map[int]bool{}
	categories := map[models.Category]bool{}
	for _, r := range records {
		days[r.Date.YearDay()] = true
		categories[r.Category] = true
	}
	assert.Len(t, days, 4, "both window bounds should be reachable")
	assert.Len(t, categories, len(models.Categories))
}

func TestGenerate_AmountBoundsReachable(t *testing.T) {
	g := newTestGenerator(t, WithAmountRange(decimal.RequireFromString("1.00"), decimal.RequireFromString("1.01")))

	records, err := g.Generate(200)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, r := range records {
		seen[models.FormatAmount(r.Amount)] = true
	}
	assert.Equal(t, map[string]bool{"1.00": true, "1.01": true}, seen)
}

func TestGenerate_SameSeedSameOutput(t *testing.T) {
	a, err := newTestGenerator(t).Generate(20)
	require.NoError(t, err)
	b, err := newTestGenerator(t).Generate(20)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := newTestGenerator(t, WithSeed(7)).Generate(20)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestGenerate_InvalidCount(t *testing.T) {
	_, err := newTestGenerator(t).Generate(0)
	assert.Error(t, err)
}

func TestNewGenerator_InvalidOptions(t *testing.T) {
	_, err := NewGenerator(nil, WithWindowDays(-1))
	assert.Error(t, err)

	_, err = NewGenerator(nil, WithAmountRange(decimal.NewFromInt(10), decimal.NewFromInt(5)))
	assert.Error(t, err)
}

func TestGenerateFile_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	logger := logging.NewMockLogger()
	s := store.NewExpenseStore(path, ',', logger)

	written, err := newTestGenerator(t).GenerateFile(s, DefaultRecords)
	require.NoError(t, err)
	assert.True(t, written)

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	// a different seed would produce different data if it were written
	written, err = newTestGenerator(t, WithSeed(99)).GenerateFile(s, DefaultRecords)
	require.NoError(t, err)
	assert.False(t, written)

	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	records, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, records, DefaultRecords)
}

func TestGenerateFile_LogsSkip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Category,Description,Amount (Rs)\n"), 0600))

	logger := logging.NewMockLogger()
	g, err := NewGenerator(logger, WithSeed(1))
	require.NoError(t, err)

	written, err := g.GenerateFile(store.NewExpenseStore(path, ',', logger), 10)
	require.NoError(t, err)
	assert.False(t, written)
	assert.True(t, logger.HasEntry("INFO", "Expenses file already exists. Skipping generation."))
}
