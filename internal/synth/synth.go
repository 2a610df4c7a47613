// Package synth generates sample expense data for first runs.
package synth

import (
	"errors"
	"fmt"
	"time"

	"anjalsubedi/expense-tracker/internal/dateutils"
	"anjalsubedi/expense-tracker/internal/logging"
	"anjalsubedi/expense-tracker/internal/models"
	"anjalsubedi/expense-tracker/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

// Defaults matching the sample data the tool ships with.
const (
	DefaultRecords    = 50
	DefaultWindowDays = 90
)

var (
	DefaultMinAmount = decimal.NewFromInt(100)
	DefaultMaxAmount = decimal.NewFromInt(5000)
)

// Generator produces random expense records.
type Generator struct {
	windowDays int
	minCents   int64
	maxCents   int64
	now        func() time.Time
	faker      *gofakeit.Faker
	seed       uint64
	logger     logging.Logger
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock replaces time.Now, which anchors the end of the date window.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithSeed makes the output reproducible. Seed 0 keeps the time-based default.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		if seed != 0 {
			g.seed = seed
		}
	}
}

// WithWindowDays sets how many days back from today dates may fall.
func WithWindowDays(days int) Option {
	return func(g *Generator) { g.windowDays = days }
}

// WithAmountRange sets the inclusive amount bounds. Values are truncated to cents.
func WithAmountRange(min, max decimal.Decimal) Option {
	return func(g *Generator) {
		g.minCents = min.Shift(models.AmountPlaces).IntPart()
		g.maxCents = max.Shift(models.AmountPlaces).IntPart()
	}
}

// NewGenerator creates a Generator with the default window and amount range.
func NewGenerator(logger logging.Logger, opts ...Option) (*Generator, error) {
	g := &Generator{
		windowDays: DefaultWindowDays,
		minCents:   DefaultMinAmount.Shift(models.AmountPlaces).IntPart(),
		maxCents:   DefaultMaxAmount.Shift(models.AmountPlaces).IntPart(),
		now:        time.Now,
		seed:       uint64(time.Now().UnixNano()),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.windowDays < 0 {
		return nil, fmt.Errorf("window must not be negative, got %d days", g.windowDays)
	}
	if g.minCents < 0 || g.minCents > g.maxCents {
		return nil, fmt.Errorf("invalid amount range [%d, %d] cents", g.minCents, g.maxCents)
	}
	if g.logger == nil {
		g.logger = logging.NewLogrusAdapter("info", "text")
	}

	g.faker = gofakeit.New(int64(g.seed))
	return g, nil
}

// Generate returns n random expenses.
// Dates fall on whole days in [today-window, today], categories are drawn
// uniformly from models.Categories and amounts uniformly, in whole cents, from
// the configured inclusive range.
func (g *Generator) Generate(n int) ([]models.ExpenseRecord, error) {
	if n < 1 {
		return nil, fmt.Errorf("record count must be at least 1, got %d", n)
	}

	end := dateutils.StartOfDay(g.now())
	start := end.AddDate(0, 0, -g.windowDays)

	records := make([]models.ExpenseRecord, n)
	for i := range records {
		category := models.Categories[g.faker.Number(0, len(models.Categories)-1)]
		cents := int64(g.faker.Number(int(g.minCents), int(g.maxCents)))

		records[i] = models.ExpenseRecord{
			Date:        start.AddDate(0, 0, g.faker.Number(0, g.windowDays)),
			Category:    category,
			Description: Description(category),
			Amount:      decimal.New(cents, -models.AmountPlaces),
		}
	}
	return records, nil
}

// GenerateFile writes n random expenses to s unless its file already exists.
// It reports whether a file was written; an existing file is left untouched
// and is not an error.
func (g *Generator) GenerateFile(s *store.ExpenseStore, n int) (bool, error) {
	log := g.logger.WithField(logging.FieldFile, s.Path())

	if s.Exists() {
		log.Info("Expenses file already exists. Skipping generation.")
		return false, nil
	}

	log.Info("Generating sample data",
		logging.Field{Key: logging.FieldCount, Value: n},
		logging.Field{Key: logging.FieldSeed, Value: g.seed})

	records, err := g.Generate(n)
	if err != nil {
		return false, err
	}

	if err := s.Save(records); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Info("Expenses file appeared during generation. Skipping.")
			return false, nil
		}
		return false, err
	}

	log.Info("Data generation complete.")
	return true, nil
}

// Description is the text attached to generated expenses of a category.
func Description(c models.Category) string {
	return fmt.Sprintf("Sample %s expense", c)
}
