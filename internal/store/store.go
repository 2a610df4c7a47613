// Package store reads and writes the expenses file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"anjalsubedi/expense-tracker/internal/common"
	"anjalsubedi/expense-tracker/internal/dateutils"
	"anjalsubedi/expense-tracker/internal/fileutils"
	"anjalsubedi/expense-tracker/internal/logging"
	"anjalsubedi/expense-tracker/internal/models"
	"anjalsubedi/expense-tracker/internal/parsererror"
)

// ErrNoData is returned by Load when the expenses file does not exist.
// It is a recoverable condition: callers stop the pipeline without failing.
var ErrNoData = errors.New("no expense data")

// ErrAlreadyExists is returned by Save when the expenses file is already present.
var ErrAlreadyExists = errors.New("expenses file already exists")

// ExpenseStore manages the expenses CSV file
type ExpenseStore struct {
	filePath  string
	delimiter rune
	logger    logging.Logger
}

// NewExpenseStore creates a store for the expenses file at filePath.
// A zero delimiter means comma.
func NewExpenseStore(filePath string, delimiter rune, logger logging.Logger) *ExpenseStore {
	if delimiter == 0 {
		delimiter = common.DefaultDelimiter
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &ExpenseStore{
		filePath:  filePath,
		delimiter: delimiter,
		logger:    logger,
	}
}

// Path returns the expenses file location.
func (s *ExpenseStore) Path() string {
	return s.filePath
}

// Exists reports whether something is already present at the expenses path.
func (s *ExpenseStore) Exists() bool {
	return fileutils.PathExists(s.filePath)
}

// ValidateFormat checks that the header row names every expected column.
// Column order does not matter and extra columns are ignored.
func (s *ExpenseStore) ValidateFormat() error {
	header, err := common.ReadHeader(s.filePath, s.delimiter)
	if errors.Is(err, common.ErrEmptyFile) {
		return &parsererror.InvalidFormatError{
			FilePath:       s.filePath,
			ExpectedFormat: strings.Join(models.ExpenseHeader, string(s.delimiter)),
			Msg:            "file is empty",
		}
	}
	if err != nil {
		return err
	}

	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	for _, want := range models.ExpenseHeader {
		if !present[want] {
			return &parsererror.InvalidFormatError{
				FilePath:       s.filePath,
				ExpectedFormat: strings.Join(models.ExpenseHeader, string(s.delimiter)),
				Actual:         strings.Join(header, string(s.delimiter)),
				Msg:            fmt.Sprintf("missing column %q", want),
			}
		}
	}
	return nil
}

// Load reads every expense from the file.
// A missing file yields ErrNoData. Any malformed row aborts the load with a
// *parsererror.ParseError.
func (s *ExpenseStore) Load() ([]models.ExpenseRecord, error) {
	log := s.logger.WithField(logging.FieldFile, s.filePath)

	if !fileutils.PathExists(s.filePath) {
		log.Warn("Expenses file not found")
		return nil, fmt.Errorf("%w: '%s' not found", ErrNoData, s.filePath)
	}

	if err := s.ValidateFormat(); err != nil {
		return nil, err
	}

	rows, err := common.ReadCSVFile[models.ExpenseCSVRow](s.filePath, s.delimiter, s.logger)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s' not found", ErrNoData, s.filePath)
		}
		return nil, err
	}

	records := make([]models.ExpenseRecord, 0, len(rows))
	for i, row := range rows {
		record, err := s.convertRow(row, i+2)
		if err != nil {
			log.WithError(err).Error("Failed to convert row", logging.Field{Key: logging.FieldLine, Value: i + 2})
			return nil, err
		}
		records = append(records, record)
	}

	log.Info("Loaded expense records", logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}

// convertRow turns a raw CSV row into an ExpenseRecord. line is the 1-based file line.
func (s *ExpenseStore) convertRow(row models.ExpenseCSVRow, line int) (models.ExpenseRecord, error) {
	date, _, err := dateutils.ParseDate(row.Date)
	if err != nil {
		return models.ExpenseRecord{}, &parsererror.ParseError{
			FilePath: s.filePath, Line: line, Field: models.HeaderDate, Value: row.Date, Err: err,
		}
	}

	amount, err := models.ParseAmount(row.Amount)
	if err != nil {
		return models.ExpenseRecord{}, &parsererror.ParseError{
			FilePath: s.filePath, Line: line, Field: models.HeaderAmount, Value: row.Amount, Err: err,
		}
	}

	return models.ExpenseRecord{
		Date:        date,
		Category:    models.Category(strings.TrimSpace(row.Category)),
		Description: row.Description,
		Amount:      amount,
	}, nil
}

// Save writes records to a new expenses file. It never replaces an existing
// file: in that case ErrAlreadyExists is returned and the file is untouched.
func (s *ExpenseStore) Save(records []models.ExpenseRecord) error {
	rows := make([]models.ExpenseCSVRow, len(records))
	for i, r := range records {
		rows[i] = r.ToCSVRow()
	}

	err := common.WriteNewCSVFile(rows, s.filePath, s.delimiter, s.logger)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, s.filePath)
	}
	if err != nil {
		return fmt.Errorf("error saving expenses: %w", err)
	}

	s.logger.Info("Saved expense records",
		logging.Field{Key: logging.FieldFile, Value: s.filePath},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return nil
}
