// Package common provides the CSV plumbing shared by the expense store and the report exporter.
package common

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"anjalsubedi/expense-tracker/internal/fileutils"
	"anjalsubedi/expense-tracker/internal/logging"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

// ErrEmptyFile is returned by ReadHeader when the file has no header row.
var ErrEmptyFile = errors.New("csv file is empty")

func newReader(r io.Reader, delimiter rune) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	return reader
}

// ReadHeader returns the first record of a CSV file.
func ReadHeader(filePath string, delimiter rune) ([]string, error) {
	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	header, err := newReader(file, delimiter).Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	return header, nil
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
// TCSVRow is the struct type that maps to the CSV columns.
// Rows with a column count different from the header fail the whole read.
func ReadCSVFile[TCSVRow any](filePath string, delimiter rune, logger logging.Logger) ([]TCSVRow, error) {
	log := logger.WithField(logging.FieldFile, filePath)
	log.Debug("Reading CSV file")

	file, err := fileutils.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalCSV(newReader(file, delimiter), &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.Debug("Successfully read CSV data", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// WriteCSVFile writes rows to filePath, header first, replacing any existing file.
// Parent directories are created as needed.
func WriteCSVFile[TCSVRow any](rows []TCSVRow, filePath string, delimiter rune, logger logging.Logger) error {
	file, err := fileutils.CreateFile(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	return writeAndClose(file, rows, filePath, delimiter, logger)
}

// WriteNewCSVFile is WriteCSVFile for a file that must not exist yet; see fileutils.CreateNewFile.
func WriteNewCSVFile[TCSVRow any](rows []TCSVRow, filePath string, delimiter rune, logger logging.Logger) error {
	file, err := fileutils.CreateNewFile(filePath)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	return writeAndClose(file, rows, filePath, delimiter, logger)
}

func writeAndClose[TCSVRow any](file io.WriteCloser, rows []TCSVRow, filePath string, delimiter rune, logger logging.Logger) error {
	log := logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(rows)},
	)

	if err := WriteCSV(file, rows, delimiter); err != nil {
		_ = file.Close()
		log.WithError(err).Error("Failed to write CSV file")
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing CSV file: %w", err)
	}

	log.Debug("Wrote CSV file")
	return nil
}

// WriteCSV marshals rows to w with the given delimiter.
// An empty slice still produces the header row.
func WriteCSV[TCSVRow any](w io.Writer, rows []TCSVRow, delimiter rune) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if rows == nil {
		rows = []TCSVRow{}
	}
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}
