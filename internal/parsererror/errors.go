// Package parsererror defines the typed errors raised while reading pipeline input files.
package parsererror

import "fmt"

// ParseError represents a row of the input file that could not be converted.
type ParseError struct {
	FilePath string
	Line     int
	Field    string
	Value    string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: failed to parse %s='%s': %v",
		e.FilePath, e.Line, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError represents an input file that does not have the expected layout,
// for example a wrong header row.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Actual         string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	if e.Actual != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Got: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.Actual)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}
