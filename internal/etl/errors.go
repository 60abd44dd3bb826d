package etl

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for an unknown source type, input format or output format.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrMissingTableName is returned when a sql or mongo sink has no table name.
	ErrMissingTableName = errors.New("table name must be provided when output format is 'sql' or 'mongo'")
)

// FetchError reports a failed HTTP request for a url source.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ColumnNotFoundError lists the keep-list columns missing from a table.
type ColumnNotFoundError struct {
	Names []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("columns not found: %s", strings.Join(e.Names, ", "))
}

func unsupported(what, value string) error {
	return fmt.Errorf("%w: %s %q", ErrUnsupportedFormat, what, value)
}
