package repository

import "github.com/cockroachdb/errors"

// Sentinel kinds for backend errors.
var (
	ErrTableNotFound    = errors.New("table not found")
	ErrWorkbookNotFound = errors.New("workbook not found")
	ErrEmptyRow         = errors.New("row has no values")
)
