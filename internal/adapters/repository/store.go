// Package repository reads and appends rows of the squad tables.
package repository

import (
	"context"

	"github.com/okian/lineout/internal/domain/model"
)

// Backend is the tabular store holding the squad tables. Each table is a
// header row followed by data rows of text cells.
type Backend interface {
	// LoadTable returns the header and data rows of name.
	// Returns ErrTableNotFound if the table does not exist.
	LoadTable(ctx context.Context, name string) (model.Table, error)

	// AppendRow adds values as the last data row of name.
	AppendRow(ctx context.Context, name string, values []string) error
}

// Sheet is a named table, used to seed a backend.
type Sheet struct {
	Name  string
	Table model.Table
}
