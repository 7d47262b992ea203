package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/okian/lineout/internal/domain/model"
)

// Memory is an in-process Backend, used by tests and demos.
type Memory struct {
	mu     sync.RWMutex
	tables map[string]model.Table
}

// NewMemory returns a backend holding copies of sheets.
func NewMemory(sheets ...Sheet) *Memory {
	m := &Memory{tables: make(map[string]model.Table, len(sheets))}
	for _, s := range sheets {
		m.tables[s.Name] = clone(s.Table)
	}
	return m
}

// LoadTable implements Backend.LoadTable.
func (m *Memory) LoadTable(_ context.Context, name string) (model.Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tables[name]
	if !ok {
		return model.Table{}, errors.Wrapf(ErrTableNotFound, "%q", name)
	}
	return clone(t), nil
}

// AppendRow implements Backend.AppendRow.
func (m *Memory) AppendRow(_ context.Context, name string, values []string) error {
	if len(values) == 0 {
		return ErrEmptyRow
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tables[name]
	if !ok {
		return errors.Wrapf(ErrTableNotFound, "%q", name)
	}
	t.Rows = append(t.Rows, slices.Clone(values))
	m.tables[name] = t
	return nil
}

func clone(t model.Table) model.Table {
	out := model.Table{Header: slices.Clone(t.Header)}
	if t.Rows != nil {
		out.Rows = make([][]string, len(t.Rows))
		for i, r := range t.Rows {
			out.Rows[i] = slices.Clone(r)
		}
	}
	return out
}
