package repository

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/pkg/logger"
	"github.com/okian/lineout/pkg/metrics"
)

// SafeLoader wraps a Backend so that reads never fail: a missing table or a
// backend error is logged and yields an empty table.
type SafeLoader struct {
	backend Backend
	log     logger.Logger
}

// NewSafeLoader wraps backend.
func NewSafeLoader(backend Backend, opts ...LoaderOption) *SafeLoader {
	s := &SafeLoader{backend: backend, log: logger.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the table name, or an empty table when it cannot be read.
func (s *SafeLoader) Load(ctx context.Context, name string) model.Table {
	start := time.Now()
	t, err := s.backend.LoadTable(ctx, name)
	ms := float64(time.Since(start).Milliseconds())

	switch {
	case err == nil:
		metrics.RecordTableLoad(name, metrics.OutcomeOK, ms, t.Len())
		return t
	case errors.Is(err, ErrTableNotFound):
		metrics.RecordTableLoad(name, metrics.OutcomeMissing, ms, 0)
		s.log.Warn(ctx, "table missing, using empty table", logger.String("table", name))
	default:
		metrics.RecordTableLoad(name, metrics.OutcomeError, ms, 0)
		metrics.RecordErrorByComponent("repository", "load_failed")
		s.log.Error(ctx, "table load failed, using empty table", logger.String("table", name), logger.Error(err))
	}
	return model.Table{}
}

// Append writes one row through the backend. Unlike Load, failures are
// returned to the caller.
func (s *SafeLoader) Append(ctx context.Context, name string, values []string) error {
	start := time.Now()
	err := s.backend.AppendRow(ctx, name, values)
	ms := float64(time.Since(start).Milliseconds())
	if err != nil {
		metrics.RecordBackendAppend(name, metrics.OutcomeError, ms)
		metrics.RecordErrorByComponent("repository", "append_failed")
		return errors.Wrapf(err, "append to %q", name)
	}
	metrics.RecordBackendAppend(name, metrics.OutcomeOK, ms)
	return nil
}
