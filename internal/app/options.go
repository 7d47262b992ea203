package service

import (
	"time"

	"github.com/okian/lineout/internal/adapters/repository"
	"github.com/okian/lineout/pkg/logger"
)

// Tables names the backend tables the service reads and writes.
type Tables struct {
	Players  string
	Manual   string
	Form     string
	Injuries string
}

// DefaultTables are the tab names of the squad workbook.
var DefaultTables = Tables{
	Players:  "Jugadores",
	Manual:   "DB_Asistencia",
	Form:     "Respuestas de formulario 3",
	Injuries: "Lesionados",
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithBackend sets the table backend.
func WithBackend(b repository.Backend) Option {
	return func(s *Service) {
		if b != nil {
			s.backend = b
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTables overrides the table names; empty names keep their default.
func WithTables(t Tables) Option {
	return func(s *Service) {
		if t.Players != "" {
			s.tables.Players = t.Players
		}
		if t.Manual != "" {
			s.tables.Manual = t.Manual
		}
		if t.Form != "" {
			s.tables.Form = t.Form
		}
		if t.Injuries != "" {
			s.tables.Injuries = t.Injuries
		}
	}
}

// WithSourceTag sets the tag written in the third column of manual rows.
func WithSourceTag(tag string) Option {
	return func(s *Service) {
		if tag != "" {
			s.sourceTag = tag
		}
	}
}

// WithFormURL sets the self-registration form link.
func WithFormURL(url string) Option {
	return func(s *Service) {
		s.formURL = url
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithDedupeSize bounds the duplicate submission guard; 0 is unbounded.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size >= 0 {
			s.dedupeSize = size
		}
	}
}
