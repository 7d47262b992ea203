// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - All functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"context"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr" validate:"required"`

	// WorkbookPath is the xlsx file holding the squad tables.
	WorkbookPath string `koanf:"workbook_path" validate:"required"`

	// Logical table names, one workbook tab each.
	PlayersTable  string `koanf:"players_table" validate:"required"`
	ManualTable   string `koanf:"manual_table" validate:"required"`
	FormTable     string `koanf:"form_table" validate:"required"`
	InjuriesTable string `koanf:"injuries_table" validate:"required"`

	// DedupeSize bounds the in-process duplicate submission guard; 0 is unbounded.
	DedupeSize int `koanf:"dedupe_size" validate:"min=0"`

	// ManualSourceTag is written in the third column of manual attendance rows.
	ManualSourceTag string `koanf:"manual_source_tag" validate:"required"`

	// FormURL is the self-registration form players reach through the QR code.
	FormURL string `koanf:"form_url" validate:"omitempty,url"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		WorkbookPath:    "lineout.xlsx",
		PlayersTable:    "Jugadores",
		ManualTable:     "DB_Asistencia",
		FormTable:       "Respuestas de formulario 3",
		InjuriesTable:   "Lesionados",
		DedupeSize:      4096,
		ManualSourceTag: "Manual",
	}
}
