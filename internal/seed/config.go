package seed

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/okian/lineout/internal/domain/dates"
)

// Config controls the size and shape of a generated workbook.
type Config struct {
	Out      string    // Output xlsx path
	Players  int       // Roster size
	Sessions int       // Training sessions to generate
	Seed     uint64    // Random seed; the same seed and End yield the same workbook
	End      time.Time // Day of the last session; sessions run backwards from it. Zero is today
	Tables   Tables
}

// Tables names the sheets of the workbook.
type Tables struct {
	Roster   string
	Manual   string
	Form     string
	Injuries string
}

// Stats summarises a generated workbook.
type Stats struct {
	Players      int
	Sessions     int
	ManualRows   int
	FormRows     int
	Placeholders int
	Injuries     int
}

// ParseEnd reads the -end flag. An empty value means today.
func ParseEnd(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	day, ok := dates.Parse(value)
	if !ok {
		return time.Time{}, errors.Wrapf(ErrInvalidConfig, "end date %q", value)
	}
	return day, nil
}
