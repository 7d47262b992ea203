// Package dates parses the free-text date cells found in attendance sheets.
//
// Cells come from two writers: coaches typing day-first dates by hand and a
// form service stamping ISO timestamps. Parse accepts both and reduces the
// result to a calendar day; anything else is reported as invalid rather than
// failing the caller.
package dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Layouts tried in order. Day-first layouts come before ISO ones so that an
// ambiguous "05/02/2026" resolves to 5 February.
var layouts = []string{
	"02/01/2006 15:04:05",
	"2/1/2006 15:04:05",
	"02/01/2006 15:04",
	"2/1/2006 15:04",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006 15:04:05",
	"02-01-2006",
	"2-1-2006",
	"02/01/06",
	"2/1/06",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02",
	"2006/01/02",
}

// Spreadsheet serial dates accepted by Parse: 2000-01-01 up to 2099-12-31.
const (
	serialMin = 36526
	serialMax = 73051
)

// Parse converts a date cell into a calendar day at UTC midnight. Besides
// the text layouts it accepts a spreadsheet serial date ("46089.4166"), as
// read from a cell typed as a datetime. The second return value is false
// when nothing matches.
func Parse(text string) (time.Time, bool) {
	value := strings.TrimSpace(text)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return Day(parsed), true
		}
	}
	return fromSerial(value)
}

// fromSerial reads a 1900-system spreadsheet serial date.
func fromSerial(value string) (time.Time, bool) {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial < serialMin || serial >= serialMax {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return Day(t), true
}

// Day truncates t to its calendar date, keeping the wall-clock fields of t.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of the month that contains t.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the most recent Monday on or before t.
func WeekStart(t time.Time) time.Time {
	d := Day(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return d.AddDate(0, 0, -offset)
}

// Format renders a day as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDayFirst renders a day the way coaches type it, DD/MM/YYYY.
func FormatDayFirst(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatTimestamp renders an instant as DD/MM/YYYY HH:MM:SS.
func FormatTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}
