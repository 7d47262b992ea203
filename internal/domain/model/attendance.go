package model

import "time"

// RawAttendance is one unified attendance row before cleaning. Both fields
// hold the cell text exactly as the source wrote it.
type RawAttendance struct {
	Date string
	Name string
}

// Event records that a player was present on a calendar day.
type Event struct {
	Date time.Time // UTC midnight
	Name string    // a single, trimmed name
}
