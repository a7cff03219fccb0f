package models

import "time"

// EventRequest is a meeting extracted from assistant text, ready to be
// sent to the calendar API. End is always strictly after Start.
type EventRequest struct {
	Subject       string
	Location      string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
}
