package services

// MissingCredentialError means no usable calendar-owner credential is
// stored. The message is shown to the operator in the chat reply, so it
// spells out how to authorize.
type MissingCredentialError struct {
	Source string
}

func (e *MissingCredentialError) Error() string {
	return "No calendar owner is authorized yet (" + e.Source + "). " +
		"Set ALLOW_CALENDAR_OWNER_LOGIN=true and navigate to /connect/google/execute to log in."
}

// CalendarAPIError wraps any failure from the calendar service. It is
// never retried; the message is appended verbatim to the chat answer.
type CalendarAPIError struct {
	Message string
	Err     error
}

func (e *CalendarAPIError) Error() string {
	return "Calendar error: " + e.Message
}

func (e *CalendarAPIError) Unwrap() error {
	return e.Err
}
