package models

// ConversationTurn is one message in a chat conversation. The caller
// resubmits the full ordered history on every request; nothing is kept
// server-side. Role values are passed through to the upstream API as-is.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReply is the assistant answer plus the optional booking result
// (event link or booking error text) appended below it.
type ChatReply struct {
	Answer        string
	BookingResult string
}

// Text returns the reply as a single string, with the booking result on
// its own trailing line when present.
func (r ChatReply) Text() string {
	if r.BookingResult == "" {
		return r.Answer
	}
	return r.Answer + "\n" + r.BookingResult
}
