package player

import "time"

// EventKind names a decoder signal
type EventKind string

const (
	// EventPrepared is sent when the decoder is ready to start the source
	EventPrepared EventKind = "prepared"

	// EventCompleted is sent when the source played to its end
	EventCompleted EventKind = "completed"

	// EventFailed is sent when the source could not be fetched or decoded
	EventFailed EventKind = "failed"
)

// Event is a decoder signal for the load identified by Token
type Event struct {
	Kind     EventKind
	Token    string
	Duration time.Duration // set on EventPrepared
	Err      error         // set on EventFailed
}
