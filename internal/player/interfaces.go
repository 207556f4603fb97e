package player

import "time"

// Decoder defines the host media decoder driven by the controller.
type Decoder interface {
	// Prepare loads url asynchronously and answers with an EventPrepared or
	// EventFailed carrying token.
	Prepare(url, token string)
	Start()
	Pause()
	// Reset drops the current source and cancels any pending Prepare.
	Reset()
	SeekTo(position time.Duration) error
	Position() time.Duration
	Duration() time.Duration
	Release()
}

// Scheduler runs delayed callbacks on the controller's goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending scheduled callback.
type Timer interface {
	Stop() bool
}
