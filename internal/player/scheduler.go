package player

import "time"

// DispatchScheduler schedules callbacks with time.AfterFunc and hands them to
// dispatch, which must run them on the UI goroutine (fyne.Do in the app).
type DispatchScheduler struct {
	dispatch func(func())
}

// NewDispatchScheduler creates a scheduler that marshals callbacks through dispatch
func NewDispatchScheduler(dispatch func(func())) *DispatchScheduler {
	return &DispatchScheduler{dispatch: dispatch}
}

// AfterFunc waits for d and then dispatches f
func (s *DispatchScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() {
		s.dispatch(f)
	})
}
