// Package reporting forwards unexpected errors to Sentry. Without a DSN every
// call is a no-op.
package reporting

import (
	"sync/atomic"
	"time"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// FlushTimeout bounds how long Flush waits for queued events
const FlushTimeout = 2 * time.Second

var enabled atomic.Bool

// Init configures the Sentry client. An empty dsn disables reporting.
func Init(dsn, release string) error {
	if dsn == "" {
		enabled.Store(false)
		log.WithField("module", "reporting").Debug("sentry disabled: empty DSN")
		return nil
	}
	return initWithOptions(sentry.ClientOptions{
		Dsn:     dsn,
		Release: release,
	})
}

func initWithOptions(opts sentry.ClientOptions) error {
	if err := sentry.Init(opts); err != nil {
		enabled.Store(false)
		return err
	}
	enabled.Store(true)
	return nil
}

// Enabled reports whether errors are forwarded
func Enabled() bool {
	return enabled.Load()
}

// ReportError captures err with the given tags
func ReportError(err error, tags map[string]string) {
	if err == nil || !enabled.Load() {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}

// Flush waits for queued events to be sent
func Flush() {
	if !enabled.Load() {
		return
	}
	sentry.Flush(FlushTimeout)
}
