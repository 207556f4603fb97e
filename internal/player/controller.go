package player

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/album-player/internal/model"
)

// Timing defaults
const (
	DefaultPollInterval = time.Second
	DefaultResumeDelay  = time.Second
)

var (
	// ErrIndexOutOfRange is returned when selecting a track outside the queue
	ErrIndexOutOfRange = errors.New("track index out of range")

	// ErrReleased is returned by operations on a released controller
	ErrReleased = errors.New("player released")
)

// Controller runs the playback state machine
type Controller struct {
	decoder   Decoder
	scheduler Scheduler
	logger    *log.Entry

	pollInterval time.Duration
	resumeDelay  time.Duration

	urls  []string
	state model.PlaybackState

	token    string // identifies the current decoder load
	poll     Timer
	pollGen  uint64
	released bool

	onUpdate func(model.PlaybackState)
	onError  func(error)
}

// Option configures a Controller
type Option func(*Controller)

// WithPollInterval sets how often the decoder position is polled
func WithPollInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithResumeDelay sets the delay before polling resumes after a seek
func WithResumeDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.resumeDelay = d
		}
	}
}

// NewController creates a controller driving decoder
func NewController(decoder Decoder, scheduler Scheduler, opts ...Option) *Controller {
	c := &Controller{
		decoder:      decoder,
		scheduler:    scheduler,
		pollInterval: DefaultPollInterval,
		resumeDelay:  DefaultResumeDelay,
		state:        model.NewPlaybackState(),
		logger: log.WithFields(log.Fields{
			"module": "player",
		}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetUpdateCallback sets the callback invoked after every state change
func (c *Controller) SetUpdateCallback(callback func(model.PlaybackState)) {
	c.onUpdate = callback
}

// SetErrorCallback sets the callback invoked when playback fails
func (c *Controller) SetErrorCallback(callback func(error)) {
	c.onError = callback
}

// State returns a copy of the current playback state
func (c *Controller) State() model.PlaybackState {
	return c.state
}

// TrackCount returns the queue length
func (c *Controller) TrackCount() int {
	return len(c.urls)
}

// SetTracks replaces the queue with the given stream URLs and returns to Idle
func (c *Controller) SetTracks(urls []string) {
	if c.released {
		return
	}
	c.stop()
	c.urls = append([]string(nil), urls...)
	c.state = model.NewPlaybackState()
	c.logger.Debugf("queue replaced with %d tracks", len(c.urls))
	c.notify()
}

// Select loads track index and starts it once the decoder is ready
func (c *Controller) Select(index int) error {
	if c.released {
		return ErrReleased
	}
	if index < 0 || index >= len(c.urls) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(c.urls))
	}

	c.cancelPoll()
	c.decoder.Reset()

	c.token = uuid.NewString()
	c.state.Index = index
	c.state.State = model.PlayerStateLoading
	c.state.Scrubbing = false
	c.state.Position = 0
	c.state.Duration = 0

	c.logger.WithField("token", c.token).Infof("loading track %d", index)
	c.decoder.Prepare(c.urls[index], c.token)
	c.notify()
	return nil
}

// Next advances to the following track, wrapping to the first one
func (c *Controller) Next() error {
	if len(c.urls) == 0 {
		return ErrIndexOutOfRange
	}
	return c.Select(NextIndex(c.state.Index, len(c.urls)))
}

// Previous moves to the preceding track, wrapping to the last one
func (c *Controller) Previous() error {
	if len(c.urls) == 0 {
		return ErrIndexOutOfRange
	}
	return c.Select(PreviousIndex(c.state.Index, len(c.urls)))
}

// TogglePlayPause switches between Playing and Paused. From Idle it starts
// the first track; while Loading it does nothing.
func (c *Controller) TogglePlayPause() error {
	if c.released {
		return ErrReleased
	}

	switch c.state.State {
	case model.PlayerStatePlaying:
		c.decoder.Pause()
		c.state.State = model.PlayerStatePaused
		c.notify()
	case model.PlayerStatePaused:
		c.decoder.Start()
		c.state.State = model.PlayerStatePlaying
		c.notify()
	case model.PlayerStateIdle:
		if len(c.urls) == 0 {
			return nil
		}
		index := 0
		if c.state.HasTrack() {
			index = c.state.Index
		}
		return c.Select(index)
	case model.PlayerStateLoading:
		c.logger.Debug("toggle ignored while loading")
	}
	return nil
}

// HandleEvent applies a decoder signal. Signals for a superseded load are dropped.
func (c *Controller) HandleEvent(ev Event) {
	if c.released {
		return
	}
	if ev.Token != c.token {
		c.logger.Debugf("dropping stale %s event", ev.Kind)
		return
	}

	switch ev.Kind {
	case EventPrepared:
		if c.state.State != model.PlayerStateLoading {
			return
		}
		c.decoder.Start()
		c.state.State = model.PlayerStatePlaying
		c.state.Duration = ev.Duration
		c.state.Position = 0
		c.logger.Infof("track %d playing (%s)", c.state.Index, model.FormatDuration(ev.Duration))
		c.notify()
		c.schedulePoll(0)
	case EventCompleted:
		if !c.state.State.IsLoaded() {
			return
		}
		c.logger.Infof("track %d completed", c.state.Index)
		if err := c.Next(); err != nil {
			c.logger.WithError(err).Warn("advance failed")
		}
	case EventFailed:
		c.fail(ev.Err)
	}
}

// BeginScrub suspends position polling while the user drags the seek bar.
// It does nothing unless a track is loaded.
func (c *Controller) BeginScrub() {
	if c.released || !c.state.State.IsLoaded() {
		return
	}
	c.state.Scrubbing = true
	c.cancelPoll()
	c.notify()
}

// Scrub records the dragged position without seeking
func (c *Controller) Scrub(percent float64) {
	if !c.state.Scrubbing {
		return
	}
	c.state.Position = c.state.PositionAt(percent)
	c.notify()
}

// EndScrub seeks once to the released position and resumes polling after
// the resume delay
func (c *Controller) EndScrub(percent float64) {
	if c.released || !c.state.Scrubbing {
		return
	}
	c.state.Scrubbing = false

	target := c.state.PositionAt(lo.Clamp(percent, 0, model.MaxProgress))
	if err := c.decoder.SeekTo(target); err != nil {
		c.logger.WithError(err).Warnf("seek to %s failed", model.FormatDuration(target))
	} else {
		c.state.Position = target
	}
	c.notify()
	c.schedulePoll(c.resumeDelay)
}

// Tick polls the decoder position. It is driven by the poll timer.
func (c *Controller) Tick() {
	if c.released || c.state.Scrubbing || !c.state.State.IsLoaded() {
		return
	}
	c.state.Position = c.decoder.Position()
	if d := c.decoder.Duration(); d > 0 {
		c.state.Duration = d
	}
	c.notify()
}

// Release stops polling and releases the decoder. The controller is unusable
// afterwards.
func (c *Controller) Release() {
	if c.released {
		return
	}
	c.cancelPoll()
	c.released = true
	c.token = ""
	c.decoder.Release()
	c.state = model.NewPlaybackState()
	c.logger.Info("player released")
}

// Released reports whether Release was called
func (c *Controller) Released() bool {
	return c.released
}

// fail moves to Idle after a playback failure on the current load
func (c *Controller) fail(err error) {
	if err == nil {
		err = errors.New("unknown decoder failure")
	}
	c.logger.WithError(err).Errorf("playback of track %d failed", c.state.Index)

	c.stop()
	c.state = model.NewPlaybackState()
	c.notify()

	if c.onError != nil {
		c.onError(err)
	}
}

// stop cancels polling and resets the decoder without releasing it
func (c *Controller) stop() {
	c.cancelPoll()
	c.token = ""
	if c.state.State.IsActive() {
		c.decoder.Reset()
	}
}

// schedulePoll arms the poll timer. Callbacks of cancelled timers are ignored.
func (c *Controller) schedulePoll(delay time.Duration) {
	c.cancelPoll()
	gen := c.pollGen
	c.poll = c.scheduler.AfterFunc(delay, func() {
		if gen != c.pollGen || c.released {
			return
		}
		c.Tick()
		if !c.state.Scrubbing && c.state.State.IsLoaded() {
			c.schedulePoll(c.pollInterval)
		}
	})
}

// cancelPoll stops the poll timer and invalidates any queued callback
func (c *Controller) cancelPoll() {
	c.pollGen++
	if c.poll != nil {
		c.poll.Stop()
		c.poll = nil
	}
}

// notify calls the update callback if set
func (c *Controller) notify() {
	if c.onUpdate != nil {
		c.onUpdate(c.state)
	}
}

// NextIndex returns the index after current, wrapping modulo count
func NextIndex(current, count int) int {
	if count <= 0 {
		return model.NoTrack
	}
	if current < 0 {
		return 0
	}
	return (current + 1) % count
}

// PreviousIndex returns the index before current, wrapping to the last track
func PreviousIndex(current, count int) int {
	if count <= 0 {
		return model.NoTrack
	}
	if current <= 0 {
		return count - 1
	}
	return (current - 1) % count
}
