package audio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/album-player/internal/player"
)

// Output defaults
const (
	DefaultSampleRate beep.SampleRate = 44100
	DefaultLatency                    = 100 * time.Millisecond

	resampleQuality = 4
)

var (
	// ErrNoSource is returned by SeekTo when nothing is prepared
	ErrNoSource = errors.New("no prepared source")

	// ErrDecodeFailed wraps decoder errors reported through EventFailed
	ErrDecodeFailed = errors.New("decode failed")
)

// Fetcher downloads the encoded audio of a track
type Fetcher interface {
	FetchStream(ctx context.Context, url string) ([]byte, error)
}

// Engine implements player.Decoder on top of beep
type Engine struct {
	fetcher  Fetcher
	dispatch func(func())
	output   Output
	decode   DecodeFunc
	logger   *log.Entry

	sampleRate beep.SampleRate
	latency    time.Duration

	handler func(player.Event)

	mu          sync.Mutex
	outputReady bool
	cancel      context.CancelFunc
	token       string
	stream      beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	released    bool
}

// EngineOption configures an Engine
type EngineOption func(*Engine)

// WithOutput replaces the speaker
func WithOutput(o Output) EngineOption {
	return func(e *Engine) {
		e.output = o
	}
}

// WithDecoder replaces the MP3 decoder
func WithDecoder(d DecodeFunc) EngineOption {
	return func(e *Engine) {
		e.decode = d
	}
}

// WithSampleRate sets the speaker sample rate. Streams at other rates are resampled.
func WithSampleRate(sr beep.SampleRate) EngineOption {
	return func(e *Engine) {
		if sr > 0 {
			e.sampleRate = sr
		}
	}
}

// NewEngine creates an engine. dispatch must run its argument on the UI goroutine.
func NewEngine(fetcher Fetcher, dispatch func(func()), opts ...EngineOption) *Engine {
	e := &Engine{
		fetcher:    fetcher,
		dispatch:   dispatch,
		output:     speakerOutput{},
		decode:     decodeMP3,
		sampleRate: DefaultSampleRate,
		latency:    DefaultLatency,
		logger: log.WithFields(log.Fields{
			"module": "audio",
		}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetEventHandler sets the receiver of decoder events. It is called on the
// UI goroutine through dispatch.
func (e *Engine) SetEventHandler(handler func(player.Event)) {
	e.handler = handler
}

// Prepare fetches and decodes url in the background
func (e *Engine) Prepare(url, token string) {
	e.mu.Lock()
	if e.released {
		e.mu.Unlock()
		return
	}
	e.resetLocked()
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.token = token
	e.mu.Unlock()

	go e.load(ctx, url, token)
}

func (e *Engine) load(ctx context.Context, url, token string) {
	logger := e.logger.WithField("token", token)

	data, err := e.fetcher.FetchStream(ctx, url)
	if ctx.Err() != nil {
		logger.Debug("load cancelled")
		return
	}
	if err != nil {
		logger.WithError(err).Warn("fetch failed")
		e.emit(player.Event{Kind: player.EventFailed, Token: token, Err: err})
		return
	}

	stream, format, err := e.decode(newReadSeekNopCloser(data))
	if err != nil {
		logger.WithError(err).Warn("decode failed")
		e.emit(player.Event{Kind: player.EventFailed, Token: token, Err: fmt.Errorf("%w: %v", ErrDecodeFailed, err)})
		return
	}

	if err := e.ensureOutput(); err != nil {
		stream.Close()
		logger.WithError(err).Error("audio output unavailable")
		e.emit(player.Event{Kind: player.EventFailed, Token: token, Err: err})
		return
	}

	e.mu.Lock()
	if e.released || e.token != token || ctx.Err() != nil {
		e.mu.Unlock()
		stream.Close()
		return
	}

	ctrl := &beep.Ctrl{Streamer: stream, Paused: true}
	var source beep.Streamer = ctrl
	if format.SampleRate != e.sampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, e.sampleRate, ctrl)
	}

	e.stream = stream
	e.format = format
	e.ctrl = ctrl
	duration := format.SampleRate.D(stream.Len())
	e.output.Play(beep.Seq(source, beep.Callback(func() {
		e.emit(player.Event{Kind: player.EventCompleted, Token: token})
	})))
	e.mu.Unlock()

	logger.Debugf("prepared %d bytes at %d Hz", len(data), format.SampleRate)
	e.emit(player.Event{Kind: player.EventPrepared, Token: token, Duration: duration})
}

// Start resumes output of the prepared source
func (e *Engine) Start() {
	e.setPaused(false)
}

// Pause holds output at the current position
func (e *Engine) Pause() {
	e.setPaused(true)
}

// Reset drops the current source and cancels any pending Prepare
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

// SeekTo moves the prepared source to position, clamped to its length
func (e *Engine) SeekTo(position time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream == nil {
		return ErrNoSource
	}

	n := e.format.SampleRate.N(position)
	if last := e.stream.Len() - 1; n > last {
		n = last
	}
	if n < 0 {
		n = 0
	}

	e.output.Lock()
	defer e.output.Unlock()
	if err := e.stream.Seek(n); err != nil {
		return fmt.Errorf("seek to %s: %w", position, err)
	}
	return nil
}

// Position returns the playback position of the prepared source
func (e *Engine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream == nil {
		return 0
	}
	e.output.Lock()
	pos := e.stream.Position()
	e.output.Unlock()
	return e.format.SampleRate.D(pos)
}

// Duration returns the length of the prepared source
func (e *Engine) Duration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stream == nil {
		return 0
	}
	return e.format.SampleRate.D(e.stream.Len())
}

// Release stops playback and closes the output. The engine ignores further calls.
func (e *Engine) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.released {
		return
	}
	e.resetLocked()
	e.released = true
	if e.outputReady {
		e.output.Close()
		e.outputReady = false
	}
	e.logger.Debug("engine released")
}

func (e *Engine) setPaused(paused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ctrl == nil {
		return
	}
	e.output.Lock()
	e.ctrl.Paused = paused
	e.output.Unlock()
}

// resetLocked requires e.mu
func (e *Engine) resetLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.token = ""
	if e.outputReady {
		e.output.Clear()
	}
	if e.stream != nil {
		if err := e.stream.Close(); err != nil {
			e.logger.WithError(err).Debug("close stream")
		}
	}
	e.stream = nil
	e.ctrl = nil
	e.format = beep.Format{}
}

func (e *Engine) ensureOutput() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.outputReady {
		return nil
	}
	if err := e.output.Init(e.sampleRate, bufferSize(e.sampleRate, e.latency)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	e.outputReady = true
	return nil
}

// emit must not take e.mu: completion callbacks run under the output lock
func (e *Engine) emit(ev player.Event) {
	e.dispatch(func() {
		if e.handler != nil {
			e.handler(ev)
		}
	})
}
