package audio

import (
	"bytes"
	"io"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// Output is the audio sink streamers are mixed into
type Output interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
	Close()
}

// speakerOutput plays through the process-wide beep speaker
type speakerOutput struct{}

func (speakerOutput) Init(sampleRate beep.SampleRate, bufferSize int) error {
	return speaker.Init(sampleRate, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Clear()               { speaker.Clear() }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Close()               { speaker.Close() }

// DecodeFunc turns encoded audio into a seekable stream
type DecodeFunc func(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

// decodeMP3 decodes MP3 data. The reader must be seekable for SeekTo to work.
func decodeMP3(rc io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	return mp3.Decode(rc)
}

// readSeekNopCloser keeps bytes.Reader seekable behind io.ReadCloser
type readSeekNopCloser struct {
	*bytes.Reader
}

func (readSeekNopCloser) Close() error { return nil }

func newReadSeekNopCloser(data []byte) readSeekNopCloser {
	return readSeekNopCloser{Reader: bytes.NewReader(data)}
}

// bufferSize returns the speaker buffer length for the given latency
func bufferSize(sampleRate beep.SampleRate, latency time.Duration) int {
	n := sampleRate.N(latency)
	if n < 1 {
		return 1
	}
	return n
}
