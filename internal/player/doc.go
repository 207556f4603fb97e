package player

// Package player implements the single-track playback state machine. The
// Controller owns the PlaybackState value, drives a Decoder and polls its
// position on a repeating timer. It is not safe for concurrent use: every call,
// including decoder events and timer callbacks, must arrive on the UI goroutine.
