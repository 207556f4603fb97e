package model

import (
	"fmt"
	"time"
)

// NoTrack is the index sentinel used when no track is selected
const NoTrack = -1

// MaxProgress is the upper bound of the progress scale
const MaxProgress = 100

// PlaybackState is the transient playback value owned by the player
// controller. It is only mutated through the controller's transitions.
type PlaybackState struct {
	Index     int // active track or NoTrack
	State     PlayerState
	Scrubbing bool // user is dragging the seek bar; position polling is suspended
	Position  time.Duration
	Duration  time.Duration
}

// NewPlaybackState returns the initial idle state
func NewPlaybackState() PlaybackState {
	return PlaybackState{
		Index: NoTrack,
		State: PlayerStateIdle,
	}
}

// HasTrack reports whether a track is active
func (ps PlaybackState) HasTrack() bool {
	return ps.Index != NoTrack
}

// Progress returns the elapsed position as a percentage of the duration,
// 0 when the duration is not known yet
func (ps PlaybackState) Progress() float64 {
	if ps.Duration <= 0 {
		return 0
	}
	p := float64(ps.Position) * MaxProgress / float64(ps.Duration)
	if p < 0 {
		return 0
	}
	if p > MaxProgress {
		return MaxProgress
	}
	return p
}

// Elapsed returns the position formatted for display
func (ps PlaybackState) Elapsed() string {
	return FormatDuration(ps.Position)
}

// Total returns the duration formatted for display
func (ps PlaybackState) Total() string {
	return FormatDuration(ps.Duration)
}

// PositionAt converts a progress percentage into a position within the track
func (ps PlaybackState) PositionAt(percent float64) time.Duration {
	if percent < 0 {
		percent = 0
	}
	if percent > MaxProgress {
		percent = MaxProgress
	}
	return time.Duration(float64(ps.Duration) * percent / MaxProgress)
}

// FormatDuration formats d as mm:ss, or hh:mm:ss for an hour or more
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
