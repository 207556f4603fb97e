package model

// PlayerState represents the state of the playback state machine
type PlayerState string

const (
	// PlayerStateIdle means no track is loaded
	PlayerStateIdle PlayerState = "Idle"

	// PlayerStateLoading means a track source is set and the decoder is preparing it
	PlayerStateLoading PlayerState = "Loading"

	// PlayerStatePlaying means the decoder is producing audio
	PlayerStatePlaying PlayerState = "Playing"

	// PlayerStatePaused means a prepared track is paused by the user
	PlayerStatePaused PlayerState = "Paused"
)

// String returns the string representation of PlayerState
func (ps PlayerState) String() string {
	return string(ps)
}

// IsLoaded returns true if the decoder holds a prepared source
func (ps PlayerState) IsLoaded() bool {
	return ps == PlayerStatePlaying || ps == PlayerStatePaused
}

// IsActive returns true if a track is selected (loading, playing or paused)
func (ps PlayerState) IsActive() bool {
	return ps == PlayerStateLoading || ps.IsLoaded()
}
