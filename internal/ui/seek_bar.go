package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/lo"

	"github.com/ytget/album-player/internal/model"
)

// SeekBar is a 0-100 slider that reports user scrubbing explicitly. A drag
// produces OnScrubStart, OnScrub for every move and one OnScrubEnd on
// release. Discrete changes (tap, keyboard) produce a start/end pair.
// SetProgress moves the thumb without invoking any callback.
type SeekBar struct {
	widget.Slider

	OnScrubStart func()
	OnScrub      func(percent float64)
	OnScrubEnd   func(percent float64)

	dragging bool
}

// NewSeekBar creates a seek bar at 0 that moves in whole percents
func NewSeekBar() *SeekBar {
	s := &SeekBar{}
	s.Min = 0
	s.Max = model.MaxProgress
	s.Step = 1
	s.Orientation = widget.Horizontal
	s.Slider.OnChanged = s.onChanged
	s.ExtendBaseWidget(s)
	return s
}

// SetProgress moves the thumb unless the user is dragging it
func (s *SeekBar) SetProgress(percent float64) {
	if s.dragging {
		return
	}
	percent = lo.Clamp(percent, 0, model.MaxProgress)
	if s.Value == percent {
		return
	}
	s.Value = percent
	s.Refresh()
}

// Dragging reports whether a drag is in progress
func (s *SeekBar) Dragging() bool {
	return s.dragging
}

// Dragged starts a scrub on the first move
func (s *SeekBar) Dragged(e *fyne.DragEvent) {
	if !s.dragging {
		s.dragging = true
		if s.OnScrubStart != nil {
			s.OnScrubStart()
		}
	}
	s.Slider.Dragged(e)
}

// DragEnd finishes the scrub at the current value
func (s *SeekBar) DragEnd() {
	s.Slider.DragEnd()
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.OnScrubEnd != nil {
		s.OnScrubEnd(s.Value)
	}
}

func (s *SeekBar) onChanged(value float64) {
	if s.dragging {
		if s.OnScrub != nil {
			s.OnScrub(value)
		}
		return
	}
	if s.OnScrubStart != nil {
		s.OnScrubStart()
	}
	if s.OnScrubEnd != nil {
		s.OnScrubEnd(value)
	}
}
