package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/album-player/internal/model"
)

// itemRefresher is the part of widget.List the track list redraws through
type itemRefresher interface {
	Refresh()
	RefreshItem(id widget.ListItemID)
}

// TrackList renders the album tracks and highlights the active one. Only the
// rows whose highlight changes are redrawn.
type TrackList struct {
	list      *widget.List
	refresher itemRefresher

	tracks []model.Track
	active int
	onTap  func(index int)
}

// NewTrackList creates a list that reports row taps to onTap
func NewTrackList(onTap func(index int)) *TrackList {
	tl := &TrackList{
		active: model.NoTrack,
		onTap:  onTap,
	}

	tl.list = widget.NewList(
		func() int { return len(tl.tracks) },
		func() fyne.CanvasObject { return NewTrackRow() },
		tl.updateItem,
	)
	tl.list.OnSelected = tl.onSelected
	tl.refresher = tl.list
	return tl
}

// Widget returns the canvas object to place in a layout
func (tl *TrackList) Widget() fyne.CanvasObject {
	return tl.list
}

// SetTracks replaces the rows and clears the highlight
func (tl *TrackList) SetTracks(tracks []model.Track) {
	tl.tracks = append([]model.Track(nil), tracks...)
	tl.active = model.NoTrack
	tl.refresher.Refresh()
}

// SetActive moves the highlight to index. Out-of-range indices clear it.
func (tl *TrackList) SetActive(index int) {
	if index < 0 || index >= len(tl.tracks) {
		index = model.NoTrack
	}
	if index == tl.active {
		return
	}

	previous := tl.active
	tl.active = index
	if previous != model.NoTrack {
		tl.refresher.RefreshItem(previous)
	}
	if index != model.NoTrack {
		tl.refresher.RefreshItem(index)
	}
}

// Active returns the highlighted index or model.NoTrack
func (tl *TrackList) Active() int {
	return tl.active
}

// Length returns the number of rows
func (tl *TrackList) Length() int {
	return len(tl.tracks)
}

func (tl *TrackList) updateItem(id widget.ListItemID, obj fyne.CanvasObject) {
	row, ok := obj.(*TrackRow)
	if !ok || id < 0 || id >= len(tl.tracks) {
		return
	}
	row.SetTrack(tl.tracks[id], id == tl.active)
}

func (tl *TrackList) onSelected(id widget.ListItemID) {
	if tl.onTap != nil {
		tl.onTap(id)
	}
	tl.list.Unselect(id)
}
