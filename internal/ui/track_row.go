package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/album-player/internal/model"
)

// TrackRow displays one track: bold title over the file name, with a
// background highlight while the track is active
type TrackRow struct {
	widget.BaseWidget

	track  model.Track
	active bool

	titleLabel *widget.Label
	fileText   *canvas.Text
	background *canvas.Rectangle
}

// NewTrackRow creates an empty track row
func NewTrackRow() *TrackRow {
	tr := &TrackRow{}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetTrack shows track and its highlight state
func (tr *TrackRow) SetTrack(track model.Track, active bool) {
	tr.track = track
	tr.active = active
	tr.updateFromTrack()
	tr.Refresh()
}

// Track returns the displayed track
func (tr *TrackRow) Track() model.Track {
	return tr.track
}

// IsActive reports whether the row is highlighted
func (tr *TrackRow) IsActive() bool {
	return tr.active
}

// createUI creates the UI components
func (tr *TrackRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	tr.fileText = canvas.NewText("", theme.Color(theme.ColorNameDisabled))
	tr.fileText.TextSize = theme.CaptionTextSize()

	tr.background = canvas.NewRectangle(color.Transparent)
}

func (tr *TrackRow) updateFromTrack() {
	tr.titleLabel.SetText(cleanText(tr.track.DisplayTitle()))
	tr.fileText.Text = tr.track.File

	if tr.active {
		tr.background.FillColor = theme.Color(theme.ColorNameSuccess)
	} else {
		tr.background.FillColor = color.Transparent
	}
}

// cleanText keeps titles on a single line
func cleanText(s string) string {
	s = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(s)
	return strings.TrimSpace(s)
}

// CreateRenderer creates the renderer for the track row
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(
		tr.titleLabel,
		container.NewPadded(tr.fileText),
	)
	return &trackRowRenderer{
		row:     tr,
		content: content,
		objects: []fyne.CanvasObject{tr.background, content},
	}
}

type trackRowRenderer struct {
	row     *TrackRow
	content *fyne.Container
	objects []fyne.CanvasObject
}

// Layout stretches the highlight behind the content
func (r *trackRowRenderer) Layout(size fyne.Size) {
	r.row.background.Resize(size)
	r.row.background.Move(fyne.NewPos(0, 0))
	r.content.Resize(size)
	r.content.Move(fyne.NewPos(0, 0))
}

func (r *trackRowRenderer) MinSize() fyne.Size {
	size := r.content.MinSize()
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	return size
}

func (r *trackRowRenderer) Refresh() {
	r.row.fileText.Color = theme.Color(theme.ColorNameDisabled)
	r.row.fileText.TextSize = theme.CaptionTextSize()
	r.row.background.Refresh()
	r.row.fileText.Refresh()
	r.content.Refresh()
}

func (r *trackRowRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *trackRowRenderer) Destroy() {}
