package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// MobileUI adapts transport controls to touch devices
type MobileUI struct {
	isMobile func() bool
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{
		isMobile: func() bool { return fyne.CurrentDevice().IsMobile() },
	}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.isMobile()
}

// CreateTransportButton creates a transport button with a touch-sized target on mobile
func (m *MobileUI) CreateTransportButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	btn.Importance = widget.LowImportance
	return btn
}

// CreateTransportRow lays out transport buttons: an even grid on mobile,
// a centered row on desktop
func (m *MobileUI) CreateTransportRow(buttons ...fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() {
		sized := make([]fyne.CanvasObject, 0, len(buttons))
		for _, b := range buttons {
			sized = append(sized, minSized(b, MobileButtonWidth, MobileButtonHeight))
		}
		return container.NewGridWithColumns(len(sized), sized...)
	}

	objects := []fyne.CanvasObject{layout.NewSpacer()}
	for _, b := range buttons {
		objects = append(objects, minSized(b, MinTouchTargetSize, MinTouchTargetSize))
	}
	objects = append(objects, layout.NewSpacer())
	return container.NewHBox(objects...)
}

// minSized stacks obj over a transparent rectangle enforcing a minimum size
func minSized(obj fyne.CanvasObject, w, h float32) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w, h))
	return container.NewStack(spacer, obj)
}
