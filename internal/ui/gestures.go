package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents the gestures the header reacts to
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold float32 = 50.0
	DefaultTapDuration            = 500 * time.Millisecond
)

// GestureHandler classifies a touch down/up pair
type GestureHandler struct {
	onGesture func(GestureType)
	now       func() time.Time

	touchStartTime time.Time
	touchStartPos  fyne.Position

	swipeThreshold float32
	tapDuration    time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:      onGesture,
		now:            time.Now,
		swipeThreshold: DefaultSwipeThreshold,
		tapDuration:    DefaultTapDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection. Held presses and
// mostly vertical moves are left to the content underneath.
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	duration := gh.now().Sub(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	moved := dx*dx+dy*dy >= gh.swipeThreshold*gh.swipeThreshold

	switch {
	case moved:
		gh.detectSwipeDirection(dx, dy)
	case duration < gh.tapDuration:
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection reports horizontal swipes
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx <= absDy {
		return
	}
	if dx > 0 {
		gh.triggerGesture(GestureSwipeRight)
	} else {
		gh.triggerGesture(GestureSwipeLeft)
	}
}

func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// SwipeArea wraps content and reports touch gestures on mobile devices
type SwipeArea struct {
	widget.BaseWidget
	content        fyne.CanvasObject
	gestureHandler *GestureHandler
}

var _ mobile.Touchable = (*SwipeArea)(nil)

// NewSwipeArea creates a swipe area around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	sa := &SwipeArea{
		content:        content,
		gestureHandler: NewGestureHandler(onGesture),
	}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer renders the wrapped content
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// TouchDown handles touch down events
func (sa *SwipeArea) TouchDown(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchDown(event)
}

// TouchUp handles touch up events
func (sa *SwipeArea) TouchUp(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (sa *SwipeArea) TouchCancel(event *mobile.TouchEvent) {
	sa.gestureHandler.TouchCancel(event)
}
