package ui

import (
	"reflect"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureHandler(t *testing.T) {
	tests := []struct {
		name     string
		from, to fyne.Position
		held     time.Duration
		expected []GestureType
	}{
		{"tap", fyne.NewPos(10, 10), fyne.NewPos(12, 11), 50 * time.Millisecond, []GestureType{GestureTap}},
		{"held press", fyne.NewPos(10, 10), fyne.NewPos(10, 10), time.Second, nil},
		{"swipe left", fyne.NewPos(200, 10), fyne.NewPos(20, 20), 100 * time.Millisecond, []GestureType{GestureSwipeLeft}},
		{"swipe right", fyne.NewPos(20, 10), fyne.NewPos(200, 30), 100 * time.Millisecond, []GestureType{GestureSwipeRight}},
		{"vertical scroll up", fyne.NewPos(20, 200), fyne.NewPos(30, 10), 100 * time.Millisecond, nil},
		{"vertical scroll down", fyne.NewPos(20, 10), fyne.NewPos(30, 200), 100 * time.Millisecond, nil},
		{"slow swipe", fyne.NewPos(200, 10), fyne.NewPos(20, 10), time.Second, []GestureType{GestureSwipeLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []GestureType
			gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })
			now := time.Unix(0, 0)
			gh.now = func() time.Time { return now }

			gh.TouchDown(touchAt(tt.from.X, tt.from.Y))
			now = now.Add(tt.held)
			gh.TouchUp(touchAt(tt.to.X, tt.to.Y))

			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected gesture %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestGestureHandler_CancelledTouch(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	gh.TouchUp(touchAt(0, 0))
	gh.TouchDown(touchAt(0, 0))
	gh.TouchCancel(touchAt(0, 0))
	gh.TouchUp(touchAt(100, 0))

	if len(got) != 0 {
		t.Errorf("Expected no gestures, got %v", got)
	}
}

func TestSwipeArea(t *testing.T) {
	test.NewApp()
	var got []GestureType
	area := NewSwipeArea(widget.NewLabel(""), func(g GestureType) { got = append(got, g) })

	area.TouchDown(touchAt(200, 0))
	area.TouchUp(touchAt(0, 0))

	if len(got) != 1 || got[0] != GestureSwipeLeft {
		t.Errorf("Expected swipe left, got %v", got)
	}
	if test.WidgetRenderer(area) == nil {
		t.Error("SwipeArea should render its content")
	}
}
