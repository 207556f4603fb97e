package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconPause    = "⏸"
	IconPrevious = "⏮"
	IconNext     = "⏭"
	IconError    = "❌"
	IconMusic    = "🎵"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	ZeroTime           = "00:00"
)

// Layout sizing (TrackRow / lists)
const (
	RowMinWidth  float32 = 280
	RowMinHeight float32 = 48

	TimeLabelWidth float32 = 64

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonWidth  float32 = 64
	MobileButtonHeight float32 = 52
)

// Notification behavior
const (
	NotificationAutoHide = 5 * time.Second
)

// Window
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 680
)
