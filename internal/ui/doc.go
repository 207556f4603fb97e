package ui

// Package ui contains the Fyne user interface of the album player: the album
// header, the track list with its active-row highlight, transport buttons and
// the seek bar. Playback is delegated to player.Controller; every widget and
// controller call happens on the Fyne UI goroutine. All UI strings are
// localized via Localization.
