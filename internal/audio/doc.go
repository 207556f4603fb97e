// Package audio is the beep-backed decoder used by the player controller.
//
// The Engine fetches a whole track through the album client, decodes it as
// MP3 and plays it on the shared speaker. Decoder signals are handed to a
// dispatch function so they reach the controller on the UI goroutine.
package audio
