package model

// Package model defines domain data structures used across the app: the album
// document fetched from the remote source, its tracks, and the transient
// playback state owned by the player controller.
