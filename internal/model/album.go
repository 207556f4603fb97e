package model

import (
	"path"
	"strings"
)

// Album is the document served by the remote album source.
type Album struct {
	Title     string  `json:"title"`
	Subtitle  string  `json:"subtitle"`
	Artist    string  `json:"artist"`
	Published string  `json:"published"` // free-text date as published by the source
	Genre     string  `json:"genre"`
	Tracks    []Track `json:"tracks"`
}

// Track is a single playable entry of an album.
type Track struct {
	Title string `json:"title"`
	File  string `json:"file"` // path relative to the album base URL
}

// TrackCount returns the number of tracks in the album
func (a *Album) TrackCount() int {
	if a == nil {
		return 0
	}
	return len(a.Tracks)
}

// Track returns the track at index i
func (a *Album) Track(i int) (Track, bool) {
	if i < 0 || i >= a.TrackCount() {
		return Track{}, false
	}
	return a.Tracks[i], true
}

// DisplayTitle returns the title, or the file name without extension when the
// title is blank
func (t Track) DisplayTitle() string {
	if title := strings.TrimSpace(t.Title); title != "" {
		return title
	}

	name := path.Base(strings.ReplaceAll(t.File, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}
