package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"github.com/samber/lo"

	"github.com/ytget/album-player/internal/album"
)

// Settings keys for Fyne preferences
const (
	KeyAlbumURL       = "album_base_url"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyPollInterval   = "poll_interval_ms"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultRequestTimeout = 15
	DefaultPollInterval   = 1000
	DefaultLanguage       = "system"
)

// Limits
const (
	MinRequestTimeout = 1
	MaxRequestTimeout = 120
	MinPollInterval   = 100
	MaxPollInterval   = 5000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAlbumURL returns the album source base URL
func (s *Settings) GetAlbumURL() string {
	url := s.app.Preferences().String(KeyAlbumURL)
	if url == "" {
		s.SetAlbumURL(album.DefaultBaseURL)
		return album.DefaultBaseURL
	}
	return url
}

// SetAlbumURL sets the album source base URL. An empty value restores the default.
func (s *Settings) SetAlbumURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = album.DefaultBaseURL
	}
	s.app.Preferences().SetString(KeyAlbumURL, album.NormalizeBaseURL(url))
}

// GetRequestTimeout returns the HTTP request timeout in seconds
func (s *Settings) GetRequestTimeout() int {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeout(DefaultRequestTimeout)
		return DefaultRequestTimeout
	}
	return value
}

// SetRequestTimeout sets the HTTP request timeout in seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, lo.Clamp(seconds, MinRequestTimeout, MaxRequestTimeout))
}

// RequestTimeout returns the request timeout as a duration
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeout()) * time.Second
}

// GetPollInterval returns the position poll interval in milliseconds
func (s *Settings) GetPollInterval() int {
	value := s.app.Preferences().Int(KeyPollInterval)
	if value <= 0 {
		s.SetPollInterval(DefaultPollInterval)
		return DefaultPollInterval
	}
	return value
}

// SetPollInterval sets the position poll interval in milliseconds
func (s *Settings) SetPollInterval(ms int) {
	s.app.Preferences().SetInt(KeyPollInterval, lo.Clamp(ms, MinPollInterval, MaxPollInterval))
}

// PollInterval returns the poll interval as a duration
func (s *Settings) PollInterval() time.Duration {
	return time.Duration(s.GetPollInterval()) * time.Millisecond
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
