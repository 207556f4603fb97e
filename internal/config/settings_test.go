package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/album-player/internal/album"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestAlbumURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if url := settings.GetAlbumURL(); url != album.DefaultBaseURL {
		t.Errorf("Expected default album URL %s, got %s", album.DefaultBaseURL, url)
	}

	// Stored default is written back
	if stored := app.Preferences().String(KeyAlbumURL); stored != album.DefaultBaseURL {
		t.Errorf("Expected default to be persisted, got %q", stored)
	}

	// Missing trailing slash is added
	settings.SetAlbumURL("https://example.com/music")
	if url := settings.GetAlbumURL(); url != "https://example.com/music/" {
		t.Errorf("Expected normalized URL, got %s", url)
	}

	// Blank restores default
	settings.SetAlbumURL("   ")
	if url := settings.GetAlbumURL(); url != album.DefaultBaseURL {
		t.Errorf("Expected default after blank value, got %s", url)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if timeout := settings.GetRequestTimeout(); timeout != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %d, got %d", DefaultRequestTimeout, timeout)
	}

	settings.SetRequestTimeout(30)
	if settings.RequestTimeout() != 30*time.Second {
		t.Errorf("Expected 30s, got %s", settings.RequestTimeout())
	}

	// Test boundary values
	settings.SetRequestTimeout(0) // Should be clamped to minimum
	if settings.GetRequestTimeout() != MinRequestTimeout {
		t.Errorf("Timeout should be clamped to minimum %d", MinRequestTimeout)
	}

	settings.SetRequestTimeout(1000) // Should be clamped to maximum
	if settings.GetRequestTimeout() != MaxRequestTimeout {
		t.Errorf("Timeout should be clamped to maximum %d", MaxRequestTimeout)
	}
}

func TestPollInterval(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if interval := settings.GetPollInterval(); interval != DefaultPollInterval {
		t.Errorf("Expected default poll interval %d, got %d", DefaultPollInterval, interval)
	}
	if settings.PollInterval() != time.Second {
		t.Errorf("Expected 1s, got %s", settings.PollInterval())
	}

	settings.SetPollInterval(10)
	if settings.GetPollInterval() != MinPollInterval {
		t.Errorf("Poll interval should be clamped to minimum %d", MinPollInterval)
	}

	settings.SetPollInterval(60000)
	if settings.GetPollInterval() != MaxPollInterval {
		t.Errorf("Poll interval should be clamped to maximum %d", MaxPollInterval)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[lang]; !ok {
			t.Errorf("Missing language option %s", lang)
		}
	}
}
