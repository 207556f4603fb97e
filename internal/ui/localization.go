package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyRestartRequired  = "restart_required"
	KeyAlbumSource      = "album_source"
	KeyAlbumURL         = "album_url"
	KeyRequestTimeout   = "request_timeout"
	KeyInterface        = "interface"
	KeyInvalidTimeout   = "invalid_timeout"
	KeyLoading          = "loading"
	KeyLoadFailed       = "load_failed"
	KeyPlaybackFailed   = "playback_failed"
	KeyNoTracks         = "no_tracks"
	KeyTrackCountFormat = "track_count_format"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" picks the OS locale when
// it is translated and English otherwise.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
		return
	}
	l.currentLanguage = "en"
}

// systemLanguage returns the two-letter code of the OS locale
func systemLanguage() string {
	locale := lang.SystemLocale().LanguageString()
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return strings.ToLower(locale)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Album Player",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyRestartRequired:  "Album source changes apply after restart",
		KeyAlbumSource:      "Album Source",
		KeyAlbumURL:         "Album URL",
		KeyRequestTimeout:   "Request Timeout (seconds)",
		KeyInterface:        "Interface",
		KeyInvalidTimeout:   "Timeout must be a number of seconds",
		KeyLoading:          "Loading album...",
		KeyLoadFailed:       "Data load failed",
		KeyPlaybackFailed:   "Playback failed",
		KeyNoTracks:         "No tracks",
		KeyTrackCountFormat: "%d tracks",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Плеер альбома",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyRestartRequired:  "Изменения источника альбома вступят в силу после перезапуска",
		KeyAlbumSource:      "Источник альбома",
		KeyAlbumURL:         "URL альбома",
		KeyRequestTimeout:   "Тайм-аут запроса (секунды)",
		KeyInterface:        "Интерфейс",
		KeyInvalidTimeout:   "Тайм-аут должен быть числом секунд",
		KeyLoading:          "Загрузка альбома...",
		KeyLoadFailed:       "Ошибка загрузки данных",
		KeyPlaybackFailed:   "Ошибка воспроизведения",
		KeyNoTracks:         "Нет треков",
		KeyTrackCountFormat: "Треков: %d",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Reprodutor de Álbum",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyRestartRequired:  "Alterações na fonte do álbum valem após reiniciar",
		KeyAlbumSource:      "Fonte do Álbum",
		KeyAlbumURL:         "URL do Álbum",
		KeyRequestTimeout:   "Tempo Limite (segundos)",
		KeyInterface:        "Interface",
		KeyInvalidTimeout:   "O tempo limite deve ser um número de segundos",
		KeyLoading:          "Carregando álbum...",
		KeyLoadFailed:       "Falha ao carregar dados",
		KeyPlaybackFailed:   "Falha na reprodução",
		KeyNoTracks:         "Sem faixas",
		KeyTrackCountFormat: "%d faixas",
	}
}
