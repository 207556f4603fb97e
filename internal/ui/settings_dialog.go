package ui

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/album-player/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 360
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(SettingsChange)

	albumURLEntry  *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
	languageCodes  map[string]string // display name -> code
}

// SettingsChange tells the caller which settings differ after a save
type SettingsChange struct {
	SourceChanged   bool
	LanguageChanged bool
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(SettingsChange)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.albumURLEntry = widget.NewEntry()
	sd.albumURLEntry.SetPlaceHolder("https://")

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinRequestTimeout) + "-" + strconv.Itoa(config.MaxRequestTimeout))
	sd.timeoutEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
			return errors.New(t(KeyInvalidTimeout))
		}
		return nil
	}

	sd.languageCodes = make(map[string]string)
	var names []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		names = append(names, name)
	}
	sort.Strings(names)
	sd.languageSelect = widget.NewSelect(names, nil)
	sd.languageSelect.PlaceHolder = t(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(t(KeyAlbumSource)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyAlbumURL)+":"),
		sd.albumURLEntry,

		widget.NewLabel(t(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.albumURLEntry.SetText(sd.settings.GetAlbumURL())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetRequestTimeout()))

	current := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(name)
			break
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	change := sd.apply()

	log.WithFields(log.Fields{
		"module":           "ui",
		"source_changed":   change.SourceChanged,
		"language_changed": change.LanguageChanged,
	}).Info("settings saved")

	if sd.onSaved != nil {
		sd.onSaved(change)
	}
}

// apply writes the form into settings
func (sd *SettingsDialog) apply() SettingsChange {
	var change SettingsChange

	oldURL := sd.settings.GetAlbumURL()
	oldTimeout := sd.settings.GetRequestTimeout()
	oldLanguage := sd.settings.GetLanguage()

	if url := strings.TrimSpace(sd.albumURLEntry.Text); url != "" {
		sd.settings.SetAlbumURL(url)
	}

	if timeoutStr := strings.TrimSpace(sd.timeoutEntry.Text); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil {
			sd.settings.SetRequestTimeout(timeout)
		}
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	change.SourceChanged = oldURL != sd.settings.GetAlbumURL() || oldTimeout != sd.settings.GetRequestTimeout()
	change.LanguageChanged = oldLanguage != sd.settings.GetLanguage()
	return change
}
