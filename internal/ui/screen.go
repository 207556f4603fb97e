package ui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/album-player/internal/config"
	"github.com/ytget/album-player/internal/model"
	"github.com/ytget/album-player/internal/reporting"
)

// AlbumSource loads the album document and resolves track stream URLs
type AlbumSource interface {
	FetchAlbum(ctx context.Context) (*model.Album, error)
	TrackURLs(album *model.Album) []string
}

// Player is the playback surface driven by the screen
type Player interface {
	SetTracks(urls []string)
	Select(index int) error
	TogglePlayPause() error
	Next() error
	Previous() error
	BeginScrub()
	Scrub(percent float64)
	EndScrub(percent float64)
	Release()
	SetUpdateCallback(callback func(model.PlaybackState))
	SetErrorCallback(callback func(error))
}

// Notifier shows a transient message to the user
type Notifier interface {
	Notify(message string)
}

// ErrorReporter forwards unexpected errors
type ErrorReporter func(err error, tags map[string]string)

// Deps are the collaborators of a Screen. Localization, Notifier and Report
// fall back to defaults when nil.
type Deps struct {
	Album        AlbumSource
	Player       Player
	Settings     *config.Settings
	Localization *Localization
	Notifier     Notifier
	Report       ErrorReporter
}

// Screen is the single player screen: album header, track list, transport
// buttons and seek bar
type Screen struct {
	window       fyne.Window
	app          fyne.App
	album        AlbumSource
	player       Player
	settings     *config.Settings
	localization *Localization
	notifier     Notifier
	report       ErrorReporter
	mobile       *MobileUI
	logger       *log.Entry

	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	closed  bool

	loaded *model.Album

	// Album header
	titleLabel     *widget.Label
	subtitleLabel  *widget.Label
	artistLabel    *widget.Label
	publishedLabel *widget.Label
	genreLabel     *widget.Label
	countLabel     *widget.Label

	trackList *TrackList

	// Transport
	previousBtn  *widget.Button
	playPauseBtn *widget.Button
	nextBtn      *widget.Button
	seekBar      *SeekBar
	elapsedLabel *widget.Label
	totalLabel   *widget.Label

	// Notification panel
	notifications *NotificationPanel
}

// NewScreen builds the screen into window and wires it to the player
func NewScreen(window fyne.Window, app fyne.App, deps Deps) *Screen {
	localization := deps.Localization
	if localization == nil {
		localization = NewLocalization()
		if deps.Settings != nil {
			localization.SetLanguage(deps.Settings.GetLanguage())
		}
	}
	report := deps.Report
	if report == nil {
		report = reporting.ReportError
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Screen{
		window:       window,
		app:          app,
		album:        deps.Album,
		player:       deps.Player,
		settings:     deps.Settings,
		localization: localization,
		report:       report,
		mobile:       NewMobileUI(),
		ctx:          ctx,
		cancel:       cancel,
		logger: log.WithFields(log.Fields{
			"module": "ui",
		}),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	s.setupUI()
	if deps.Notifier != nil {
		s.notifier = deps.Notifier
	} else {
		s.notifier = s.notifications
	}

	s.player.SetUpdateCallback(s.onPlaybackUpdate)
	s.player.SetErrorCallback(s.onPlaybackError)

	window.SetCloseIntercept(func() {
		s.Close()
		window.Close()
	})
	return s
}

// setupUI creates and arranges all UI components
func (s *Screen) setupUI() {
	s.createMenu()

	s.titleLabel = widget.NewLabel("")
	s.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	s.titleLabel.Truncation = fyne.TextTruncateEllipsis
	s.subtitleLabel = widget.NewLabel("")
	s.subtitleLabel.TextStyle = fyne.TextStyle{Italic: true}
	s.artistLabel = widget.NewLabel("")
	s.publishedLabel = widget.NewLabel("")
	s.genreLabel = widget.NewLabel("")
	s.countLabel = widget.NewLabel("")

	settingsBtn := widget.NewButton(IconSettings, s.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, s.titleLabel),
		s.subtitleLabel,
		s.artistLabel,
		container.NewHBox(s.publishedLabel, s.genreLabel),
		s.countLabel,
	)
	swipeHeader := NewSwipeArea(header, s.onGesture)

	s.notifications = NewNotificationPanel()

	s.trackList = NewTrackList(s.onTrackTapped)

	s.previousBtn = s.mobile.CreateTransportButton(IconPrevious, s.onPrevious)
	s.playPauseBtn = s.mobile.CreateTransportButton(IconPlay, s.onPlayPause)
	s.playPauseBtn.Importance = widget.HighImportance
	s.nextBtn = s.mobile.CreateTransportButton(IconNext, s.onNext)
	transport := s.mobile.CreateTransportRow(s.previousBtn, s.playPauseBtn, s.nextBtn)

	s.seekBar = NewSeekBar()
	s.seekBar.OnScrubStart = s.player.BeginScrub
	s.seekBar.OnScrub = s.player.Scrub
	s.seekBar.OnScrubEnd = s.player.EndScrub

	s.elapsedLabel = widget.NewLabel(ZeroTime)
	s.elapsedLabel.TextStyle = fyne.TextStyle{Monospace: true}
	s.totalLabel = widget.NewLabel(ZeroTime)
	s.totalLabel.TextStyle = fyne.TextStyle{Monospace: true}
	s.totalLabel.Alignment = fyne.TextAlignTrailing
	seekRow := container.NewBorder(nil, nil,
		minSized(s.elapsedLabel, TimeLabelWidth, 0),
		minSized(s.totalLabel, TimeLabelWidth, 0),
		s.seekBar,
	)

	top := container.NewVBox(swipeHeader, s.notifications.Container(), widget.NewSeparator())
	bottom := container.NewVBox(widget.NewSeparator(), seekRow, transport)

	s.window.SetContent(container.NewBorder(top, bottom, nil, nil, s.trackList.Widget()))
	s.refreshUITexts()
}

// createMenu creates the application menu
func (s *Screen) createMenu() {
	settingsItem := fyne.NewMenuItem(s.localization.GetText(KeySettings), s.onShowSettings)

	languageMenu := fyne.NewMenu(s.localization.GetText(KeyLanguage))
	for code, name := range s.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			s.onLanguageChange(langCode)
		})
		langItem.Checked = s.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	s.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(s.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// Start loads the album in the background. The result is applied on the UI goroutine.
func (s *Screen) Start() {
	if s.started || s.closed {
		return
	}
	s.started = true

	s.notifications.ShowProgress(s.localization.GetText(KeyLoading))
	ctx := s.ctx
	go func() {
		album, err := s.album.FetchAlbum(ctx)
		if ctx.Err() != nil {
			return
		}
		fyne.Do(func() {
			s.handleLoadResult(album, err)
		})
	}()
}

// handleLoadResult applies a finished album fetch
func (s *Screen) handleLoadResult(album *model.Album, err error) {
	if s.closed {
		return
	}
	if s.notifications.Spinning() {
		s.notifications.Hide()
	}
	if err != nil {
		s.onLoadFailed(err)
		return
	}
	s.applyAlbum(album)
}

// applyAlbum fills the header and queues the tracks
func (s *Screen) applyAlbum(album *model.Album) {
	s.loaded = album

	s.titleLabel.SetText(album.Title)
	s.subtitleLabel.SetText(album.Subtitle)
	s.artistLabel.SetText(album.Artist)
	s.publishedLabel.SetText(album.Published)
	if album.Genre != "" && album.Published != "" {
		s.genreLabel.SetText(MiddleDotSeparator + album.Genre)
	} else {
		s.genreLabel.SetText(album.Genre)
	}
	s.updateCountLabel()

	s.trackList.SetTracks(album.Tracks)
	s.player.SetTracks(s.album.TrackURLs(album))

	s.logger.WithFields(log.Fields{
		"title":  album.Title,
		"tracks": album.TrackCount(),
	}).Info("album loaded")
}

// onLoadFailed shows one notice and leaves the header empty
func (s *Screen) onLoadFailed(err error) {
	s.logger.WithError(err).Error("album load failed")
	s.report(err, map[string]string{"module": "ui", "stage": "album"})
	s.notifier.Notify(s.localization.GetText(KeyLoadFailed))
}

// onPlaybackUpdate renders controller state
func (s *Screen) onPlaybackUpdate(state model.PlaybackState) {
	if state.State == model.PlayerStatePlaying {
		s.playPauseBtn.SetText(IconPause)
	} else {
		s.playPauseBtn.SetText(IconPlay)
	}

	s.trackList.SetActive(state.Index)

	if !state.Scrubbing {
		s.seekBar.SetProgress(state.Progress())
	}
	s.elapsedLabel.SetText(state.Elapsed())
	s.totalLabel.SetText(state.Total())
}

// onPlaybackError tells the user the track could not be played
func (s *Screen) onPlaybackError(err error) {
	s.report(err, map[string]string{"module": "ui", "stage": "playback"})
	s.notifier.Notify(s.localization.GetText(KeyPlaybackFailed))
}

func (s *Screen) onTrackTapped(index int) {
	if err := s.player.Select(index); err != nil {
		s.logger.WithError(err).Warnf("select track %d", index)
	}
}

func (s *Screen) onPlayPause() {
	if err := s.player.TogglePlayPause(); err != nil {
		s.logger.WithError(err).Warn("toggle play/pause")
	}
}

func (s *Screen) onNext() {
	if s.trackList.Length() == 0 {
		return
	}
	if err := s.player.Next(); err != nil {
		s.logger.WithError(err).Warn("next track")
	}
}

func (s *Screen) onPrevious() {
	if s.trackList.Length() == 0 {
		return
	}
	if err := s.player.Previous(); err != nil {
		s.logger.WithError(err).Warn("previous track")
	}
}

// onGesture maps header taps to play/pause and swipes to track changes
func (s *Screen) onGesture(gesture GestureType) {
	switch gesture {
	case GestureTap:
		s.onPlayPause()
	case GestureSwipeLeft:
		s.onNext()
	case GestureSwipeRight:
		s.onPrevious()
	}
}

// onShowSettings shows the settings dialog
func (s *Screen) onShowSettings() {
	if s.settings == nil {
		return
	}
	NewSettingsDialog(s.settings, s.localization, s.window, s.onSettingsSaved).Show()
}

func (s *Screen) onSettingsSaved(change SettingsChange) {
	if change.LanguageChanged {
		s.localization.SetLanguage(s.settings.GetLanguage())
		s.refreshUITexts()
		s.createMenu()
	}
	if change.SourceChanged {
		s.notifier.Notify(s.localization.GetText(KeyRestartRequired))
		return
	}
	s.notifier.Notify(s.localization.GetText(KeySettingsSaved))
}

// onLanguageChange handles language change from the menu
func (s *Screen) onLanguageChange(langCode string) {
	s.localization.SetLanguage(langCode)
	if s.settings != nil {
		s.settings.SetLanguage(langCode)
	}
	s.refreshUITexts()
	s.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (s *Screen) refreshUITexts() {
	s.window.SetTitle(s.localization.GetText(KeyAppTitle))
	s.updateCountLabel()
}

func (s *Screen) updateCountLabel() {
	if s.loaded == nil {
		s.countLabel.SetText("")
		return
	}
	if s.loaded.TrackCount() == 0 {
		s.countLabel.SetText(s.localization.GetText(KeyNoTracks))
		return
	}
	s.countLabel.SetText(fmt.Sprintf(s.localization.GetText(KeyTrackCountFormat), s.loaded.TrackCount()))
}

// Close cancels a pending album fetch and releases the player
func (s *Screen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	s.player.Release()
	s.notifications.Hide()
	s.logger.Info("screen closed")
}

// NotificationPanel is the inline message strip under the album header
type NotificationPanel struct {
	container *fyne.Container
	label     *widget.Label
	spinner   *widget.ProgressBarInfinite

	mu        sync.Mutex
	hideAfter time.Duration
	hideGen   uint64
	spinning  bool
}

// NewNotificationPanel creates a hidden panel
func NewNotificationPanel() *NotificationPanel {
	p := &NotificationPanel{
		label:     widget.NewLabel(""),
		spinner:   widget.NewProgressBarInfinite(),
		hideAfter: NotificationAutoHide,
	}
	p.label.Alignment = fyne.TextAlignLeading
	p.label.Wrapping = fyne.TextWrapWord
	p.spinner.Hide()
	p.container = container.NewBorder(nil, nil, p.spinner, nil, container.NewPadded(p.label))
	p.container.Hide()
	return p
}

// Container returns the panel's canvas object
func (p *NotificationPanel) Container() *fyne.Container {
	return p.container
}

// Notify shows message and hides it after the auto-hide delay
func (p *NotificationPanel) Notify(message string) {
	gen := p.show(message, false)
	time.AfterFunc(p.hideAfter, func() {
		fyne.Do(func() {
			p.hideIf(gen)
		})
	})
}

// ShowProgress shows message with a spinner until Hide
func (p *NotificationPanel) ShowProgress(message string) {
	p.show(message, true)
}

// Message returns the visible message, empty when hidden
func (p *NotificationPanel) Message() string {
	if !p.container.Visible() {
		return ""
	}
	return p.label.Text
}

// Spinning reports whether a progress message is shown
func (p *NotificationPanel) Spinning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spinning
}

// Hide hides the panel
func (p *NotificationPanel) Hide() {
	p.mu.Lock()
	p.hideGen++
	p.spinning = false
	p.mu.Unlock()

	p.spinner.Hide()
	p.container.Hide()
}

func (p *NotificationPanel) show(message string, spinning bool) uint64 {
	p.mu.Lock()
	p.hideGen++
	gen := p.hideGen
	p.spinning = spinning
	p.mu.Unlock()

	p.label.SetText(message)
	if spinning {
		p.spinner.Show()
	} else {
		p.spinner.Hide()
	}
	p.container.Show()
	p.container.Refresh()
	return gen
}

// hideIf hides the panel unless a newer message replaced message gen
func (p *NotificationPanel) hideIf(gen uint64) {
	p.mu.Lock()
	current := p.hideGen
	p.mu.Unlock()
	if gen == current {
		p.Hide()
	}
}
