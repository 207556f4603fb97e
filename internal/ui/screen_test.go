package ui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/album-player/internal/config"
	"github.com/ytget/album-player/internal/model"
)

type fakeSource struct {
	album *model.Album
	err   error
	calls int
	mu    sync.Mutex
}

func (f *fakeSource) FetchAlbum(ctx context.Context) (*model.Album, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.album, f.err
}

func (f *fakeSource) TrackURLs(album *model.Album) []string {
	urls := make([]string, 0, album.TrackCount())
	for _, t := range album.Tracks {
		urls = append(urls, "https://example.com/"+t.File)
	}
	return urls
}

type fakePlayer struct {
	urls       []string
	selected   []int
	toggles    int
	nexts      int
	previouses int
	scrubs     []string
	releases   int
	onUpdate   func(model.PlaybackState)
	onError    func(error)
}

func (p *fakePlayer) SetTracks(urls []string) { p.urls = urls }

func (p *fakePlayer) Select(index int) error {
	p.selected = append(p.selected, index)
	return nil
}

func (p *fakePlayer) TogglePlayPause() error {
	p.toggles++
	return nil
}

func (p *fakePlayer) Next() error {
	p.nexts++
	return nil
}

func (p *fakePlayer) Previous() error {
	p.previouses++
	return nil
}

func (p *fakePlayer) BeginScrub()      { p.scrubs = append(p.scrubs, "begin") }
func (p *fakePlayer) Scrub(float64)    { p.scrubs = append(p.scrubs, "move") }
func (p *fakePlayer) EndScrub(float64) { p.scrubs = append(p.scrubs, "end") }
func (p *fakePlayer) Release()         { p.releases++ }

func (p *fakePlayer) SetUpdateCallback(callback func(model.PlaybackState)) {
	p.onUpdate = callback
}

func (p *fakePlayer) SetErrorCallback(callback func(error)) {
	p.onError = callback
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type screenHarness struct {
	screen   *Screen
	source   *fakeSource
	player   *fakePlayer
	notifier *recordingNotifier
	settings *config.Settings
	reports  []error
}

func newScreenHarness(t *testing.T, source *fakeSource) *screenHarness {
	t.Helper()
	app := test.NewApp()
	window := app.NewWindow("")
	t.Cleanup(window.Close)

	h := &screenHarness{
		source:   source,
		player:   &fakePlayer{},
		notifier: &recordingNotifier{},
		settings: config.NewSettings(app),
	}
	localization := NewLocalization()
	localization.SetLanguage("en")

	h.screen = NewScreen(window, app, Deps{
		Album:        source,
		Player:       h.player,
		Settings:     h.settings,
		Localization: localization,
		Notifier:     h.notifier,
		Report: func(err error, _ map[string]string) {
			h.reports = append(h.reports, err)
		},
	})
	return h
}

func testAlbum() *model.Album {
	return &model.Album{
		Title:     "Evening Walks",
		Subtitle:  "Live",
		Artist:    "Quartet",
		Published: "2019",
		Genre:     "Jazz",
		Tracks: []model.Track{
			{Title: "One", File: "1.mp3"},
			{Title: "Two", File: "2.mp3"},
			{Title: "Three", File: "3.mp3"},
		},
	}
}

func TestScreen_LoadFailureShowsOneNotice(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{err: errors.New("album load failed: 404")})

	h.screen.handleLoadResult(nil, h.source.err)

	assert.Equal(t, []string{"Data load failed"}, h.notifier.all())
	assert.Len(t, h.reports, 1)
	assert.Empty(t, h.screen.titleLabel.Text)
	assert.Empty(t, h.screen.subtitleLabel.Text)
	assert.Empty(t, h.screen.artistLabel.Text)
	assert.Empty(t, h.screen.publishedLabel.Text)
	assert.Empty(t, h.screen.genreLabel.Text)
	assert.Equal(t, 0, h.screen.trackList.Length())
	assert.Nil(t, h.player.urls)
}

func TestScreen_StartLoadsInBackground(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{err: errors.New("offline")})

	h.screen.Start()
	h.screen.Start()

	assert.Eventually(t, func() bool {
		return len(h.notifier.all()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	h.source.mu.Lock()
	assert.Equal(t, 1, h.source.calls, "album is fetched once")
	h.source.mu.Unlock()
}

func TestScreen_ApplyAlbum(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{})

	h.screen.handleLoadResult(testAlbum(), nil)

	assert.Equal(t, "Evening Walks", h.screen.titleLabel.Text)
	assert.Equal(t, "Live", h.screen.subtitleLabel.Text)
	assert.Equal(t, "Quartet", h.screen.artistLabel.Text)
	assert.Equal(t, "2019", h.screen.publishedLabel.Text)
	assert.Equal(t, MiddleDotSeparator+"Jazz", h.screen.genreLabel.Text)
	assert.Equal(t, "3 tracks", h.screen.countLabel.Text)
	assert.Equal(t, 3, h.screen.trackList.Length())
	assert.Equal(t, []string{
		"https://example.com/1.mp3",
		"https://example.com/2.mp3",
		"https://example.com/3.mp3",
	}, h.player.urls)
	assert.Empty(t, h.notifier.all())
}

func TestScreen_PlaybackUpdateRendersState(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{})
	h.screen.handleLoadResult(testAlbum(), nil)
	require.NotNil(t, h.player.onUpdate)

	h.player.onUpdate(model.PlaybackState{
		Index:    1,
		State:    model.PlayerStatePlaying,
		Position: 30 * time.Second,
		Duration: 2 * time.Minute,
	})

	assert.Equal(t, IconPause, h.screen.playPauseBtn.Text)
	assert.Equal(t, 1, h.screen.trackList.Active())
	assert.Equal(t, 25.0, h.screen.seekBar.Value)
	assert.Equal(t, "00:30", h.screen.elapsedLabel.Text)
	assert.Equal(t, "02:00", h.screen.totalLabel.Text)

	h.player.onUpdate(model.PlaybackState{
		Index:    1,
		State:    model.PlayerStatePaused,
		Position: 30 * time.Second,
		Duration: 2 * time.Minute,
	})
	assert.Equal(t, IconPlay, h.screen.playPauseBtn.Text)
}

func TestScreen_ScrubbingKeepsSeekBar(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{})
	h.screen.handleLoadResult(testAlbum(), nil)

	h.screen.seekBar.SetProgress(40)
	h.player.onUpdate(model.PlaybackState{
		Index:     0,
		State:     model.PlayerStatePlaying,
		Scrubbing: true,
		Position:  90 * time.Second,
		Duration:  100 * time.Second,
	})

	assert.Equal(t, 40.0, h.screen.seekBar.Value)
	assert.Equal(t, "01:30", h.screen.elapsedLabel.Text, "elapsed label previews the dragged position")
}

func TestScreen_ControlsForwardToPlayer(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{})
	h.screen.handleLoadResult(testAlbum(), nil)

	h.screen.trackList.list.Select(2)
	test.Tap(h.screen.playPauseBtn)
	test.Tap(h.screen.nextBtn)
	test.Tap(h.screen.previousBtn)
	h.screen.seekBar.SetValue(60)

	assert.Equal(t, []int{2}, h.player.selected)
	assert.Equal(t, 1, h.player.toggles)
	assert.Equal(t, 1, h.player.nexts)
	assert.Equal(t, 1, h.player.previouses)
	assert.Equal(t, []string{"begin", "end"}, h.player.scrubs)
}

func TestScreen_NextPreviousIgnoredWithoutTracks(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{})

	test.Tap(h.screen.nextBtn)
	test.Tap(h.screen.previousBtn)

	assert.Zero(t, h.player.nexts)
	assert.Zero(t, h.player.previouses)
}

func TestScreen_HeaderGestures(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{})
	h.screen.handleLoadResult(testAlbum(), nil)

	h.screen.onGesture(GestureSwipeLeft)
	h.screen.onGesture(GestureSwipeRight)
	h.screen.onGesture(GestureTap)

	assert.Equal(t, 1, h.player.nexts)
	assert.Equal(t, 1, h.player.previouses)
	assert.Equal(t, 1, h.player.toggles)
}

func TestScreen_PlaybackErrorNotifies(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{})
	require.NotNil(t, h.player.onError)

	failure := errors.New("decode failed")
	h.player.onError(failure)

	assert.Equal(t, []string{"Playback failed"}, h.notifier.all())
	require.Len(t, h.reports, 1)
	assert.ErrorIs(t, h.reports[0], failure)
}

func TestScreen_CloseReleasesPlayer(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{})

	h.screen.Close()
	h.screen.Close()
	assert.Equal(t, 1, h.player.releases)
	assert.Error(t, h.screen.ctx.Err(), "pending fetch is cancelled")

	// A fetch finishing after close is ignored
	h.screen.handleLoadResult(nil, errors.New("late"))
	assert.Empty(t, h.notifier.all())

	h.screen.Start()
	h.source.mu.Lock()
	assert.Zero(t, h.source.calls)
	h.source.mu.Unlock()
}

func TestScreen_LanguageChange(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{})
	h.screen.handleLoadResult(testAlbum(), nil)

	h.screen.onLanguageChange("ru")

	assert.Equal(t, "ru", h.settings.GetLanguage())
	assert.Equal(t, "Плеер альбома", h.screen.window.Title())
	assert.Equal(t, "Треков: 3", h.screen.countLabel.Text)

	h.screen.handleLoadResult(nil, errors.New("again"))
	assert.Equal(t, []string{"Ошибка загрузки данных"}, h.notifier.all())
}

func TestScreen_SettingsSavedNotice(t *testing.T) {
	h := newScreenHarness(t, &fakeSource{})

	h.screen.onSettingsSaved(SettingsChange{})
	h.screen.onSettingsSaved(SettingsChange{SourceChanged: true})

	assert.Equal(t, []string{
		"Settings saved successfully!",
		"Album source changes apply after restart",
	}, h.notifier.all())
}

func TestNotificationPanel(t *testing.T) {
	test.NewApp()
	p := NewNotificationPanel()
	assert.Empty(t, p.Message())

	p.ShowProgress("Loading album...")
	assert.True(t, p.Spinning())
	assert.Equal(t, "Loading album...", p.Message())

	p.hideAfter = 10 * time.Millisecond
	p.Notify("first")
	assert.False(t, p.Spinning())
	assert.Equal(t, "first", p.Message())

	assert.Eventually(t, func() bool { return p.Message() == "" }, 2*time.Second, 5*time.Millisecond)
}

func TestNotificationPanel_NewerMessageSurvivesOldTimer(t *testing.T) {
	test.NewApp()
	p := NewNotificationPanel()

	gen := p.show("old", false)
	p.show("new", false)
	p.hideIf(gen)

	assert.Equal(t, "new", p.Message())
}
