package main

import (
	"fmt"
	"net/http"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	nested "github.com/antonfisher/nested-logrus-formatter"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/album-player/internal/album"
	"github.com/ytget/album-player/internal/audio"
	"github.com/ytget/album-player/internal/config"
	"github.com/ytget/album-player/internal/player"
	"github.com/ytget/album-player/internal/reporting"
	"github.com/ytget/album-player/internal/ui"
)

// Set during build via -ldflags "-X main.version=X.Y.Z -X main.sentryDSN=..."
var (
	version   = "dev"
	sentryDSN = ""
)

const (
	AppID   = "com.ytget.album-player"
	AppName = "Album Player"
)

func main() {
	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		FieldsOrder:     []string{"module", "token"},
		TimestampFormat: "15:04:05.000",
	})
	log.SetLevel(log.InfoLevel)
	if version == "dev" {
		log.SetLevel(log.DebugLevel)
	}

	logger := log.WithField("module", "main")
	logger.Infof("%s v%s starting", AppName, version)

	if err := reporting.Init(sentryDSN, version); err != nil {
		logger.WithError(err).Warn("sentry init failed, error reporting disabled")
	}
	defer reporting.Flush()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPlayerTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)

	httpClient := &http.Client{Timeout: settings.RequestTimeout()}
	client := album.NewClient(settings.GetAlbumURL(),
		album.WithHTTPClient(httpClient),
		album.WithTimeout(settings.RequestTimeout()),
	)

	engine := audio.NewEngine(client, fyne.Do)
	controller := player.NewController(engine, player.NewDispatchScheduler(fyne.Do),
		player.WithPollInterval(settings.PollInterval()),
	)
	engine.SetEventHandler(controller.HandleEvent)

	screen := ui.NewScreen(myWindow, myApp, ui.Deps{
		Album:    client,
		Player:   controller,
		Settings: settings,
	})
	screen.Start()

	myWindow.ShowAndRun()
	screen.Close()
	logger.Info("stopped")
}
