package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/memodesk/memos-desktop/internal/config"
	"github.com/memodesk/memos-desktop/internal/logger"
	"github.com/memodesk/memos-desktop/internal/platform"
	"github.com/memodesk/memos-desktop/internal/ui"
	"github.com/memodesk/memos-desktop/internal/webview"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.memodesk.memos-desktop"
)

func main() {
	// Development builds log at debug level
	level := "info"
	if version == "dev" {
		level = "debug"
	}

	log := logger.New(platform.LogsDir(), level)
	defer log.Close()

	log.Info().Str("version", version).Msg("memos-desktop starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIcon())

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewAppTheme())

	store := config.NewStore(platform.ConfigDir())

	// Developer tools follow the build flavor
	newView := func(opts webview.Options) (webview.View, error) {
		opts.Debug = version == "dev"
		return webview.New(opts)
	}

	shell := ui.NewShell(myApp, store, newView, log)
	shell.Run()
}
