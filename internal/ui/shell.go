package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/memodesk/memos-desktop/internal/config"
	"github.com/memodesk/memos-desktop/internal/logger"
	"github.com/memodesk/memos-desktop/internal/model"
	"github.com/memodesk/memos-desktop/internal/platform"
	"github.com/memodesk/memos-desktop/internal/webview"
)

// closeAction is the outcome of a content window close request
type closeAction int

const (
	// closeHide keeps the process alive and hides the window to the tray
	closeHide closeAction = iota
	// closeQuit terminates the application
	closeQuit
)

// decideClose maps the stored preference to a close outcome
func decideClose(cfg model.Config) closeAction {
	if cfg.CloseToTray {
		return closeHide
	}
	return closeQuit
}

// Shell coordinates the windows, the tray menu, and the configuration store.
// All state transitions run on the Fyne event loop; callbacks arriving from
// the rendering engine are marshalled onto it with fyne.Do
type Shell struct {
	app     fyne.App
	store   *config.Store
	newView webview.Factory
	loc     *Localization
	log     zerolog.Logger

	screen   model.Screen
	launcher *launcher
	content  webview.View
	settings *settingsWindow
	tray     *trayMenu

	quit func()
}

// NewShell creates the application shell
func NewShell(app fyne.App, store *config.Store, newView webview.Factory, lg *logger.Logger) *Shell {
	loc := NewLocalization()
	loc.SetLanguage(app.Preferences().StringWithFallback(PrefKeyLanguage, DefaultLanguage))

	return &Shell{
		app:     app,
		store:   store,
		newView: newView,
		loc:     loc,
		log:     lg.WithComponent("shell"),
		quit:    app.Quit,
	}
}

// Run builds the tray menu, routes to the initial screen, and enters the
// event loop. It returns when the application quits
func (s *Shell) Run() {
	s.tray = newTrayMenu(s.app, s.loc, trayActions{
		OnActivate:   s.activateFromTray,
		OnToggleTray: s.toggleCloseToTray,
		OnSettings:   s.openSettings,
		OnQuit:       s.quitFromTray,
	})
	s.refreshTray()

	cfg := s.store.Load()
	s.log.Info().Str("screen", model.ResolveScreen(cfg).String()).Msg("starting shell")

	s.route(cfg)
	s.app.Run()
}

// route shows the screen the stored configuration resolves to
func (s *Shell) route(cfg model.Config) {
	switch model.ResolveScreen(cfg) {
	case model.ScreenContent:
		if !s.showContent(cfg.MemosURL, cfg.Window) {
			s.showLauncher()
		}
	default:
		s.showLauncher()
	}
}

// showLauncher creates the connect window on first use and shows it
func (s *Shell) showLauncher() {
	if s.launcher == nil {
		s.launcher = newLauncher(s.app, s.loc, s.submitURL)
		s.launcher.win.SetOnClosed(s.onLauncherClosed)
	}

	s.screen = model.ScreenLauncher
	s.launcher.win.Show()
}

// onLauncherClosed quits unless the close was part of switching to the
// content screen
func (s *Shell) onLauncherClosed() {
	if s.screen == model.ScreenLauncher {
		s.terminate()
	}
}

// submitURL handles the launcher submit. The scheme comes from the selector
// and the host as typed; only surrounding whitespace is removed before the
// two are joined
func (s *Shell) submitURL(scheme, host string) {
	host = strings.TrimSpace(host)
	if host == "" {
		s.launcher.showEmptyHostHint()
		return
	}

	serverURL := scheme + host
	if err := s.store.SetMemosURL(serverURL); err != nil {
		s.log.Error().Err(err).Msg("failed to save server address")
	}
	s.log.Info().Str("url", serverURL).Msg("server address saved")

	if !s.showContent(serverURL, s.store.Load().Window) {
		// Keep the launcher so the user can retry
		return
	}

	if s.launcher != nil {
		s.launcher.win.Close()
		s.launcher = nil
	}
}

// showContent creates the content view or raises the existing one. It
// reports whether a content view is showing
func (s *Shell) showContent(serverURL string, geom *model.Geometry) bool {
	if s.content != nil {
		s.content.RaiseAndFocus()
		return true
	}

	view, err := s.newView(webview.Options{
		Title:      s.loc.GetText(KeyAppTitle),
		ProfileDir: platform.ProfileDir(),
		Geometry:   geom,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create content view")
		return false
	}

	view.SetOnLoadFinished(s.onContentLoadFinished)
	view.SetCloseIntercept(s.onContentCloseRequested)
	view.Load(serverURL)
	view.Show()

	s.content = view
	s.screen = model.ScreenContent
	s.log.Debug().Str("url", serverURL).Msg("content view created")
	return true
}

// onContentLoadFinished runs after every document load in the content view.
// It may arrive on an engine thread
func (s *Shell) onContentLoadFinished(ok bool) {
	fyne.Do(func() {
		if s.content == nil {
			return
		}
		if !ok {
			s.log.Warn().Msg("content load failed")
			return
		}

		s.content.InjectCSS(webview.ScrollbarCSS)
		s.log.Debug().Msg("scrollbar style injected")
	})
}

// onContentCloseRequested decides between hiding to the tray and quitting.
// The native close is always suppressed; this handler owns the outcome. The
// window geometry is persisted in both branches
func (s *Shell) onContentCloseRequested() {
	fyne.Do(func() {
		if s.content == nil {
			return
		}

		geom := s.content.Geometry()
		if err := s.store.SetWindow(geom); err != nil {
			s.log.Error().Err(err).Msg("failed to save window geometry")
		}

		switch decideClose(s.store.Load()) {
		case closeHide:
			s.content.Hide()
			s.log.Debug().Msg("content window hidden to tray")
		case closeQuit:
			s.terminate()
		}
	})
}

// activateFromTray brings the current screen's window to the front
func (s *Shell) activateFromTray() {
	fyne.Do(func() {
		if s.content != nil {
			s.content.RaiseAndFocus()
			return
		}
		if s.launcher != nil {
			s.launcher.win.Show()
			s.launcher.win.RequestFocus()
		}
	})
}

// toggleCloseToTray flips the stored preference from the tray menu
func (s *Shell) toggleCloseToTray() {
	fyne.Do(func() {
		s.setCloseToTray(!s.store.Load().CloseToTray)
	})
}

// setCloseToTray stores the preference and refreshes the dependent UI. It
// takes effect on the next close request
func (s *Shell) setCloseToTray(enabled bool) {
	if err := s.store.SetCloseToTray(enabled); err != nil {
		s.log.Error().Err(err).Msg("failed to save close-to-tray preference")
	}

	s.log.Info().Bool("close_to_tray", enabled).Msg("close-to-tray preference changed")
	s.refreshTray()
	s.refreshSettings()
}

// openSettings shows the settings window, creating it on first use. A second
// request raises the existing window instead of opening another
func (s *Shell) openSettings() {
	fyne.Do(func() {
		if s.settings != nil {
			s.settings.raise()
			return
		}

		s.settings = newSettingsWindow(s.app, s.loc, settingsCallbacks{
			OnToggleTray: s.setCloseToTray,
			OnLanguage:   s.setLanguage,
			OnReset:      s.resetServer,
			OnClosed:     func() { s.settings = nil },
		})
		s.refreshSettings()
		s.settings.win.Show()
	})
}

// setLanguage stores the language preference and applies it. Windows that
// already exist keep their texts until recreated
func (s *Shell) setLanguage(code string) {
	s.app.Preferences().SetString(PrefKeyLanguage, code)
	s.loc.SetLanguage(code)
	s.log.Info().Str("language", code).Msg("language preference changed")
}

// resetServer removes the stored configuration and returns to the connect
// window. The content view is torn down before the launcher appears so the
// old session cannot outlive the reset
func (s *Shell) resetServer() {
	if err := s.store.Reset(); err != nil {
		s.log.Error().Err(err).Msg("failed to reset configuration")
		return
	}

	if s.content != nil {
		s.content.Destroy()
		s.content = nil
	}

	s.showLauncher()
	s.refreshTray()
	s.refreshSettings()
	s.log.Info().Msg("configuration reset")
}

// quitFromTray flushes the content geometry and terminates regardless of the
// close-to-tray preference
func (s *Shell) quitFromTray() {
	fyne.Do(func() {
		if s.content != nil {
			if err := s.store.SetWindow(s.content.Geometry()); err != nil {
				s.log.Error().Err(err).Msg("failed to save window geometry")
			}
		}
		s.terminate()
	})
}

// terminate tears down the content view and ends the application
func (s *Shell) terminate() {
	if s.content != nil {
		s.content.Destroy()
		s.content = nil
	}

	s.log.Info().Msg("shutting down")
	s.quit()
}

// refreshTray rebuilds the tray menu from the stored preference
func (s *Shell) refreshTray() {
	if s.tray == nil {
		return
	}
	s.tray.Rebuild(s.store.Load().CloseToTray)
}

// refreshSettings reloads the settings window from the store
func (s *Shell) refreshSettings() {
	if s.settings == nil {
		return
	}
	s.settings.refresh(s.store.Load(), s.app.Preferences().StringWithFallback(PrefKeyLanguage, DefaultLanguage))
}
