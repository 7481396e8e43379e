package ui

import (
	"errors"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"

	"github.com/memodesk/memos-desktop/internal/config"
	"github.com/memodesk/memos-desktop/internal/logger"
	"github.com/memodesk/memos-desktop/internal/model"
	"github.com/memodesk/memos-desktop/internal/webview"
)

const testServerURL = "http://192.168.1.100:5230"

// fakeView records every call the shell makes against the content view
type fakeView struct {
	loads     []string
	injected  []string
	shown     int
	hidden    int
	raised    int
	destroyed int

	geom model.Geometry

	onLoadFinished func(ok bool)
	closeIntercept func()

	onDestroy func()
}

func (v *fakeView) Load(url string) { v.loads = append(v.loads, url) }

func (v *fakeView) SetOnLoadFinished(fn func(ok bool)) { v.onLoadFinished = fn }

func (v *fakeView) InjectCSS(css string) { v.injected = append(v.injected, css) }

func (v *fakeView) SetCloseIntercept(fn func()) { v.closeIntercept = fn }

func (v *fakeView) Show() { v.shown++ }

func (v *fakeView) Hide() { v.hidden++ }

func (v *fakeView) RaiseAndFocus() { v.raised++ }

func (v *fakeView) Geometry() model.Geometry { return v.geom }

func (v *fakeView) Destroy() {
	v.destroyed++
	if v.onDestroy != nil {
		v.onDestroy()
	}
}

// shellFixture wires a shell against a temporary store and a fake view
type shellFixture struct {
	app   fyne.App
	shell *Shell
	store *config.Store

	view     *fakeView
	created  int
	lastOpts webview.Options
	quits    int

	factoryErr error
}

func newShellFixture(t *testing.T) *shellFixture {
	t.Helper()

	f := &shellFixture{
		app:   test.NewApp(),
		store: config.NewStore(t.TempDir()),
		view:  &fakeView{geom: model.Geometry{X: 10, Y: 20, Width: 800, Height: 600}},
	}

	factory := func(opts webview.Options) (webview.View, error) {
		if f.factoryErr != nil {
			return nil, f.factoryErr
		}
		f.created++
		f.lastOpts = opts
		return f.view, nil
	}

	f.shell = NewShell(f.app, f.store, factory, &logger.Logger{Logger: zerolog.Nop()})
	f.shell.quit = func() { f.quits++ }

	return f
}

func TestShell_StartupShowsLauncherWhenUnconfigured(t *testing.T) {
	f := newShellFixture(t)

	f.shell.route(f.store.Load())

	if f.created != 0 {
		t.Errorf("Expected no content view, got %d", f.created)
	}
	if f.shell.launcher == nil {
		t.Error("Expected launcher to be created")
	}
	if f.shell.screen != model.ScreenLauncher {
		t.Errorf("Expected screen %s, got %s", model.ScreenLauncher, f.shell.screen)
	}
}

func TestShell_StartupShowsContentWhenConfigured(t *testing.T) {
	f := newShellFixture(t)
	f.store.SetMemosURL(testServerURL)

	f.shell.route(f.store.Load())

	if f.created != 1 {
		t.Fatalf("Expected one content view, got %d", f.created)
	}
	if len(f.view.loads) != 1 || f.view.loads[0] != testServerURL {
		t.Errorf("Expected load of %s, got %v", testServerURL, f.view.loads)
	}
	if f.view.shown != 1 {
		t.Errorf("Expected content to be shown once, got %d", f.view.shown)
	}
	if f.shell.launcher != nil {
		t.Error("Expected no launcher on configured startup")
	}
	if f.shell.screen != model.ScreenContent {
		t.Errorf("Expected screen %s, got %s", model.ScreenContent, f.shell.screen)
	}
}

func TestShell_StartupPassesStoredGeometry(t *testing.T) {
	f := newShellFixture(t)
	f.store.SetMemosURL(testServerURL)
	f.store.SetWindow(model.Geometry{X: 30, Y: 40, Width: 900, Height: 700})

	f.shell.route(f.store.Load())

	if f.lastOpts.Geometry == nil {
		t.Fatal("Expected stored geometry to reach the view factory")
	}
	got := *f.lastOpts.Geometry
	expected := model.Geometry{X: 30, Y: 40, Width: 900, Height: 700}
	if got != expected {
		t.Errorf("Expected geometry %+v, got %+v", expected, got)
	}
}

func TestShell_SubmitEmptyHostShowsHint(t *testing.T) {
	f := newShellFixture(t)
	f.shell.showLauncher()

	f.shell.submitURL(SchemeHTTP, "   ")

	if f.created != 0 {
		t.Errorf("Expected no content view for empty host, got %d", f.created)
	}
	if got := f.store.Load().MemosURL; got != "" {
		t.Errorf("Expected no URL stored, got %q", got)
	}
	if f.shell.launcher == nil {
		t.Error("Expected launcher to stay open")
	}
}

func TestShell_SubmitComposesAndStoresURL(t *testing.T) {
	f := newShellFixture(t)
	f.shell.showLauncher()

	f.shell.submitURL(SchemeHTTP, " 192.168.1.100:5230 ")

	if got := f.store.Load().MemosURL; got != testServerURL {
		t.Errorf("Expected stored URL %q, got %q", testServerURL, got)
	}
	if f.created != 1 {
		t.Fatalf("Expected one content view, got %d", f.created)
	}
	if len(f.view.loads) != 1 || f.view.loads[0] != testServerURL {
		t.Errorf("Expected load of %s, got %v", testServerURL, f.view.loads)
	}
	if f.shell.launcher != nil {
		t.Error("Expected launcher to be closed after submit")
	}
	if f.quits != 0 {
		t.Errorf("Expected switching screens not to quit, got %d quits", f.quits)
	}
	if got := filepath.Base(f.lastOpts.ProfileDir); got != "web_data" {
		t.Errorf("Expected profile directory web_data, got %q", got)
	}
}

func TestShell_CloseToTrayHidesContent(t *testing.T) {
	f := newShellFixture(t)
	f.store.SetMemosURL(testServerURL)
	f.store.SetCloseToTray(true)
	f.shell.route(f.store.Load())

	f.view.closeIntercept()

	if f.view.hidden != 1 {
		t.Errorf("Expected content to be hidden once, got %d", f.view.hidden)
	}
	if f.view.destroyed != 0 {
		t.Errorf("Expected content to survive, got %d destroys", f.view.destroyed)
	}
	if f.quits != 0 {
		t.Errorf("Expected no quit, got %d", f.quits)
	}

	cfg := f.store.Load()
	if cfg.Window == nil {
		t.Fatal("Expected geometry to be persisted on close")
	}
	if *cfg.Window != f.view.geom {
		t.Errorf("Expected geometry %+v, got %+v", f.view.geom, *cfg.Window)
	}
	if cfg.MemosURL != testServerURL {
		t.Errorf("Expected URL untouched, got %q", cfg.MemosURL)
	}
}

func TestShell_CloseQuitsWhenTrayDisabled(t *testing.T) {
	f := newShellFixture(t)
	f.store.SetMemosURL(testServerURL)
	f.shell.route(f.store.Load())

	f.view.closeIntercept()

	if f.quits != 1 {
		t.Errorf("Expected one quit, got %d", f.quits)
	}
	if f.view.hidden != 0 {
		t.Errorf("Expected no hide on quit, got %d", f.view.hidden)
	}
	if f.view.destroyed != 1 {
		t.Errorf("Expected content teardown on quit, got %d", f.view.destroyed)
	}
	if f.store.Load().Window == nil {
		t.Error("Expected geometry to be persisted before quitting")
	}
}

func TestShell_ResetDestroysContentBeforeLauncher(t *testing.T) {
	f := newShellFixture(t)
	f.store.SetMemosURL(testServerURL)
	f.shell.route(f.store.Load())

	destroyedBeforeLauncher := false
	f.view.onDestroy = func() {
		destroyedBeforeLauncher = f.shell.launcher == nil
	}

	f.shell.resetServer()

	if f.view.destroyed != 1 {
		t.Fatalf("Expected one destroy, got %d", f.view.destroyed)
	}
	if !destroyedBeforeLauncher {
		t.Error("Expected content teardown before the launcher is created")
	}
	if f.shell.content != nil {
		t.Error("Expected content reference to be cleared")
	}
	if f.shell.launcher == nil {
		t.Error("Expected launcher after reset")
	}

	cfg := f.store.Load()
	if cfg.MemosURL != "" || cfg.Window != nil || cfg.CloseToTray {
		t.Errorf("Expected defaults after reset, got %+v", cfg)
	}
	if got := model.ResolveScreen(cfg); got != model.ScreenLauncher {
		t.Errorf("Expected reset to be irreversible, resolved %s", got)
	}
}

func TestShell_ResetKeepsSettingsOpen(t *testing.T) {
	f := newShellFixture(t)
	f.store.SetMemosURL(testServerURL)
	f.shell.route(f.store.Load())

	f.shell.openSettings()
	settings := f.shell.settings
	if settings == nil {
		t.Fatal("Expected settings window to be created")
	}

	f.shell.resetServer()

	if f.shell.settings != settings {
		t.Error("Expected the same settings window to stay open across reset")
	}
	expected := settings.loc.GetText(KeyNotConnected)
	if got := settings.serverLabel.Text; got != expected {
		t.Errorf("Expected server label %q, got %q", expected, got)
	}
}

func TestShell_TrayActivation(t *testing.T) {
	t.Run("raises content", func(t *testing.T) {
		f := newShellFixture(t)
		f.store.SetMemosURL(testServerURL)
		f.shell.route(f.store.Load())

		f.shell.activateFromTray()

		if f.view.raised != 1 {
			t.Errorf("Expected content raised once, got %d", f.view.raised)
		}
	})

	t.Run("restores hidden content", func(t *testing.T) {
		f := newShellFixture(t)
		f.store.SetMemosURL(testServerURL)
		f.store.SetCloseToTray(true)
		f.shell.route(f.store.Load())

		f.view.closeIntercept()
		f.shell.activateFromTray()

		if f.view.raised != 1 {
			t.Errorf("Expected hidden content raised once, got %d", f.view.raised)
		}
		if f.view.destroyed != 0 {
			t.Errorf("Expected content to survive hide and restore, got %d destroys", f.view.destroyed)
		}
		if len(f.view.loads) != 1 {
			t.Errorf("Expected no reload on restore, got %d loads", len(f.view.loads))
		}
	})

	t.Run("shows launcher when unconfigured", func(t *testing.T) {
		f := newShellFixture(t)
		f.shell.route(f.store.Load())

		f.shell.activateFromTray()

		if f.view.raised != 0 {
			t.Errorf("Expected no content interaction, got %d raises", f.view.raised)
		}
	})

	t.Run("no-op without windows", func(t *testing.T) {
		f := newShellFixture(t)

		f.shell.activateFromTray()
	})
}

func TestShell_SettingsSingleInstance(t *testing.T) {
	f := newShellFixture(t)
	f.shell.route(f.store.Load())

	f.shell.openSettings()
	first := f.shell.settings
	if first == nil {
		t.Fatal("Expected settings window to be created")
	}

	f.shell.openSettings()
	if f.shell.settings != first {
		t.Error("Expected second request to reuse the settings window")
	}

	first.win.Close()
	if f.shell.settings != nil {
		t.Error("Expected settings reference to clear on close")
	}

	f.shell.openSettings()
	if f.shell.settings == nil {
		t.Error("Expected settings window to reopen")
	}
	if f.shell.settings == first {
		t.Error("Expected a fresh settings window after close")
	}
}

func TestShell_InjectsStylePerLoad(t *testing.T) {
	f := newShellFixture(t)
	f.store.SetMemosURL(testServerURL)
	f.shell.route(f.store.Load())

	f.view.onLoadFinished(true)
	if len(f.view.injected) != 1 {
		t.Fatalf("Expected one injection, got %d", len(f.view.injected))
	}
	if f.view.injected[0] != webview.ScrollbarCSS {
		t.Error("Expected the scrollbar stylesheet to be injected")
	}

	// Each successful document load gets the style again
	f.view.onLoadFinished(true)
	if len(f.view.injected) != 2 {
		t.Errorf("Expected two injections, got %d", len(f.view.injected))
	}

	// Failed loads are left alone
	f.view.onLoadFinished(false)
	if len(f.view.injected) != 2 {
		t.Errorf("Expected no injection on failed load, got %d", len(f.view.injected))
	}
}

func TestShell_QuitFromTray(t *testing.T) {
	t.Run("flushes geometry", func(t *testing.T) {
		f := newShellFixture(t)
		f.store.SetMemosURL(testServerURL)
		f.shell.route(f.store.Load())
		f.view.geom = model.Geometry{X: 50, Y: 60, Width: 1024, Height: 768}

		f.shell.quitFromTray()

		if f.quits != 1 {
			t.Errorf("Expected one quit, got %d", f.quits)
		}
		cfg := f.store.Load()
		if cfg.Window == nil {
			t.Fatal("Expected geometry to be flushed before quitting")
		}
		if *cfg.Window != f.view.geom {
			t.Errorf("Expected geometry %+v, got %+v", f.view.geom, *cfg.Window)
		}
		if f.view.destroyed != 1 {
			t.Errorf("Expected content teardown, got %d", f.view.destroyed)
		}
	})

	t.Run("without content", func(t *testing.T) {
		f := newShellFixture(t)
		f.shell.route(f.store.Load())

		f.shell.quitFromTray()

		if f.quits != 1 {
			t.Errorf("Expected one quit, got %d", f.quits)
		}
		if f.store.Load().Window != nil {
			t.Error("Expected no geometry write without a content view")
		}
	})
}

func TestShell_ViewFactoryErrorFallsBackToLauncher(t *testing.T) {
	f := newShellFixture(t)
	f.factoryErr = errors.New("engine unavailable")
	f.store.SetMemosURL(testServerURL)

	f.shell.route(f.store.Load())

	if f.created != 0 {
		t.Errorf("Expected no content view, got %d", f.created)
	}
	if f.shell.launcher == nil {
		t.Error("Expected launcher fallback when the view cannot be created")
	}
	if f.shell.screen != model.ScreenLauncher {
		t.Errorf("Expected screen %s, got %s", model.ScreenLauncher, f.shell.screen)
	}
}

func TestShell_SubmitKeepsLauncherOnFactoryError(t *testing.T) {
	f := newShellFixture(t)
	f.factoryErr = errors.New("engine unavailable")
	f.shell.showLauncher()

	f.shell.submitURL(SchemeHTTP, "192.168.1.100:5230")

	if f.shell.launcher == nil {
		t.Error("Expected launcher to stay open for retry")
	}
	if f.quits != 0 {
		t.Errorf("Expected no quit, got %d", f.quits)
	}
}

func TestShell_ToggleCloseToTray(t *testing.T) {
	f := newShellFixture(t)

	f.shell.toggleCloseToTray()
	if !f.store.Load().CloseToTray {
		t.Error("Expected close-to-tray to be enabled after first toggle")
	}

	f.shell.toggleCloseToTray()
	if f.store.Load().CloseToTray {
		t.Error("Expected close-to-tray to be disabled after second toggle")
	}
}

func TestShell_LauncherCloseQuits(t *testing.T) {
	f := newShellFixture(t)
	f.shell.showLauncher()

	f.shell.launcher.win.Close()

	if f.quits != 1 {
		t.Errorf("Expected closing the launcher to quit, got %d", f.quits)
	}
}

func TestShell_SetLanguage(t *testing.T) {
	f := newShellFixture(t)

	f.shell.setLanguage("zh")

	if got := f.shell.loc.GetCurrentLanguage(); got != "zh" {
		t.Errorf("Expected current language zh, got %q", got)
	}
	if got := f.app.Preferences().String(PrefKeyLanguage); got != "zh" {
		t.Errorf("Expected stored preference zh, got %q", got)
	}
}

func TestDecideClose(t *testing.T) {
	tests := []struct {
		name        string
		closeToTray bool
		expected    closeAction
	}{
		{"tray enabled hides", true, closeHide},
		{"tray disabled quits", false, closeQuit},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := model.Config{CloseToTray: test.closeToTray}
			if got := decideClose(cfg); got != test.expected {
				t.Errorf("Expected %v, got %v", test.expected, got)
			}
		})
	}
}
