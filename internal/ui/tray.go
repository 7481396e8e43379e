package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// trayActions groups the shell actions the tray menu can trigger
type trayActions struct {
	OnActivate   func()
	OnToggleTray func()
	OnSettings   func()
	OnQuit       func()
}

// trayMenu owns the system tray icon and menu. It holds no state of its own;
// the checked state of the toggle is supplied on every rebuild
type trayMenu struct {
	desk    desktop.App
	loc     *Localization
	actions trayActions
}

// newTrayMenu sets up the tray icon. It returns nil when the driver has no
// system tray support
func newTrayMenu(app fyne.App, loc *Localization, actions trayActions) *trayMenu {
	desk, ok := app.(desktop.App)
	if !ok {
		return nil
	}

	desk.SetSystemTrayIcon(AppIcon())

	return &trayMenu{
		desk:    desk,
		loc:     loc,
		actions: actions,
	}
}

// Rebuild replaces the tray menu so the toggle reflects the stored preference
func (t *trayMenu) Rebuild(closeToTray bool) {
	t.desk.SetSystemTrayMenu(buildTrayMenu(t.loc, closeToTray, t.actions))
}

// buildTrayMenu assembles the tray menu items
func buildTrayMenu(loc *Localization, closeToTray bool, actions trayActions) *fyne.Menu {
	openItem := fyne.NewMenuItem(loc.GetText(KeyOpenMemos), actions.OnActivate)

	toggleItem := fyne.NewMenuItem(loc.GetText(KeyCloseToTray), actions.OnToggleTray)
	toggleItem.Checked = closeToTray

	settingsItem := fyne.NewMenuItem(loc.GetText(KeySettings), actions.OnSettings)

	quitItem := fyne.NewMenuItem(loc.GetText(KeyQuit), actions.OnQuit)
	quitItem.IsQuit = true

	return fyne.NewMenu(
		loc.GetText(KeyAppTitle),
		openItem,
		fyne.NewMenuItemSeparator(),
		toggleItem,
		settingsItem,
		fyne.NewMenuItemSeparator(),
		quitItem,
	)
}
