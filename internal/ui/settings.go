package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/memodesk/memos-desktop/internal/model"
)

// settingsCallbacks groups the shell actions the settings window can trigger
type settingsCallbacks struct {
	OnToggleTray func(enabled bool)
	OnLanguage   func(code string)
	OnReset      func()
	OnClosed     func()
}

// settingsWindow lets the user adjust preferences and reset the server address
type settingsWindow struct {
	win fyne.Window
	loc *Localization
	cb  settingsCallbacks

	// UI components
	serverLabel *widget.Label
	trayCheck   *widget.Check
	langSelect  *widget.Select
}

// newSettingsWindow creates the settings window
func newSettingsWindow(app fyne.App, loc *Localization, cb settingsCallbacks) *settingsWindow {
	s := &settingsWindow{
		win: app.NewWindow(loc.GetText(KeySettings)),
		loc: loc,
		cb:  cb,
	}

	s.createUI()
	return s
}

// createUI creates the settings layout
func (s *settingsWindow) createUI() {
	// Current server
	s.serverLabel = widget.NewLabel(s.loc.GetText(KeyNotConnected))
	s.serverLabel.Wrapping = fyne.TextWrapWord

	// Close-to-tray preference
	s.trayCheck = widget.NewCheck(s.loc.GetText(KeyCloseToTray), func(checked bool) {
		s.cb.OnToggleTray(checked)
	})

	trayHint := widget.NewLabel(s.loc.GetText(KeyCloseToTrayHint))
	trayHint.Wrapping = fyne.TextWrapWord
	trayHint.Importance = widget.LowImportance

	// Language selection
	languageLabels := []string{}
	for _, opt := range s.loc.GetLanguageOptions() {
		languageLabels = append(languageLabels, opt.Label)
	}
	s.langSelect = widget.NewSelect(languageLabels, s.onLanguageSelected)

	// Reset server address
	resetBtn := widget.NewButton(s.loc.GetText(KeyResetURL), s.onResetTapped)
	resetBtn.Importance = widget.DangerImportance

	form := container.NewVBox(
		widget.NewLabel(s.loc.GetText(KeyServer)),
		s.serverLabel,
		widget.NewSeparator(),

		s.trayCheck,
		trayHint,
		widget.NewSeparator(),

		widget.NewLabel(s.loc.GetText(KeyLanguage)),
		s.langSelect,
		widget.NewSeparator(),

		resetBtn,
	)

	s.win.SetContent(form)
	s.win.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
	s.win.SetOnClosed(s.cb.OnClosed)
}

// refresh loads the current configuration into the UI. The language code is
// the stored preference, which may be "system" rather than a resolved language
func (s *settingsWindow) refresh(cfg model.Config, langCode string) {
	if cfg.MemosURL != "" {
		s.serverLabel.SetText(cfg.MemosURL)
	} else {
		s.serverLabel.SetText(s.loc.GetText(KeyNotConnected))
	}

	// Set the checkbox without firing its change callback
	s.trayCheck.Checked = cfg.CloseToTray
	s.trayCheck.Refresh()

	for _, opt := range s.loc.GetLanguageOptions() {
		if opt.Code == langCode {
			s.langSelect.Selected = opt.Label
			s.langSelect.Refresh()
			break
		}
	}
}

// raise brings the settings window to the front
func (s *settingsWindow) raise() {
	s.win.Show()
	s.win.RequestFocus()
}

// onLanguageSelected maps the selected label back to its language code
func (s *settingsWindow) onLanguageSelected(label string) {
	for _, opt := range s.loc.GetLanguageOptions() {
		if opt.Label == label {
			s.cb.OnLanguage(opt.Code)
			return
		}
	}
}

// onResetTapped asks for confirmation before resetting the server address
func (s *settingsWindow) onResetTapped() {
	message := widget.NewLabel(s.loc.GetText(KeyResetConfirmMessage))
	message.Wrapping = fyne.TextWrapWord

	dialog.NewCustomConfirm(
		s.loc.GetText(KeyResetURL),
		s.loc.GetText(KeyReset),
		s.loc.GetText(KeyCancel),
		message,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			s.cb.OnReset()
		},
		s.win,
	).Show()
}
