package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// launcher is the small connect window shown until a server address is saved
type launcher struct {
	win fyne.Window
	loc *Localization

	// UI components
	schemeSelect *widget.Select
	hostEntry    *widget.Entry
	connectBtn   *widget.Button

	onSubmit func(scheme, host string)
}

// newLauncher creates the connect window
func newLauncher(app fyne.App, loc *Localization, onSubmit func(scheme, host string)) *launcher {
	l := &launcher{
		win:      app.NewWindow(loc.GetText(KeyLauncherTitle)),
		loc:      loc,
		onSubmit: onSubmit,
	}

	l.createUI()
	return l
}

// createUI creates the launcher layout
func (l *launcher) createUI() {
	// Scheme selection
	l.schemeSelect = widget.NewSelect([]string{SchemeHTTP, SchemeHTTPS}, nil)
	l.schemeSelect.SetSelected(SchemeHTTP)

	// Host entry
	l.hostEntry = widget.NewEntry()
	l.hostEntry.SetPlaceHolder(HostPlaceholder)
	l.hostEntry.OnSubmitted = func(string) { l.submit() }

	addressRow := container.NewBorder(nil, nil, l.schemeSelect, nil, l.hostEntry)

	// Connect button
	l.connectBtn = widget.NewButton(l.loc.GetText(KeyConnect), l.submit)
	l.connectBtn.Importance = widget.HighImportance

	tip := widget.NewLabel(l.loc.GetText(KeyLauncherTip))
	tip.Wrapping = fyne.TextWrapWord
	tip.Importance = widget.LowImportance

	content := container.NewVBox(
		widget.NewLabel(l.loc.GetText(KeyServerAddress)),
		addressRow,
		l.connectBtn,
		tip,
	)

	l.win.SetContent(content)
	l.win.Resize(fyne.NewSize(LauncherWidth, LauncherHeight))
	l.win.SetFixedSize(true)
	l.win.CenterOnScreen()
}

// submit forwards the current input to the shell. The address is passed
// through as typed; trimming and composition happen in one place upstream
func (l *launcher) submit() {
	l.onSubmit(l.schemeSelect.Selected, l.hostEntry.Text)
}

// showEmptyHostHint tells the user an address is required
func (l *launcher) showEmptyHostHint() {
	dialog.ShowInformation(l.loc.GetText(KeyHintTitle), l.loc.GetText(KeyEmptyHostMessage), l.win)
}
