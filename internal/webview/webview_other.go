//go:build !windows

package webview

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/memodesk/memos-desktop/internal/model"
	"github.com/memodesk/memos-desktop/internal/platform"
)

// browserView is the portable content view: a native window that hands the
// web UI to the system browser while keeping the window lifecycle local, so
// tray behavior, geometry persistence, and close interception work the same
// on every platform.
type browserView struct {
	win fyne.Window

	link   *widget.Hyperlink
	target string

	// the toolkit exposes no window positions, so the stored position
	// passes through unchanged
	x, y int

	onLoadFinished func(ok bool)
}

// New creates the content view for platforms without an embedded engine.
// It must be called on the UI thread.
func New(opts Options) (View, error) {
	v := &browserView{}

	geom := model.DefaultGeometry()
	if opts.Geometry != nil {
		geom = *opts.Geometry
		v.x, v.y = geom.X, geom.Y
	}

	v.link = widget.NewHyperlink("", nil)
	v.link.Alignment = fyne.TextAlignCenter

	open := widget.NewButton("Open in Browser", v.openInBrowser)
	open.Importance = widget.HighImportance

	v.win = fyne.CurrentApp().NewWindow(opts.Title)
	v.win.SetContent(container.NewCenter(container.NewVBox(
		widget.NewLabelWithStyle("The Memos web UI opens in your system browser.", fyne.TextAlignCenter, fyne.TextStyle{}),
		v.link,
		open,
	)))
	v.win.Resize(fyne.NewSize(float32(geom.Width), float32(geom.Height)))

	return v, nil
}

func (v *browserView) openInBrowser() {
	if v.target == "" {
		return
	}
	_ = platform.OpenURLInBrowser(v.target)
}

// Load records the target, points the window at it, and reports the view
// ready
func (v *browserView) Load(target string) {
	v.target = target
	v.link.SetText(target)
	_ = v.link.SetURLFromString(target)

	if v.onLoadFinished != nil {
		v.onLoadFinished(true)
	}
}

// SetOnLoadFinished replaces the load-finished handler
func (v *browserView) SetOnLoadFinished(fn func(ok bool)) {
	v.onLoadFinished = fn
}

// InjectCSS is a no-op: there is no embedded document on this platform
func (v *browserView) InjectCSS(css string) {}

// SetCloseIntercept replaces the handler invoked instead of the native close
func (v *browserView) SetCloseIntercept(fn func()) {
	v.win.SetCloseIntercept(fn)
}

// Show makes the window visible
func (v *browserView) Show() {
	v.win.Show()
}

// Hide removes the window from the screen without destroying it
func (v *browserView) Hide() {
	v.win.Hide()
}

// RaiseAndFocus shows the window and gives it input focus
func (v *browserView) RaiseAndFocus() {
	v.win.Show()
	v.win.RequestFocus()
}

// Geometry reports the current size together with the pass-through position
func (v *browserView) Geometry() model.Geometry {
	size := v.win.Canvas().Size()
	return model.Geometry{
		X:      v.x,
		Y:      v.y,
		Width:  int(size.Width),
		Height: int(size.Height),
	}
}

// Destroy closes the window
func (v *browserView) Destroy() {
	v.win.Close()
}
