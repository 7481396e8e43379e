package webview

import (
	"github.com/memodesk/memos-desktop/internal/model"
)

// Options configure a content view at creation time
type Options struct {
	// Title is the native window title
	Title string

	// ProfileDir is the persistent browser-state directory, reused verbatim
	// across launches so web sessions survive restarts
	ProfileDir string

	// Geometry places and sizes the window; nil means default size with
	// placement left to the window system
	Geometry *model.Geometry

	// Debug enables the engine's developer tools where supported
	Debug bool
}

// View defines the interface for the content window. The shell drives it
// exclusively through these methods; rendering, networking, and session
// storage stay inside the engine. Callbacks may arrive on an engine-owned
// thread, so callers marshal their reactions onto the UI thread.
type View interface {
	// Load navigates the view to the URL
	Load(url string)

	// SetOnLoadFinished replaces the load-finished handler. ok reports
	// whether the document loaded successfully.
	SetOnLoadFinished(fn func(ok bool))

	// InjectCSS applies a stylesheet to the currently loaded document
	InjectCSS(css string)

	// SetCloseIntercept replaces the handler invoked when the user asks to
	// close the window. The native close itself is always suppressed; the
	// handler decides what happens instead.
	SetCloseIntercept(fn func())

	// Show makes the window visible
	Show()

	// Hide removes the window from the screen without destroying it
	Hide()

	// RaiseAndFocus shows the window, brings it to the front, and focuses it
	RaiseAndFocus()

	// Geometry reports the current window position and size
	Geometry() model.Geometry

	// Destroy closes the window and releases the engine
	Destroy()
}

// Factory creates a content view, so the shell can stay independent of the
// concrete engine and tests can substitute a fake
type Factory func(opts Options) (View, error)
