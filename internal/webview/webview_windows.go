//go:build windows

package webview

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"

	webview2 "github.com/jchv/go-webview2"
	"github.com/lxn/win"

	"github.com/memodesk/memos-desktop/internal/model"
)

// loadedCallbackName is the function bound into every document so the page
// can report that it finished loading
const loadedCallbackName = "__memosDesktopLoaded"

// window embeds the web UI in an Edge WebView2 window. The engine runs its
// own message loop on a dedicated OS thread; methods called from other
// threads either go through plain Win32 calls, which are thread-safe, or are
// dispatched onto the engine thread.
type window struct {
	w    webview2.WebView
	hwnd win.HWND

	mu             sync.Mutex
	onLoadFinished func(ok bool)
	closeIntercept func()

	prevWndProc uintptr
	err         error

	ready chan struct{}
	done  chan struct{}
}

// New creates the content view for this platform. It fails when the WebView2
// runtime is not available.
func New(opts Options) (View, error) {
	v := &window{
		ready: make(chan struct{}),
		done:  make(chan struct{}),
	}

	go v.run(opts)

	<-v.ready
	if v.err != nil {
		return nil, v.err
	}
	return v, nil
}

// run creates the engine and pumps its message loop until Destroy. It owns
// the OS thread for the whole window lifetime.
func (v *window) run(opts Options) {
	runtime.LockOSThread()
	defer close(v.done)

	geom := model.DefaultGeometry()
	if opts.Geometry != nil {
		geom = *opts.Geometry
	}

	w := webview2.NewWithOptions(webview2.WebViewOptions{
		Debug:     opts.Debug,
		AutoFocus: true,
		DataPath:  opts.ProfileDir,
		WindowOptions: webview2.WindowOptions{
			Title:  opts.Title,
			Width:  uint(geom.Width),
			Height: uint(geom.Height),
		},
	})
	if w == nil {
		v.err = fmt.Errorf("failed to create WebView2 window (is the WebView2 runtime installed?)")
		close(v.ready)
		return
	}
	v.w = w
	v.hwnd = win.HWND(w.Window())

	// A stored geometry also carries the position; otherwise the window
	// system's default placement stands
	if opts.Geometry != nil {
		win.MoveWindow(v.hwnd, int32(geom.X), int32(geom.Y), int32(geom.Width), int32(geom.Height), true)
	}

	v.prevWndProc = win.SetWindowLongPtr(v.hwnd, win.GWLP_WNDPROC, syscall.NewCallback(v.wndProc))

	_ = w.Bind(loadedCallbackName, func() {
		v.notifyLoadFinished(true)
	})
	w.Init("window.addEventListener('load', function() { " + loadedCallbackName + "(); });")

	close(v.ready)

	w.Run()
	w.Destroy()
}

// wndProc filters WM_CLOSE so the close intercept decides what happens; all
// other messages go to the engine's own procedure
func (v *window) wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	if msg == win.WM_CLOSE {
		v.mu.Lock()
		fn := v.closeIntercept
		v.mu.Unlock()
		if fn != nil {
			fn()
		}
		return 0
	}
	return win.CallWindowProc(v.prevWndProc, hwnd, msg, wParam, lParam)
}

func (v *window) notifyLoadFinished(ok bool) {
	v.mu.Lock()
	fn := v.onLoadFinished
	v.mu.Unlock()
	if fn != nil {
		fn(ok)
	}
}

// Load navigates to the URL on the engine thread
func (v *window) Load(url string) {
	v.w.Dispatch(func() {
		v.w.Navigate(url)
	})
}

// SetOnLoadFinished replaces the load-finished handler
func (v *window) SetOnLoadFinished(fn func(ok bool)) {
	v.mu.Lock()
	v.onLoadFinished = fn
	v.mu.Unlock()
}

// InjectCSS applies a stylesheet to the currently loaded document
func (v *window) InjectCSS(css string) {
	script := InjectionScript(css)
	v.w.Dispatch(func() {
		v.w.Eval(script)
	})
}

// SetCloseIntercept replaces the handler invoked instead of the native close
func (v *window) SetCloseIntercept(fn func()) {
	v.mu.Lock()
	v.closeIntercept = fn
	v.mu.Unlock()
}

// Show makes the window visible
func (v *window) Show() {
	win.ShowWindow(v.hwnd, win.SW_SHOW)
}

// Hide removes the window from the screen, leaving the page loaded
func (v *window) Hide() {
	win.ShowWindow(v.hwnd, win.SW_HIDE)
}

// RaiseAndFocus restores the window and brings it to the foreground
func (v *window) RaiseAndFocus() {
	if win.IsIconic(v.hwnd) {
		win.ShowWindow(v.hwnd, win.SW_RESTORE)
	} else {
		win.ShowWindow(v.hwnd, win.SW_SHOW)
	}
	win.SetForegroundWindow(v.hwnd)
}

// Geometry reports the current window rectangle in screen coordinates
func (v *window) Geometry() model.Geometry {
	var rect win.RECT
	win.GetWindowRect(v.hwnd, &rect)
	return model.Geometry{
		X:      int(rect.Left),
		Y:      int(rect.Top),
		Width:  int(rect.Right - rect.Left),
		Height: int(rect.Bottom - rect.Top),
	}
}

// Destroy stops the engine loop and waits for the window to be torn down
func (v *window) Destroy() {
	v.w.Dispatch(func() {
		v.w.Terminate()
	})
	<-v.done
}
