package model

// Geometry describes the position and size of the content window in screen
// coordinates
type Geometry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

const (
	// MinWindowWidth is the smallest width a stored geometry may produce
	MinWindowWidth = 600

	// MinWindowHeight is the smallest height a stored geometry may produce
	MinWindowHeight = 400

	// DefaultWindowWidth is used when no geometry has been stored yet
	DefaultWindowWidth = 1000

	// DefaultWindowHeight is used when no geometry has been stored yet
	DefaultWindowHeight = 700
)

// Clamped returns a copy with the position forced on-screen and the size
// raised to the usable minimum, so a stale or hand-edited record can never
// place the window off-screen or collapse it below a readable size
func (g Geometry) Clamped() Geometry {
	if g.X < 0 {
		g.X = 0
	}
	if g.Y < 0 {
		g.Y = 0
	}
	if g.Width < MinWindowWidth {
		g.Width = MinWindowWidth
	}
	if g.Height < MinWindowHeight {
		g.Height = MinWindowHeight
	}
	return g
}

// DefaultGeometry returns the geometry used when nothing has been stored yet
func DefaultGeometry() Geometry {
	return Geometry{Width: DefaultWindowWidth, Height: DefaultWindowHeight}
}

// Config is the single persisted record of the application: which server to
// show, where the window was last placed, and whether closing hides to the
// tray instead of quitting
type Config struct {
	MemosURL    string    `json:"memos_url"`
	Window      *Geometry `json:"window"`
	CloseToTray bool      `json:"close_to_tray"`
}

// DefaultConfig returns the record assumed when nothing has been stored yet
// or the stored file cannot be read: no server, no geometry, close quits
func DefaultConfig() Config {
	return Config{}
}

// Clamped returns a copy with the stored geometry, if any, clamped to the
// usable range. The URL and tray preference pass through untouched.
func (c Config) Clamped() Config {
	if c.Window != nil {
		w := c.Window.Clamped()
		c.Window = &w
	}
	return c
}
