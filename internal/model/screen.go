package model

// Screen identifies which primary window the application presents
type Screen string

const (
	// ScreenLauncher means no server is configured and the connect prompt is shown
	ScreenLauncher Screen = "Launcher"

	// ScreenContent means a server is configured and its web UI is shown
	ScreenContent Screen = "Content"
)

// String returns the string representation of Screen
func (s Screen) String() string {
	return string(s)
}

// IsConnected returns true if the screen presents a configured server
func (s Screen) IsConnected() bool {
	return s == ScreenContent
}

// ResolveScreen decides the startup screen from a loaded Config. The decision
// looks only at the stored record: any non-empty URL selects the content
// screen. No reachability check is made, so an unreachable server still
// resolves to content and fails inside the web view.
func ResolveScreen(cfg Config) Screen {
	if cfg.MemosURL == "" {
		return ScreenLauncher
	}
	return ScreenContent
}
