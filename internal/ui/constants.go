package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	LauncherWidth  float32 = 326
	LauncherHeight float32 = 200

	SettingsWidth  float32 = 420
	SettingsHeight float32 = 320
)

// Connection schemes offered by the launcher
const (
	SchemeHTTP  = "http://"
	SchemeHTTPS = "https://"
)

// Launcher input hints
const (
	HostPlaceholder = "192.168.1.100:5230"
)

// Fyne preference keys, separate from the persisted configuration file
const (
	PrefKeyLanguage = "app_language"
)

// Defaults
const (
	DefaultLanguage = "system"
)
