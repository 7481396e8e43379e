package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// Directory names under the per-user configuration directory
const (
	AppDirName     = "memos-desktop"
	ProfileDirName = "web_data"
	LogsDirName    = "logs"
)

// ConfigDir returns the per-user directory holding this app's configuration
// file. It falls back to the home directory when the platform has no
// dedicated configuration location.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base, _ = os.UserHomeDir()
	}
	return filepath.Join(base, AppDirName)
}

// ProfileDir returns the persistent browser-state directory. It lives beside
// the configuration file and is reused verbatim across launches so web
// sessions survive restarts.
func ProfileDir() string {
	return filepath.Join(ConfigDir(), ProfileDirName)
}

// LogsDir returns the directory holding rotated log files
func LogsDir() string {
	return filepath.Join(ConfigDir(), LogsDirName)
}

// EnsureDir creates the directory if it doesn't exist
func EnsureDir(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenURLInBrowser opens the URL with the default system browser
func OpenURLInBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, url)
	case OSWindows:
		cmd = exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", url)
	default:
		cmd = exec.Command(XDGOpenCommand, url)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
