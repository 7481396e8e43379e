package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/memodesk/memos-desktop/internal/model"
	"github.com/memodesk/memos-desktop/internal/platform"
)

// File names inside the configuration directory
const (
	// FileName is the persisted record
	FileName = "config.json"

	// tempPattern names the scratch file used for atomic replacement
	tempPattern = "config-*.tmp"
)

// Store persists the application record as a single JSON file. Reads never
// fail: a missing, unreadable, or unparsable file yields the default record.
// Writes replace the whole file through a same-directory temp file and a
// rename, so the record is never observed half-written.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given configuration directory
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the full path of the persisted file
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Load reads the persisted record. Any failure degrades to the default
// record, and a stored geometry is clamped to the usable range.
func (s *Store) Load() model.Config {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return model.DefaultConfig()
	}

	cfg := model.DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.DefaultConfig()
	}
	return cfg.Clamped()
}

// Save persists the whole record atomically, creating the configuration
// directory on first use
func (s *Store) Save(cfg model.Config) error {
	if err := platform.EnsureDir(s.dir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, tempPattern)
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp config file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to flush temp config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp config file: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// SetMemosURL persists a new server URL, preserving the stored geometry and
// tray preference
func (s *Store) SetMemosURL(url string) error {
	cfg := s.Load()
	cfg.MemosURL = url
	return s.Save(cfg)
}

// SetWindow persists the window geometry, preserving the URL and tray
// preference
func (s *Store) SetWindow(g model.Geometry) error {
	cfg := s.Load()
	cfg.Window = &g
	return s.Save(cfg)
}

// SetCloseToTray persists the tray preference, preserving the URL and
// geometry
func (s *Store) SetCloseToTray(enabled bool) error {
	cfg := s.Load()
	cfg.CloseToTray = enabled
	return s.Save(cfg)
}

// Reset removes the persisted record entirely. A missing file is not an
// error.
func (s *Store) Reset() error {
	if err := os.Remove(s.Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	return nil
}
