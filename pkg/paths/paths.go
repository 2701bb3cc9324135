// Package paths provides centralized path handling for fenestra.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for fenestra
	EnvDataDir = "FENESTRA_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for fenestra
	EnvConfigDir = "FENESTRA_CONFIG_DIR"
)

// Default directories and files
// IMPORTANT: These constants define fenestra's on-disk layout and must remain
// consistent across installations so existing preferences and recovery
// snapshots stay reachable after upgrades.
const (
	// AppDirName is the directory name for fenestra-specific files
	AppDirName = "fenestra"

	// PreferencesFileName is the name of the persisted preferences file
	PreferencesFileName = "preferences.json"

	// RecoveryDirName is the directory name for emergency recovery snapshots
	RecoveryDirName = "recovery"

	// ConfigFileName is the name of the optional user configuration file
	ConfigFileName = "config.toml"
)

// Paths provides access to all fenestra file locations
type Paths struct {
	dataDir string
}

// New creates a Paths instance rooted at the application data directory.
// Resolution order: FENESTRA_DATA_DIR, then the XDG data home.
func New() *Paths {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return &Paths{dataDir: dir}
	}
	return &Paths{dataDir: filepath.Join(xdg.DataHome, AppDirName)}
}

// NewWithDataDir creates a Paths instance rooted at an explicit directory.
// Used by tests and by hosts that resolve the data directory themselves.
func NewWithDataDir(dir string) *Paths {
	return &Paths{dataDir: dir}
}

// DataDir returns the application data root
func (p *Paths) DataDir() string {
	return p.dataDir
}

// PreferencesFile returns the path of the persisted preferences file
func (p *Paths) PreferencesFile() string {
	return filepath.Join(p.dataDir, PreferencesFileName)
}

// RecoveryDir returns the directory holding recovery snapshots
func (p *Paths) RecoveryDir() string {
	return filepath.Join(p.dataDir, RecoveryDirName)
}

// RecoveryFile returns the path of the recovery snapshot for the given key.
// The key must already have passed ValidateRecoveryKey; this method performs
// no validation of its own.
func (p *Paths) RecoveryFile(key string) string {
	return filepath.Join(p.RecoveryDir(), key+".json")
}

// ConfigFile returns the path of the optional user configuration file.
// Resolution order: FENESTRA_CONFIG_DIR, then the XDG config home.
func ConfigFile() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return filepath.Join(dir, ConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}
