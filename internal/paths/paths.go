package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDirName     = "brig"
	configFileName = ".brigrc"

	// ConfigEnv overrides the config file location.
	ConfigEnv = "BRIG_CONFIG"
	// DataEnv overrides the directory holding the database.
	DataEnv = "BRIG_DATA_DIR"
)

// AppDataDir returns the application data directory for config/database.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// This is where the history database lives.
//   - macOS: ~/Library/Application Support/brig
//   - Linux: $XDG_DATA_HOME/brig or ~/.local/share/brig
//   - Windows: %LOCALAPPDATA%\brig
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		// macOS: ~/Library/Application Support
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		// Windows: %LOCALAPPDATA%
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		// Linux/Unix: $XDG_DATA_HOME or ~/.local/share
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// DatabasePath returns the path to the sqlite database holding history and
// users. The parent directory is created with 0700.
func DatabasePath() string {
	dir := os.Getenv(DataEnv)
	if dir == "" {
		dir = AppLocalDataDir()
	}
	_ = os.MkdirAll(dir, 0700)
	return filepath.Join(dir, "brig.db")
}

// ConfigFilePath returns ~/.brigrc unless BRIG_CONFIG names another file.
func ConfigFilePath() (string, error) {
	if p := os.Getenv(ConfigEnv); p != "" {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path to the application log file.
// Logs are stored in the application data directory:
//   - macOS: ~/Library/Application Support/brig/brig.log
//   - Linux: $XDG_CONFIG_HOME/brig/brig.log or ~/.config/brig/brig.log
//   - Windows: %AppData%\brig\brig.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "brig.log")
}
