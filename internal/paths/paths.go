// Package paths resolves configuration and output directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "FACTSEEK_CONFIG_DIR"
	EnvOutDir    = "FACTSEEK_OUT_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/factseek (fallback ~/.config/factseek)
// macOS:   ~/Library/Application Support/factseek
// Windows: %APPDATA%/factseek
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "factseek"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "factseek"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "factseek"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > FACTSEEK_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveOutDir returns the output directory following the precedence chain:
// flag > config.yaml out_dir > FACTSEEK_OUT_DIR env > current directory.
//
// The CWD default keeps scan output next to where the scan was launched,
// which is where reproduction runs expect to find the CSVs.
func ResolveOutDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvOutDir); env != "" {
		return filepath.Abs(env)
	}
	return os.Getwd()
}
