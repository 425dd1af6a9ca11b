// Package paths resolves the on-disk layout under the arcade home directory.
package paths

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the default home directory when set.
const EnvHome = "ARCADE_HOME"

// Layout is the set of files used by one arcade home.
type Layout struct {
	Home string
}

// Resolve determines the home directory using precedence:
// 1. override (--home flag)
// 2. $ARCADE_HOME
// 3. ~/.arcade
func Resolve(override string) Layout {
	if override != "" {
		return Layout{Home: override}
	}
	if env := os.Getenv(EnvHome); env != "" {
		return Layout{Home: env}
	}
	return Layout{Home: DefaultHome()}
}

// DefaultHome returns ~/.arcade.
func DefaultHome() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".arcade")
}

// ConfigPath returns the config file path.
func (l Layout) ConfigPath() string {
	return filepath.Join(l.Home, "config.toml")
}

// DBPath returns the activation history database path.
func (l Layout) DBPath() string {
	return filepath.Join(l.Home, "arcade.db")
}

// LogDir returns the log directory.
func (l Layout) LogDir() string {
	return filepath.Join(l.Home, "logs")
}

// LogPath returns the log file path.
func (l Layout) LogPath() string {
	return filepath.Join(l.LogDir(), "arcade.log")
}

// EnsureDir creates the directory tree with proper permissions.
func (l Layout) EnsureDir() error {
	for _, d := range []string{l.Home, l.LogDir()} {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
