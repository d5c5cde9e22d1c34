package config

import (
	"os"
	"path/filepath"
)

// GetHome returns $GITCOORDS_HOME or ~/.gitcoords
func GetHome() string {
	home := os.Getenv("GITCOORDS_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".gitcoords"
		}
		return filepath.Join(homeDir, ".gitcoords")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $GITCOORDS_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
