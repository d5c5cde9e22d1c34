package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultAuthority is used when neither a flag, GITCOORDS_AUTHORITY nor settings name one
	DefaultAuthority = "github.com"

	// DefaultMaxLogFiles is the default number of debug log files to keep
	DefaultMaxLogFiles = 1000
)

// Settings represents the structure of ~/.gitcoords/settings.json
type Settings struct {
	Debug            *bool  `json:"debug,omitempty"`
	DefaultAuthority string `json:"default_authority,omitempty"`
	MaxLogFiles      *int   `json:"max_log_files,omitempty"`
	TimeZone         string `json:"time_zone,omitempty"`
	UserEmail        string `json:"user_email,omitempty"`
	UserName         string `json:"user_name,omitempty"`
}

// Validate checks values that would otherwise only fail when used
func (s *Settings) Validate() error {
	if s.TimeZone != "" {
		if _, err := time.LoadLocation(s.TimeZone); err != nil {
			return fmt.Errorf("invalid time_zone '%s': %w", s.TimeZone, err)
		}
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative, got %d", *s.MaxLogFiles)
	}
	return nil
}

// Authority resolves the default authority: GITCOORDS_AUTHORITY > settings > DefaultAuthority
func (s *Settings) Authority() string {
	if env := os.Getenv("GITCOORDS_AUTHORITY"); env != "" {
		return env
	}
	if s != nil && s.DefaultAuthority != "" {
		return s.DefaultAuthority
	}
	return DefaultAuthority
}

// LoadSettings loads settings from $GITCOORDS_HOME/settings.json (or ~/.gitcoords/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $GITCOORDS_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
