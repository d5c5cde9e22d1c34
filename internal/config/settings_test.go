package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GITCOORDS_HOME", t.TempDir())

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_ReadsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("GITCOORDS_HOME", home)
	t.Setenv("GITCOORDS_AUTHORITY", "")

	content := `{
  "default_authority": "git@bitbucket.org",
  "user_name": "Jane Doe",
  "user_email": "jane@example.com",
  "time_zone": "UTC",
  "debug": true,
  "max_log_files": 5
}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "git@bitbucket.org", settings.DefaultAuthority)
	assert.Equal(t, "git@bitbucket.org", settings.Authority())
	assert.Equal(t, "Jane Doe", settings.UserName)
	assert.Equal(t, "jane@example.com", settings.UserEmail)
	assert.Equal(t, "UTC", settings.TimeZone)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadSettingsFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestLoadSettings_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"unknown zone", `{"time_zone": "Mars/Olympus"}`, "invalid time_zone"},
		{"negative max log files", `{"max_log_files": -1}`, "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadSettingsFrom(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	t.Setenv("GITCOORDS_HOME", home)

	maxLogFiles := 3
	require.NoError(t, SaveSettings(&Settings{DefaultAuthority: "gitlab.com", MaxLogFiles: &maxLogFiles}))

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "gitlab.com", settings.DefaultAuthority)
	assert.Equal(t, 3, *settings.MaxLogFiles)
}

func TestSettings_AuthorityPrecedence(t *testing.T) {
	t.Setenv("GITCOORDS_AUTHORITY", "")

	var nilSettings *Settings
	assert.Equal(t, DefaultAuthority, nilSettings.Authority())
	assert.Equal(t, DefaultAuthority, (&Settings{}).Authority())
	assert.Equal(t, "gitlab.com", (&Settings{DefaultAuthority: "gitlab.com"}).Authority())

	t.Setenv("GITCOORDS_AUTHORITY", "git.example.org:2222")
	assert.Equal(t, "git.example.org:2222", (&Settings{DefaultAuthority: "gitlab.com"}).Authority())
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	assert.Len(t, example, 6)
	assert.Equal(t, DefaultAuthority, example["default_authority"])
	assert.Equal(t, DefaultMaxLogFiles, example["max_log_files"])
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, "Europe/Paris", example["time_zone"])
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "x"), ExpandPath("~/x"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}
