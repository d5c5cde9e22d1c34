package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITCOORDS_DEBUG", "")
	t.Setenv("GITCOORDS_DEBUG_FILE", "")
	t.Setenv("GITCOORDS_MAX_LOG_FILES", "")
}

func TestOptionsFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		opts     Options
		expected Options
	}{
		{"nothing set", nil, Options{MaxLogFiles: DefaultMaxLogFiles}, Options{MaxLogFiles: DefaultMaxLogFiles}},
		{"debug env", map[string]string{"GITCOORDS_DEBUG": "1"}, Options{MaxLogFiles: DefaultMaxLogFiles}, Options{Debug: true, MaxLogFiles: DefaultMaxLogFiles}},
		{"file env", map[string]string{"GITCOORDS_DEBUG_FILE": "/tmp/x.log"}, Options{}, Options{File: "/tmp/x.log"}},
		{"explicit file wins", map[string]string{"GITCOORDS_DEBUG_FILE": "/tmp/x.log"}, Options{File: "/tmp/y.log"}, Options{File: "/tmp/y.log"}},
		{"max files env", map[string]string{"GITCOORDS_MAX_LOG_FILES": "7"}, Options{MaxLogFiles: DefaultMaxLogFiles}, Options{MaxLogFiles: 7}},
		{"explicit max files wins", map[string]string{"GITCOORDS_MAX_LOG_FILES": "7"}, Options{MaxLogFiles: 3}, Options{MaxLogFiles: 3}},
		{"bad max files ignored", map[string]string{"GITCOORDS_MAX_LOG_FILES": "lots"}, Options{MaxLogFiles: DefaultMaxLogFiles}, Options{MaxLogFiles: DefaultMaxLogFiles}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.expected, tt.opts.FromEnv())
		})
	}
}

func TestInitialize_DiscardsWhenDebugOff(t *testing.T) {
	clearEnv(t)

	path, err := Initialize(Options{MaxLogFiles: DefaultMaxLogFiles})
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_FixedFile(t *testing.T) {
	clearEnv(t)
	debugFile := filepath.Join(t.TempDir(), "sub", "debug.log")

	path, err := Initialize(Options{File: debugFile, MaxLogFiles: DefaultMaxLogFiles})
	require.NoError(t, err)
	assert.Equal(t, debugFile, path)

	Logger.Debug("hello", "key", "value")

	data, err := os.ReadFile(debugFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"key":"value"`)
}

func TestInitialize_RotatedFileInStateDir(t *testing.T) {
	clearEnv(t)
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Setenv("HOME", t.TempDir())

	path, err := Initialize(Options{Debug: true, MaxLogFiles: DefaultMaxLogFiles})
	require.NoError(t, err)
	require.NotEmpty(t, path)
	assert.Equal(t, ".log", filepath.Ext(path))
	assert.FileExists(t, path)
}

func TestPruneLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		p := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(p, modTime, modTime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0644))

	require.NoError(t, pruneLogs(dir, 2))

	assert.NoFileExists(t, filepath.Join(dir, "0.log"))
	assert.NoFileExists(t, filepath.Join(dir, "1.log"))
	assert.NoFileExists(t, filepath.Join(dir, "2.log"))
	assert.FileExists(t, filepath.Join(dir, "3.log"))
	assert.FileExists(t, filepath.Join(dir, "4.log"))
	assert.FileExists(t, filepath.Join(dir, "keep.txt"))
}

func TestPruneLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, pruneLogs(dir, 2))
	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
