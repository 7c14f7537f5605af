// pkg/core/config_test.go
package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, []string{"gcc", "make", "cmake"}, cfg.RequiredTools)
	require.Equal(t, "ncurses", cfg.Library.Name)
	require.Equal(t, "ncurses.h", cfg.Library.Header)
	require.Equal(t, "Release", cfg.Build.BuildType)
	require.False(t, cfg.Debug)
}

func TestLoadConfigMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
debug: true
library:
  name: readline
  header: readline/readline.h
build:
  source_dir: /srv/app
  binary: app
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.True(t, cfg.Debug)
	require.Equal(t, "readline", cfg.Library.Name)
	require.Equal(t, "readline/readline.h", cfg.Library.Header)
	require.Equal(t, "/srv/app", cfg.Build.SourceDir)
	require.Equal(t, "app", cfg.Build.Binary)

	// Untouched fields keep their defaults.
	require.Equal(t, []string{"gcc", "make", "cmake"}, cfg.RequiredTools)
	require.Equal(t, "build", cfg.Build.BuildDir)
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: [notabool"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
