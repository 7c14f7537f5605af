// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds hostprep configuration. Every field defaults to the
// standard unconditional run; a config file only overrides details such as
// where the source tree lives.
type Config struct {
	Debug bool `yaml:"debug"`

	// RequiredTools are verified on the search path after the install phase
	RequiredTools []string `yaml:"required_tools"`

	// Library is the development library verified after the install phase
	Library LibraryConfig `yaml:"library"`

	// Build configures the CMake step run once verification passes
	Build BuildConfig `yaml:"build"`
}

// LibraryConfig names the library to verify
type LibraryConfig struct {
	Name   string `yaml:"name"`   // pkg-config module name
	Header string `yaml:"header"` // header probed under the include roots
}

// BuildConfig configures the build and install step
type BuildConfig struct {
	SourceDir     string `yaml:"source_dir"`
	BuildDir      string `yaml:"build_dir"`
	InstallPrefix string `yaml:"install_prefix"`
	BuildType     string `yaml:"build_type"`

	// Binary, when set, is checked under BuildDir after the build; a
	// missing binary fails the run even if the build toolchain exited zero
	Binary string `yaml:"binary"`
}

// DefaultConfig returns the configuration of the standard run
func DefaultConfig() *Config {
	return &Config{
		RequiredTools: []string{"gcc", "make", "cmake"},
		Library: LibraryConfig{
			Name:   "ncurses",
			Header: "ncurses.h",
		},
		Build: BuildConfig{
			SourceDir:     ".",
			BuildDir:      "build",
			InstallPrefix: "/usr/local",
			BuildType:     "Release",
		},
	}
}

// LoadConfig loads configuration from file. A missing file is not an
// error: the defaults describe the standard run.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "github.com/hostprep/hostprep", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
