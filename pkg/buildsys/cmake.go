// pkg/buildsys/cmake.go
package buildsys

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hostprep/hostprep/pkg/core"
	"github.com/hostprep/hostprep/pkg/pkgmgr"
)

// ErrBinaryNotProduced indicates the build exited cleanly but the expected
// binary is missing from the build directory
var ErrBinaryNotProduced = errors.New("binary not produced")

// Error wraps a build step failure with the step that failed
type Error struct {
	Step string // configure, build, install
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CMake drives the configure, build and install steps for the prepared
// source tree. It runs only after the verification gate has passed.
type CMake struct {
	cfg    core.BuildConfig
	runner pkgmgr.Runner
}

// New creates a CMake build for the given configuration
func New(cfg core.BuildConfig, r pkgmgr.Runner) *CMake {
	return &CMake{cfg: cfg, runner: r}
}

// BuildAndInstall configures, builds and installs the source tree. Any
// failing step aborts immediately; there is no best-effort policy past the
// verification gate.
func (c *CMake) BuildAndInstall(ctx context.Context) error {
	configureArgs := []string{"-S", c.cfg.SourceDir, "-B", c.cfg.BuildDir}
	if c.cfg.BuildType != "" {
		configureArgs = append(configureArgs, "-DCMAKE_BUILD_TYPE="+c.cfg.BuildType)
	}
	if c.cfg.InstallPrefix != "" {
		configureArgs = append(configureArgs, "-DCMAKE_INSTALL_PREFIX="+c.cfg.InstallPrefix)
	}
	if err := c.run(ctx, "configure", configureArgs...); err != nil {
		return err
	}

	if err := c.run(ctx, "build", "--build", c.cfg.BuildDir); err != nil {
		return err
	}

	if c.cfg.Binary != "" {
		if _, err := os.Stat(filepath.Join(c.cfg.BuildDir, c.cfg.Binary)); err != nil {
			return &Error{Step: "build", Err: ErrBinaryNotProduced}
		}
	}

	return c.run(ctx, "install", "--install", c.cfg.BuildDir)
}

func (c *CMake) run(ctx context.Context, step string, args ...string) error {
	code, err := c.runner.Run(ctx, nil, "cmake", args...)
	if err != nil {
		return &Error{Step: step, Err: err}
	}
	if code != 0 {
		return &Error{Step: step, Err: fmt.Errorf("cmake exited with status %d", code)}
	}
	return nil
}
