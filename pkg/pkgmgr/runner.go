// pkg/pkgmgr/runner.go
package pkgmgr

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner abstracts executable lookup and process execution so installs and
// probes can be faked in tests without touching the host.
type Runner interface {
	// LookPath reports where name resolves on the search path
	LookPath(name string) (string, error)

	// Run executes name with args and extra environment, returning the
	// process exit code. err is non-nil only when the process could not
	// be started at all.
	Run(ctx context.Context, env []string, name string, args ...string) (int, error)
}

// ExecRunner runs commands on the host
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates a runner wired to the process's stdout/stderr
func NewExecRunner() ExecRunner {
	return ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// LookPath checks if a command is available in PATH
func (r ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run executes the command synchronously and returns its exit code
func (r ExecRunner) Run(ctx context.Context, env []string, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
