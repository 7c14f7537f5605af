// pkg/pkgmgr/installer.go
package pkgmgr

import (
	"context"
	"log"
)

// CodeUnknownManager is the outcome code reported when installing against
// KindUnknown. No external command is attempted in that case. It is an
// internal signal, never a process exit status.
const CodeUnknownManager = 2

// sudoBin wraps every install and refresh invocation; package installation
// requires elevated privileges on all supported managers.
const sudoBin = "sudo"

// Outcome reports one install attempt for one package. Code preserves the
// manager's exit status for diagnostics.
type Outcome struct {
	OK   bool
	Code int
}

// Installer issues non-interactive install commands for one manager kind.
// The kind is fixed at construction and never rediscovered or mutated.
//
// Install failures are reported through the Outcome, never as a fatal
// error, so callers can apply their own fallback policy.
type Installer struct {
	kind      Kind
	runner    Runner
	logger    *log.Logger
	refreshed bool
}

// NewInstaller creates an installer bound to kind. logger may be nil.
func NewInstaller(kind Kind, r Runner, logger *log.Logger) *Installer {
	return &Installer{kind: kind, runner: r, logger: logger}
}

// Kind returns the manager kind this installer is bound to
func (in *Installer) Kind() Kind {
	return in.kind
}

// Install installs a single package. Re-installing an already-installed
// package is expected to succeed trivially. For kinds that need it, the
// package index is refreshed once per Installer before the first install;
// repeating the refresh before every install only rebuilds the same lists.
func (in *Installer) Install(ctx context.Context, pkg string) Outcome {
	cmds, ok := commandTable[in.kind]
	if !ok {
		return Outcome{OK: false, Code: CodeUnknownManager}
	}

	if cmds.refreshArgs != nil && !in.refreshed {
		in.refreshed = true
		args := append([]string{cmds.bin}, cmds.refreshArgs...)
		if code, err := in.runner.Run(ctx, cmds.env, sudoBin, args...); err != nil || code != 0 {
			in.logf("warning: %s index refresh failed (exit %d)", in.kind, code)
		}
	}

	args := append([]string{cmds.bin}, cmds.installArgs...)
	args = append(args, pkg)

	code, err := in.runner.Run(ctx, cmds.env, sudoBin, args...)
	if err != nil {
		in.logf("warning: could not invoke %s: %v", in.kind, err)
		return Outcome{OK: false, Code: -1}
	}
	return Outcome{OK: code == 0, Code: code}
}

func (in *Installer) logf(format string, v ...any) {
	if in.logger != nil {
		in.logger.Printf(format, v...)
	}
}
