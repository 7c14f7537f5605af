// hostprep.go
package hostprep

import (
	"io"

	"github.com/hostprep/hostprep/pkg/core"
	"github.com/hostprep/hostprep/pkg/pkgmgr"
	"github.com/hostprep/hostprep/pkg/prep"
	"github.com/hostprep/hostprep/pkg/verify"
)

// Re-export the core types for convenience
type (
	Kind   = pkgmgr.Kind
	Config = core.Config
	Report = verify.Report
)

// Re-export the manager kinds
const (
	KindPacman  = pkgmgr.KindPacman
	KindApt     = pkgmgr.KindApt
	KindDnf     = pkgmgr.KindDnf
	KindApk     = pkgmgr.KindApk
	KindZypper  = pkgmgr.KindZypper
	KindUnknown = pkgmgr.KindUnknown
)

// DefaultConfig returns the configuration of the standard run
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Detect probes the host for a supported package manager
func Detect() Kind {
	return pkgmgr.Detect(pkgmgr.NewExecRunner())
}

// New detects the host's package manager once and creates a preparation
// run bound to it, writing progress to out.
func New(cfg *Config, out io.Writer) *prep.Prep {
	r := pkgmgr.ExecRunner{Stdout: out, Stderr: out}
	return prep.New(pkgmgr.Detect(r), r, cfg, out)
}
