// pkg/verify/verify.go
package verify

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hostprep/hostprep/pkg/pkgmgr"
)

// CheckKind distinguishes what a check probed for
type CheckKind string

const (
	// CheckTool is a resolvable-on-path probe for an executable
	CheckTool CheckKind = "tool"
	// CheckLibrary is a development-library probe
	CheckLibrary CheckKind = "library"
)

// Check is the result of probing for one tool or library
type Check struct {
	Name  string
	Kind  CheckKind
	Found bool
}

// Report aggregates the checks of one verification pass. It is computed
// strictly after all install steps complete, never interleaved with them.
type Report struct {
	Checks []Check
}

// Missing returns the number of failed checks. The run may proceed to the
// build step only when this is zero.
func (r Report) Missing() int {
	n := 0
	for _, c := range r.Checks {
		if !c.Found {
			n++
		}
	}
	return n
}

// Library names what to probe for when checking a development library
type Library struct {
	// Name is the pkg-config module name (e.g. "ncurses")
	Name string
	// Header is the header file searched under the include roots when
	// pkg-config is unavailable or reports the module missing
	Header string
}

// defaultIncludeRoots are the fallback locations searched for a library
// header when the pkg-config query cannot settle the question.
var defaultIncludeRoots = []string{"/usr/include", "/usr/local/include"}

// Verifier checks that required tools and libraries are present. It only
// queries the environment and never installs anything.
type Verifier struct {
	runner pkgmgr.Runner

	// IncludeRoots are the directories searched for library headers
	IncludeRoots []string
}

// New creates a verifier probing the standard include roots
func New(r pkgmgr.Runner) *Verifier {
	return &Verifier{runner: r, IncludeRoots: defaultIncludeRoots}
}

// Tool reports whether name resolves on the search path
func (v *Verifier) Tool(name string) bool {
	_, err := v.runner.LookPath(name)
	return err == nil
}

// HasLibrary reports whether the development library is present. It asks
// pkg-config first when available; on a miss it falls back to probing the
// include roots for the library's header file.
func (v *Verifier) HasLibrary(ctx context.Context, lib Library) bool {
	if v.Tool("pkg-config") {
		if code, err := v.runner.Run(ctx, nil, "pkg-config", "--exists", lib.Name); err == nil && code == 0 {
			return true
		}
	}

	for _, root := range v.IncludeRoots {
		if _, err := os.Stat(filepath.Join(root, lib.Header)); err == nil {
			return true
		}
	}
	return false
}

// Verify probes every required tool and the library and aggregates the
// results. Every miss is an individual entry so the caller can report each
// one with its own remediation hint.
func (v *Verifier) Verify(ctx context.Context, tools []string, lib Library) Report {
	var report Report
	for _, tool := range tools {
		report.Checks = append(report.Checks, Check{
			Name:  tool,
			Kind:  CheckTool,
			Found: v.Tool(tool),
		})
	}
	report.Checks = append(report.Checks, Check{
		Name:  lib.Name,
		Kind:  CheckLibrary,
		Found: v.HasLibrary(ctx, lib),
	})
	return report
}
