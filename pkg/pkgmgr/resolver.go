// pkg/pkgmgr/resolver.go
package pkgmgr

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Attempt records one candidate install attempt
type Attempt struct {
	Package string
	Code    int
}

// AggregateError reports that every candidate name for one package failed
// to install. It carries every attempt so the operator can be told exactly
// which names were tried and install one manually.
type AggregateError struct {
	Attempts []Attempt
}

func (e *AggregateError) Error() string {
	names := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		names[i] = a.Package
	}
	return fmt.Sprintf("no candidate installed, tried: %s", strings.Join(names, ", "))
}

// Resolution reports the outcome of a candidate search: the name that
// installed and the attempts that failed before it.
type Resolution struct {
	Package string
	Failed  []Attempt
}

// Resolver tries alternative package names in preference order until one
// installs. Candidates are assumed functionally equivalent; order encodes
// preference across distro naming conventions, not correctness.
type Resolver struct {
	installer *Installer
	logger    *log.Logger
}

// NewResolver creates a resolver driving the given installer. logger may be nil.
func NewResolver(in *Installer, logger *log.Logger) *Resolver {
	return &Resolver{installer: in, logger: logger}
}

// Resolve iterates candidates strictly in list order and commits to the
// first one that installs; later candidates are never attempted and earlier
// failures are never retried. Each failure is logged as a warning. When
// every candidate fails the returned error is an *AggregateError; the
// caller decides whether that aborts anything.
func (r *Resolver) Resolve(ctx context.Context, candidates []string) (Resolution, error) {
	var failed []Attempt
	for _, pkg := range candidates {
		out := r.installer.Install(ctx, pkg)
		if out.OK {
			return Resolution{Package: pkg, Failed: failed}, nil
		}
		failed = append(failed, Attempt{Package: pkg, Code: out.Code})
		r.logf("warning: install %s failed (exit %d), trying next candidate", pkg, out.Code)
	}
	return Resolution{Failed: failed}, &AggregateError{Attempts: failed}
}

func (r *Resolver) logf(format string, v ...any) {
	if r.logger != nil {
		r.logger.Printf(format, v...)
	}
}
