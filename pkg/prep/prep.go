// pkg/prep/prep.go
package prep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"

	"github.com/hostprep/hostprep/pkg/buildsys"
	"github.com/hostprep/hostprep/pkg/core"
	"github.com/hostprep/hostprep/pkg/pkgmgr"
	"github.com/hostprep/hostprep/pkg/plan"
	"github.com/hostprep/hostprep/pkg/verify"
)

// Builder abstracts the external build toolchain invoked after the
// verification gate.
type Builder interface {
	BuildAndInstall(ctx context.Context) error
}

// Prep sequences one preparation run: execute the install plan for the
// detected manager kind (best effort, step failures are warnings), verify
// the environment (the single fatal gate), then build and install.
//
// The kind is fixed at construction; Prep never rediscovers it.
type Prep struct {
	kind      pkgmgr.Kind
	cfg       *core.Config
	out       io.Writer
	installer *pkgmgr.Installer
	resolver  *pkgmgr.Resolver
	verifier  *verify.Verifier
	builder   Builder
}

// New creates a preparation run for the given manager kind
func New(kind pkgmgr.Kind, r pkgmgr.Runner, cfg *core.Config, out io.Writer) *Prep {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}
	logger := log.New(out, "", 0)
	installer := pkgmgr.NewInstaller(kind, r, logger)

	return &Prep{
		kind:      kind,
		cfg:       cfg,
		out:       out,
		installer: installer,
		resolver:  pkgmgr.NewResolver(installer, logger),
		verifier:  verify.New(r),
		builder:   buildsys.New(cfg.Build, r),
	}
}

// Kind returns the manager kind this run is bound to
func (p *Prep) Kind() pkgmgr.Kind {
	return p.kind
}

// Run executes the full preparation and returns the process exit status:
// 0 on success, 1 when verification fails or the build step does.
func (p *Prep) Run(ctx context.Context) int {
	p.installAll(ctx)

	report := p.Verify(ctx)
	if missing := report.Missing(); missing > 0 {
		fmt.Fprintln(p.out, color.RedString("%d required dependencies missing; install them manually and re-run", missing))
		return 1
	}
	fmt.Fprintln(p.out, color.GreenString("environment ready"))

	if err := p.builder.BuildAndInstall(ctx); err != nil {
		fmt.Fprintln(p.out, color.RedString("build failed: %v", err))
		return 1
	}
	return 0
}

// Verify runs the dependency checks and prints each result. It never
// installs anything.
func (p *Prep) Verify(ctx context.Context) verify.Report {
	lib := verify.Library{Name: p.cfg.Library.Name, Header: p.cfg.Library.Header}
	report := p.verifier.Verify(ctx, p.cfg.RequiredTools, lib)

	for _, c := range report.Checks {
		if c.Found {
			fmt.Fprintf(p.out, "%s %s %s\n", color.GreenString("✓"), c.Kind, c.Name)
		} else {
			fmt.Fprintf(p.out, "%s %s %s not found\n", color.RedString("✗"), c.Kind, c.Name)
		}
	}
	return report
}

// installAll drives the install plan. Every step is best effort: failures
// are warned about and the plan continues, because the verification gate
// afterwards is the only fatal check.
func (p *Prep) installAll(ctx context.Context) {
	pl, ok := plan.Lookup(p.kind)
	if !ok {
		p.manualInstructions()
		return
	}

	fmt.Fprintf(p.out, "Using package manager: %s\n", p.kind)

	for _, pkg := range pl.Required {
		fmt.Fprintf(p.out, "Installing %s...\n", pkg)
		if out := p.installer.Install(ctx, pkg); !out.OK {
			fmt.Fprintln(p.out, color.YellowString("warning: install %s failed (exit %d); install it manually if verification fails", pkg, out.Code))
		}
	}

	if len(pl.Library) > 0 {
		fmt.Fprintf(p.out, "Installing %s development library...\n", p.cfg.Library.Name)
		res, err := p.resolver.Resolve(ctx, pl.Library)
		if err != nil {
			var agg *pkgmgr.AggregateError
			if errors.As(err, &agg) {
				fmt.Fprintln(p.out, color.YellowString("warning: %v; install one of them manually", agg))
			}
		} else if p.cfg.Debug {
			fmt.Fprintf(p.out, "installed %s (%d candidates failed first)\n", res.Package, len(res.Failed))
		}
	}

	for _, pkg := range pl.Extras {
		if out := p.installer.Install(ctx, pkg); !out.OK {
			fmt.Fprintln(p.out, color.YellowString("warning: optional package %s not installed (exit %d); install it manually if needed", pkg, out.Code))
		}
	}
}

// manualInstructions replaces the whole plan when no supported package
// manager was detected. The run still proceeds to verification: the host
// may already have everything installed.
func (p *Prep) manualInstructions() {
	fmt.Fprintln(p.out, color.YellowString("no supported package manager found (tried pacman, apt-get, dnf, apk, zypper)"))
	fmt.Fprintln(p.out, "install the following with your system's package manager, then re-run:")
	for _, tool := range p.cfg.RequiredTools {
		fmt.Fprintf(p.out, "  - %s\n", tool)
	}
	fmt.Fprintf(p.out, "  - %s development headers (%s)\n", p.cfg.Library.Name, p.cfg.Library.Header)
}
