// pkg/plan/plan.go
package plan

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/hostprep/hostprep/pkg/pkgmgr"
)

//go:embed plans.toml
var plansTOML string

// Plan lists what one manager kind must install before the build. Every
// step is best effort: a failed install is warned about and skipped, and
// only the verification gate afterwards is fatal.
type Plan struct {
	// Required packages, installed one by one under their exact names
	Required []string `toml:"required"`

	// Library holds the candidate names for the development library whose
	// packaging differs across distros. Order is preference order: the
	// first name that installs wins and the rest are never attempted.
	Library []string `toml:"library"`

	// Extras are optional packages; failures here are expected on minimal
	// systems and carry no remediation hint
	Extras []string `toml:"extras"`
}

type table struct {
	Plans map[string]Plan `toml:"plans"`
}

var plans map[string]Plan

func init() {
	var t table
	if _, err := toml.Decode(plansTOML, &t); err != nil {
		panic(fmt.Sprintf("plan: parsing embedded plans.toml: %v", err))
	}
	plans = t.Plans
}

// Lookup returns the install plan for kind. ok is false for kinds without
// a plan, in particular KindUnknown.
func Lookup(kind pkgmgr.Kind) (Plan, bool) {
	p, ok := plans[string(kind)]
	return p, ok
}
