// pkg/pkgmgr/kind.go
package pkgmgr

// Kind identifies the system package manager driving a run
type Kind string

const (
	// KindPacman uses the Arch Linux package manager
	KindPacman Kind = "pacman"
	// KindApt uses the Debian/Ubuntu package manager
	KindApt Kind = "apt"
	// KindDnf uses the Fedora package manager
	KindDnf Kind = "dnf"
	// KindApk uses the Alpine package manager
	KindApk Kind = "apk"
	// KindZypper uses the openSUSE package manager
	KindZypper Kind = "zypper"
	// KindUnknown means no supported package manager was found
	KindUnknown Kind = "unknown"
)

// String returns the kind's manager name
func (k Kind) String() string {
	return string(k)
}

// commands describes how to drive one manager kind: which executable to
// probe for, how to install non-interactively, and whether the package
// index must be refreshed before installing.
type commands struct {
	bin         string   // executable probed during detection
	installArgs []string // subcommand and flags placed before the package name
	refreshArgs []string // index-refresh invocation, nil when the kind needs none
	env         []string // extra environment for non-interactive installs
}

// commandTable maps each kind to its invocation shape. Adding a manager is
// an entry here plus a plan entry, not new branch logic.
var commandTable = map[Kind]commands{
	KindPacman: {
		bin:         "pacman",
		installArgs: []string{"-S", "--noconfirm", "--needed"},
	},
	KindApt: {
		bin:         "apt-get",
		installArgs: []string{"install", "-y"},
		refreshArgs: []string{"update"},
		env:         []string{"DEBIAN_FRONTEND=noninteractive"},
	},
	KindDnf: {
		bin:         "dnf",
		installArgs: []string{"install", "-y"},
	},
	KindApk: {
		bin:         "apk",
		installArgs: []string{"add"},
	},
	KindZypper: {
		bin:         "zypper",
		installArgs: []string{"--non-interactive", "install"},
	},
}

// detectOrder is the detection priority. It only matters on hosts with
// more than one manager installed and must not be reordered.
var detectOrder = []Kind{KindPacman, KindApt, KindDnf, KindApk, KindZypper}
