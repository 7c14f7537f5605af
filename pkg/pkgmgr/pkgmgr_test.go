// pkg/pkgmgr/pkgmgr_test.go
package pkgmgr

import (
	"context"
	"errors"
	"strings"
)

// fakeRunner fakes executable lookup and process execution. Exit codes are
// keyed on the last argument of the invocation (the package name for
// installs, the subcommand for refreshes).
type fakeRunner struct {
	available map[string]bool
	exitCodes map[string]int
	startErr  map[string]error
	calls     []fakeCall
}

type fakeCall struct {
	name string
	args []string
	env  []string
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.available[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeRunner) Run(ctx context.Context, env []string, name string, args ...string) (int, error) {
	f.calls = append(f.calls, fakeCall{name: name, args: args, env: env})
	key := name
	if len(args) > 0 {
		key = args[len(args)-1]
	}
	if err, ok := f.startErr[key]; ok {
		return -1, err
	}
	if code, ok := f.exitCodes[key]; ok {
		return code, nil
	}
	return 0, nil
}

// command renders one recorded call for easy comparison
func (c fakeCall) command() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}
