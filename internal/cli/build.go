// internal/cli/build.go
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hostprep/hostprep"
	"github.com/hostprep/hostprep/pkg/buildsys"
	"github.com/hostprep/hostprep/pkg/pkgmgr"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and install without preparing the environment first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := pkgmgr.ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}

		if err := buildsys.New(config.Build, runner).BuildAndInstall(cmd.Context()); err != nil {
			return &hostprep.Error{Op: "build", Err: err}
		}
		return nil
	},
}
