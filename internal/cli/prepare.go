// internal/cli/prepare.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostprep/hostprep"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Install build dependencies, verify, then build and install",
	Args:  cobra.NoArgs,
	RunE:  runPrepare,
}

func runPrepare(cmd *cobra.Command, args []string) error {
	// The manager kind is detected once inside New; everything downstream
	// receives it as a value.
	p := hostprep.New(config, os.Stdout)
	if config.Debug {
		fmt.Printf("Detected package manager: %s\n", p.Kind())
	}

	// Run returns the process exit status; anything non-zero means the
	// verification gate or the build step failed.
	if status := p.Run(cmd.Context()); status != 0 {
		return &hostprep.Error{Op: "prepare", Err: hostprep.ErrNotReady}
	}
	return nil
}
