// internal/cli/verify.go
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hostprep/hostprep"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check required tools and libraries without installing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := hostprep.New(config, os.Stdout)
		if report := p.Verify(cmd.Context()); report.Missing() > 0 {
			return &hostprep.Error{Op: "verify", Err: hostprep.ErrNotReady}
		}
		return nil
	},
}
