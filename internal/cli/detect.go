// internal/cli/detect.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostprep/hostprep"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Print the detected package manager",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(hostprep.Detect())
	},
}
