// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hostprep/hostprep/pkg/core"
)

var (
	cfgFile string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command. Running it without a subcommand
// performs the full unconditional preparation run.
var rootCmd = &cobra.Command{
	Use:   "hostprep",
	Short: "Prepare the host for building the application",
	Long: `hostprep - Build environment preparation

Detects the system package manager, installs the required build toolchain
and development libraries, verifies the environment is ready, then builds
and installs the application.`,
	Version:       "0.1.0",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPrepare,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/hostprep/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	// Add commands
	rootCmd.AddCommand(prepareCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	if debug {
		config.Debug = true
	}

	// Colored output only on an interactive terminal
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}
