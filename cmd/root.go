package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFlag points at an optional YAML file with extra language profiles.
var configFlag string

// rootCmd is the base command for the CLI. It doesn’t run anything itself
// unless the user runs it with no subcommands.
var rootCmd = &cobra.Command{
	Use:   "stripcomments",
	Short: "Stripcomments removes comments from source code.",
	Long: `Stripcomments is a command-line utility that removes single-line and
block comments from source code using per-language patterns, collapses
the blank lines left behind, and prints (or saves) the cleaned code.`,
	SilenceUsage: true,
	// Config has to be merged before any subcommand touches the registry.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFlag == "" {
			return nil
		}
		return loadConfig(configFlag)
	},
}

// Execute is called by main.go to run the root command.
// If an error occurs, we print to stderr and exit.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// init sets up the persistent flags. The subcommands add themselves in
// their own files’ init() functions.
func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"YAML file with extra language profiles and extension overrides")
}
