package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "statectl",
	Short: "Inspect and write transform .state files",
	Long: `statectl works with the .state files a wherewasi game writes on close:
show a file's transform, verify that a file still decodes, or write a
file by hand.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
