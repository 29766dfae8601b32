package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/wherewasi/state"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file>...",
	Short: "Check that .state files decode",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bad := 0
		for _, path := range args {
			if err := verifyFile(path); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				bad++
				continue
			}
			fmt.Printf("%s: ok\n", path)
		}
		if bad > 0 {
			return fmt.Errorf("%d file(s) failed to decode", bad)
		}
		return nil
	},
}

func verifyFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = state.Decode(state.Lines(f))
	return err
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
