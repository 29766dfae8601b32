package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/milk9111/wherewasi/state"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Decode a .state file and print its transform",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		t, err := state.Decode(state.Lines(f))
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}

		fmt.Printf("translation: %v %v %v\n", t.Translation.X(), t.Translation.Y(), t.Translation.Z())
		fmt.Printf("rotation:    %v %v %v %v\n", t.Rotation.X(), t.Rotation.Y(), t.Rotation.Z(), t.Rotation.W)
		fmt.Printf("scale:       %v %v %v\n", t.Scale.X(), t.Scale.Y(), t.Scale.Z())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
