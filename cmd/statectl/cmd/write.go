package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/cobra"

	"github.com/milk9111/wherewasi/ecs/component"
	"github.com/milk9111/wherewasi/state"
)

var (
	writeTranslation string
	writeRotation    string
	writeScale       string
)

var writeCmd = &cobra.Command{
	Use:   "write <file>",
	Short: "Write a .state file from flag values",
	Long: `Write a .state file from flag values. Unset flags keep their identity
defaults (zero translation, identity rotation, unit scale).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := component.IdentityTransform()

		if writeTranslation != "" {
			v, err := parseFloats(writeTranslation, 3)
			if err != nil {
				return fmt.Errorf("--translation: %w", err)
			}
			t.Translation = mgl32.Vec3{v[0], v[1], v[2]}
		}
		if writeRotation != "" {
			v, err := parseFloats(writeRotation, 4)
			if err != nil {
				return fmt.Errorf("--rotation: %w", err)
			}
			t.Rotation = mgl32.Quat{W: v[3], V: mgl32.Vec3{v[0], v[1], v[2]}}
		}
		if writeScale != "" {
			v, err := parseFloats(writeScale, 3)
			if err != nil {
				return fmt.Errorf("--scale: %w", err)
			}
			t.Scale = mgl32.Vec3{v[0], v[1], v[2]}
		}

		path := args[0]
		name := strings.TrimSuffix(filepath.Base(path), state.Ext)
		return state.Save(filepath.Dir(path), name, t)
	},
}

func parseFloats(s string, n int) ([]float32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma-separated values, got %d", n, len(parts))
	}
	out := make([]float32, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", p, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func init() {
	writeCmd.Flags().StringVar(&writeTranslation, "translation", "", "x,y,z")
	writeCmd.Flags().StringVar(&writeRotation, "rotation", "", "x,y,z,w quaternion")
	writeCmd.Flags().StringVar(&writeScale, "scale", "", "x,y,z")
	rootCmd.AddCommand(writeCmd)
}
