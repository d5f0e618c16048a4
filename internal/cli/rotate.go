package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/display-labs/displayctl/internal/hypr"
)

func init() {
	rootCmd.AddCommand(rotateCmd)
}

var rotateCmd = &cobra.Command{
	Use:       "rotate <orientation>",
	Short:     "Rotate the screen",
	Long:      "Rotate the screen to one of: normal, left, inverted, right.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"normal", "left", "inverted", "right"},
	RunE: func(cmd *cobra.Command, args []string) error {
		orientation, err := hypr.ParseOrientation(args[0])
		if err != nil {
			return err
		}

		logger.Debug().Stringer("orientation", orientation).Msg("rotating")
		return hyprClient().SetTransform(context.Background(), orientation)
	},
}
