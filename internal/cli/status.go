package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show monitors and current brightness",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if percent, err := brightnessClient().Get(ctx); err == nil {
			fmt.Printf("Brightness: %d%%\n", percent)
		} else {
			logger.Debug().Err(err).Msg("brightness unavailable")
			fmt.Println("Brightness: unavailable")
		}

		monitors := hyprClient().Monitors(ctx)
		if len(monitors) == 0 {
			fmt.Println("No monitors detected.")
			return nil
		}

		for _, mon := range monitors {
			fmt.Printf("%s  %s @ %s  pos %dx%d  scale %g\n",
				mon.Name,
				mon.Current.Resolution(), mon.Current.Refresh(),
				mon.X, mon.Y, mon.Scale)
		}
		return nil
	},
}
