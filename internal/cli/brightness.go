package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(brightnessCmd)
	brightnessCmd.AddCommand(brightnessGetCmd)
	brightnessCmd.AddCommand(brightnessSetCmd)
}

var brightnessCmd = &cobra.Command{
	Use:   "brightness",
	Short: "Get or set screen brightness",
}

var brightnessGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current brightness percentage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, err := brightnessClient().Get(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%d%%\n", percent)
		return nil
	},
}

var brightnessSetCmd = &cobra.Command{
	Use:   "set <percent>",
	Short: "Set brightness to a percentage (1-100)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid percentage %q", args[0])
		}

		logger.Debug().Int("percent", percent).Msg("setting brightness")
		return brightnessClient().Set(context.Background(), percent)
	},
}
