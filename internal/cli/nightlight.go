package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/display-labs/displayctl/internal/sunset"
)

var (
	nightlightOnTemp int
	nightlightFade   bool
)

func init() {
	rootCmd.AddCommand(nightlightCmd)
	nightlightCmd.AddCommand(nightlightOnCmd)
	nightlightCmd.AddCommand(nightlightOffCmd)
	nightlightCmd.AddCommand(nightlightTempCmd)

	nightlightOnCmd.Flags().IntVarP(&nightlightOnTemp, "temp", "t", 4500, "color temperature in Kelvin")
	nightlightTempCmd.Flags().BoolVar(&nightlightFade, "fade", false, "fade smoothly to the new temperature")
}

var nightlightCmd = &cobra.Command{
	Use:     "nightlight",
	Aliases: []string{"nl"},
	Short:   "Control the blue-light filter",
	Long: `Control the hyprsunset blue-light filter.

Temperatures range from 2500K (warmest) to 6500K (neutral daylight).`,
}

var nightlightOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Enable the night light",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kelvin := sunset.ClampTemp(nightlightOnTemp)
		logger.Debug().Int("kelvin", kelvin).Msg("enabling night light")
		return sunsetManager().Enable(context.Background(), kelvin)
	},
}

var nightlightOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable the night light",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sunsetManager().Disable(context.Background())
	},
}

var nightlightTempCmd = &cobra.Command{
	Use:   "temp <kelvin>",
	Short: "Adjust the temperature of a running night light",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kelvin, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid temperature %q", args[0])
		}

		mgr := sunsetManager()
		if nightlightFade {
			return mgr.Fade(kelvin, GetConfig().NightLight.FadeSeconds)
		}
		return mgr.SetTemperature(context.Background(), kelvin)
	},
}
