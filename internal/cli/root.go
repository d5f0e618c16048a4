// Package cli implements the displayctl command line interface.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/display-labs/displayctl/internal/brightness"
	"github.com/display-labs/displayctl/internal/config"
	"github.com/display-labs/displayctl/internal/hypr"
	"github.com/display-labs/displayctl/internal/logging"
	"github.com/display-labs/displayctl/internal/sunset"
)

var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string

	appConfig *config.Config
	logger    zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "displayctl",
	Short: "Control display settings on Hyprland",
	Long: `displayctl adjusts screen brightness, night-light color temperature,
screen rotation, and monitor resolution/refresh rate on Hyprland.

It drives brightnessctl, hyprsunset, and hyprctl, and follows the active
Omarchy theme for its UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(flagVerbose, flagQuiet)

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log executed commands")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress all log output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the loaded configuration, or defaults when commands run
// outside the cobra lifecycle (tests).
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

func hyprClient() *hypr.Client {
	return hypr.NewClient(nil, hypr.WithBinary(GetConfig().Tools.Hyprctl))
}

func brightnessClient() *brightness.Client {
	return brightness.NewClient(nil, brightness.WithBinary(GetConfig().Tools.Brightnessctl))
}

func sunsetManager() *sunset.Manager {
	cfg := GetConfig()
	return sunset.NewManager(nil, logger, sunset.Options{
		Binary:        cfg.Tools.Hyprsunset,
		HyprctlBinary: cfg.Tools.Hyprctl,
	})
}
