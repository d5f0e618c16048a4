package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/display-labs/displayctl/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive control panel",
	Long:  "Launch the displayctl terminal user interface.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return errors.New("the TUI requires an interactive terminal; use the CLI subcommands instead")
		}

		cfg := GetConfig()
		return tui.Run(tui.Config{
			Hypr:        hyprClient(),
			Brightness:  brightnessClient(),
			Sunset:      sunsetManager(),
			Logger:      logger,
			FadeSeconds: cfg.NightLight.FadeSeconds,
		})
	},
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
