package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/display-labs/displayctl/internal/hypr"
)

var modeSetMonitor string

func init() {
	rootCmd.AddCommand(modeCmd)
	modeCmd.AddCommand(modeListCmd)
	modeCmd.AddCommand(modeSetCmd)

	modeSetCmd.Flags().StringVarP(&modeSetMonitor, "monitor", "m", "", "monitor name (default: first detected)")
}

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "List or apply monitor display modes",
}

var modeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported modes per monitor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		monitors := hyprClient().Monitors(context.Background())
		if len(monitors) == 0 {
			fmt.Println("No monitors detected.")
			return nil
		}

		for _, mon := range monitors {
			fmt.Printf("%s (current %s @ %s)\n", mon.Name, mon.Current.Resolution(), mon.Current.Refresh())
			for _, mode := range mon.Modes {
				marker := "  "
				if mode == mon.Current {
					marker = "* "
				}
				fmt.Printf("  %s%s @ %s\n", marker, mode.Resolution(), mode.Refresh())
			}
		}
		return nil
	},
}

var modeSetCmd = &cobra.Command{
	Use:   "set <WxH@R>",
	Short: "Apply a display mode, e.g. 1920x1080@60",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := ParseModeSpec(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		client := hyprClient()

		monitors := client.Monitors(ctx)
		if len(monitors) == 0 {
			return fmt.Errorf("no monitors detected")
		}

		target := monitors[0]
		if modeSetMonitor != "" {
			found := false
			for _, mon := range monitors {
				if mon.Name == modeSetMonitor {
					target = mon
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("monitor %q not found", modeSetMonitor)
			}
		}

		logger.Debug().
			Str("monitor", target.Name).
			Str("mode", hypr.ModeArg(mode, target.X, target.Y, target.Scale)).
			Msg("applying mode")

		return client.ApplyMode(ctx, target.Name, mode, target.X, target.Y, target.Scale)
	},
}

// ParseModeSpec parses a "WIDTHxHEIGHT@REFRESH" mode specification. The
// refresh part is optional and defaults to 60.
func ParseModeSpec(s string) (hypr.Mode, error) {
	spec := s
	refresh := 60

	if res, rate, found := strings.Cut(spec, "@"); found {
		parsed, err := strconv.Atoi(strings.TrimSuffix(rate, "Hz"))
		if err != nil || parsed <= 0 {
			return hypr.Mode{}, fmt.Errorf("invalid refresh rate in %q", s)
		}
		refresh = parsed
		spec = res
	}

	w, h, found := strings.Cut(spec, "x")
	if !found {
		return hypr.Mode{}, fmt.Errorf("invalid mode %q (want WIDTHxHEIGHT@REFRESH)", s)
	}

	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return hypr.Mode{}, fmt.Errorf("invalid width in %q", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return hypr.Mode{}, fmt.Errorf("invalid height in %q", s)
	}

	return hypr.Mode{Width: width, Height: height, RefreshHz: refresh}, nil
}
