package hypr

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/display-labs/displayctl/internal/execx"
)

// ErrInvalidParams is returned when ApplyMode is called with an empty
// monitor name or a non-positive mode field. The message text is part of the
// surface callers display, so it stays stable.
var ErrInvalidParams = errors.New("Invalid parameters")

// ModeArg formats the hyprctl monitor configuration argument:
// "WIDTHxHEIGHT@REFRESH,XxY,SCALE", e.g. "1920x1080@60,0x0,1".
func ModeArg(mode Mode, x, y int, scale float64) string {
	return fmt.Sprintf("%dx%d@%d,%dx%d,%s",
		mode.Width, mode.Height, mode.RefreshHz, x, y, formatScale(scale))
}

// formatScale renders the scale in its shortest decimal form, so 1.0
// becomes "1" and 1.25 stays "1.25", matching what hyprctl expects.
func formatScale(scale float64) string {
	return strconv.FormatFloat(scale, 'g', -1, 64)
}

// ApplyMode applies a display mode to the named monitor via
// "hyprctl keyword monitor <name>,<config>". The call is synchronous; it
// returns nil only when hyprctl exits zero.
func (c *Client) ApplyMode(ctx context.Context, name string, mode Mode, x, y int, scale float64) error {
	if name == "" || !mode.Valid() {
		return ErrInvalidParams
	}

	arg := name + "," + ModeArg(mode, x, y, scale)
	stdout, stderr, err := c.exec.Run(ctx, c.bin, "keyword", "monitor", arg)
	if err != nil {
		code, exited := execx.ExitCode(err)
		if !exited {
			// The process never ran; surface the launch error as-is.
			return err
		}

		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			msg = strings.TrimSpace(string(stdout))
		}
		if msg == "" {
			msg = fmt.Sprintf("hyprctl failed with exit code %d", code)
		}
		return errors.New(msg)
	}

	return nil
}
