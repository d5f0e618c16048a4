// Package brightness wraps the brightnessctl tool.
package brightness

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/display-labs/displayctl/internal/execx"
)

// DefaultBinary is the brightnessctl binary resolved from PATH.
const DefaultBinary = "brightnessctl"

// Brightness percentage bounds. The floor is 1 so a slider can never turn
// the panel fully off.
const (
	MinPercent = 1
	MaxPercent = 100
)

// Executor runs brightnessctl commands.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// Client wraps brightnessctl command helpers.
type Client struct {
	exec Executor
	bin  string
}

// Option configures a Client.
type Option func(*Client)

// WithBinary overrides the brightnessctl binary path.
func WithBinary(bin string) Option {
	return func(c *Client) {
		if bin != "" {
			c.bin = bin
		}
	}
}

// NewClient creates a new brightnessctl client. A nil executor runs
// commands locally.
func NewClient(exec Executor, opts ...Option) *Client {
	c := &Client{exec: exec, bin: DefaultBinary}
	if c.exec == nil {
		c.exec = execx.Local{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clamp bounds a percentage to the supported range.
func Clamp(percent int) int {
	if percent < MinPercent {
		return MinPercent
	}
	if percent > MaxPercent {
		return MaxPercent
	}
	return percent
}

// Set applies a brightness percentage via "brightnessctl s N% -q".
func (c *Client) Set(ctx context.Context, percent int) error {
	percent = Clamp(percent)
	_, stderr, err := c.exec.Run(ctx, c.bin, "s", fmt.Sprintf("%d%%", percent), "-q")
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return fmt.Errorf("brightnessctl set: %s", msg)
		}
		return fmt.Errorf("brightnessctl set: %w", err)
	}
	return nil
}

// Get reads the current brightness percentage via "brightnessctl g -p".
func (c *Client) Get(ctx context.Context) (int, error) {
	stdout, _, err := c.exec.Run(ctx, c.bin, "g", "-p")
	if err != nil {
		return 0, fmt.Errorf("brightnessctl get: %w", err)
	}

	raw := strings.TrimSpace(string(stdout))
	raw = strings.TrimSuffix(raw, "%")
	percent, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("brightnessctl get: unexpected output %q", raw)
	}

	return percent, nil
}
