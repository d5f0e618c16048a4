// Package hypr provides a small wrapper for hyprctl command execution.
package hypr

import (
	"context"

	"github.com/display-labs/displayctl/internal/execx"
)

// DefaultBinary is the hyprctl binary resolved from PATH.
const DefaultBinary = "hyprctl"

// Executor runs hyprctl commands.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// Client wraps hyprctl command helpers.
type Client struct {
	exec Executor
	bin  string
}

// Option configures a Client.
type Option func(*Client)

// WithBinary overrides the hyprctl binary path.
func WithBinary(bin string) Option {
	return func(c *Client) {
		if bin != "" {
			c.bin = bin
		}
	}
}

// NewClient creates a new hyprctl client. A nil executor runs commands
// locally.
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
