package hypr

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Orientation is a screen rotation. The numeric values are Hyprland's
// transform encoding and must not be reordered.
type Orientation int

// Supported orientations.
const (
	OrientationNormal   Orientation = 0
	OrientationLeft     Orientation = 1
	OrientationInverted Orientation = 2
	OrientationRight    Orientation = 3
)

// Orientations lists all supported orientations in transform order.
func Orientations() []Orientation {
	return []Orientation{
		OrientationNormal,
		OrientationLeft,
		OrientationInverted,
		OrientationRight,
	}
}

// ParseOrientation converts a user-facing name to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "normal":
		return OrientationNormal, nil
	case "left":
		return OrientationLeft, nil
	case "inverted":
		return OrientationInverted, nil
	case "right":
		return OrientationRight, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q (want normal, left, inverted, or right)", s)
	}
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientationNormal:
		return "normal"
	case OrientationLeft:
		return "left"
	case OrientationInverted:
		return "inverted"
	case OrientationRight:
		return "right"
	default:
		return strconv.Itoa(int(o))
	}
}

// TransformArg returns the hyprctl keyword argument applying this
// orientation to every monitor: ",transform,<N>".
func (o Orientation) TransformArg() string {
	return ",transform," + strconv.Itoa(int(o))
}

// SetTransform rotates all monitors via
// "hyprctl keyword monitor ,transform,<N>".
func (c *Client) SetTransform(ctx context.Context, o Orientation) error {
	_, stderr, err := c.exec.Run(ctx, c.bin, "keyword", "monitor", o.TransformArg())
	if err != nil {
		return fmt.Errorf("hyprctl transform %s: %w", o, commandError(err, stderr))
	}
	return nil
}

func commandError(err error, stderr []byte) error {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return errors.New(msg)
	}
	return err
}
