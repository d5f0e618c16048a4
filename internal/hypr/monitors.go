package hypr

import (
	"context"
	"encoding/json"
	"fmt"
)

// Mode is a single resolution and refresh rate combination.
type Mode struct {
	Width     int
	Height    int
	RefreshHz int
}

// Valid reports whether all mode fields are positive.
func (m Mode) Valid() bool {
	return m.Width > 0 && m.Height > 0 && m.RefreshHz > 0
}

// Resolution returns the "WIDTHxHEIGHT" label for the mode.
func (m Mode) Resolution() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// Refresh returns the "N Hz" label for the mode.
func (m Mode) Refresh() string {
	return fmt.Sprintf("%d Hz", m.RefreshHz)
}

// Monitor describes one output as reported by the compositor.
type Monitor struct {
	Name    string
	X       int
	Y       int
	Scale   float64
	Current Mode
	Modes   []Mode
}

// monitorJSON mirrors the hyprctl monitors -j schema. Hyprland has used both
// "refreshRate" and "refresh_rate" across versions, so both spellings are
// carried and resolved after decoding.
type monitorJSON struct {
	Name       string     `json:"name"`
	X          int        `json:"x"`
	Y          int        `json:"y"`
	Scale      float64    `json:"scale"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Refresh    *float64   `json:"refreshRate"`
	RefreshAlt *float64   `json:"refresh_rate"`
	Modes      []modeJSON `json:"modes"`
}

type modeJSON struct {
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Refresh    *float64 `json:"refreshRate"`
	RefreshAlt *float64 `json:"refresh_rate"`
}

// defaultRefreshHz is assumed when neither refresh field spelling is present.
const defaultRefreshHz = 60

func resolveRefresh(primary, alt *float64) int {
	switch {
	case primary != nil:
		return int(*primary)
	case alt != nil:
		return int(*alt)
	default:
		return defaultRefreshHz
	}
}

// Monitors returns a fresh snapshot of the compositor's outputs via
// "hyprctl monitors -j". Every failure mode (launch failure, non-zero exit,
// empty output, unparsable JSON) yields an empty slice rather than an error:
// an empty result means "no information available", and the caller decides
// how to present that.
func (c *Client) Monitors(ctx context.Context) []Monitor {
	stdout, _, err := c.exec.Run(ctx, c.bin, "monitors", "-j")
	if err != nil {
		return nil
	}
	return ParseMonitors(stdout)
}

// ParseMonitors decodes a hyprctl monitors -j payload. Entries that cannot be
// decoded or that lack a name are skipped so one malformed descriptor does
// not discard the rest of the snapshot.
func ParseMonitors(data []byte) []Monitor {
	if len(data) == 0 {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	monitors := make([]Monitor, 0, len(raw))
	for _, entry := range raw {
		var mj monitorJSON
		if err := json.Unmarshal(entry, &mj); err != nil {
			continue
		}
		if mj.Name == "" {
			continue
		}

		mon := Monitor{
			Name:  mj.Name,
			X:     mj.X,
			Y:     mj.Y,
			Scale: mj.Scale,
			Current: Mode{
				Width:     mj.Width,
				Height:    mj.Height,
				RefreshHz: resolveRefresh(mj.Refresh, mj.RefreshAlt),
			},
		}
		if mon.Scale <= 0 {
			mon.Scale = 1.0
		}

		for _, m := range mj.Modes {
			mode := Mode{
				Width:     m.Width,
				Height:    m.Height,
				RefreshHz: resolveRefresh(m.Refresh, m.RefreshAlt),
			}
			if mode.Valid() {
				mon.Modes = append(mon.Modes, mode)
			}
		}

		// A monitor with no usable mode list still offers its current mode,
		// so the caller always has something to select.
		if len(mon.Modes) == 0 && mon.Current.Valid() {
			mon.Modes = append(mon.Modes, mon.Current)
		}

		monitors = append(monitors, mon)
	}

	return monitors
}
