// Package sunset manages the hyprsunset night-light daemon.
package sunset

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/display-labs/displayctl/internal/execx"
	"github.com/rs/zerolog"
)

// Default binaries resolved from PATH.
const (
	DefaultBinary        = "hyprsunset"
	DefaultHyprctlBinary = "hyprctl"
)

// Color temperature bounds in Kelvin. 2500K is the warmest evening setting,
// 6500K is neutral daylight.
const (
	MinTemp = 2500
	MaxTemp = 6500
)

// DefaultFadeSeconds is the fade duration used when the configuration does
// not override it.
const DefaultFadeSeconds = 0.5

// Executor runs and launches the external processes the manager controls.
type Executor interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
	Start(name string, args ...string) error
}

// Manager drives the hyprsunset daemon: it starts and stops the persistent
// process and adjusts the temperature of a running instance. hyprsunset only
// supports one instance, so enabling always kills any stale one first.
type Manager struct {
	exec    Executor
	logger  zerolog.Logger
	bin     string
	hyprctl string

	mu      sync.Mutex
	current int
}

// Options configure a Manager.
type Options struct {
	// Binary overrides the hyprsunset binary path.
	Binary string

	// HyprctlBinary overrides the hyprctl binary path used for live
	// temperature updates.
	HyprctlBinary string
}

// NewManager creates a night-light manager. A nil executor runs commands
// locally.
func NewManager(exec Executor, logger zerolog.Logger, opts Options) *Manager {
	m := &Manager{
		exec:    exec,
		logger:  logger,
		bin:     DefaultBinary,
		hyprctl: DefaultHyprctlBinary,
	}
	if m.exec == nil {
		m.exec = execx.Local{}
	}
	if opts.Binary != "" {
		m.bin = opts.Binary
	}
	if opts.HyprctlBinary != "" {
		m.hyprctl = opts.HyprctlBinary
	}
	return m
}

// ClampTemp bounds a Kelvin value to the supported range.
func ClampTemp(kelvin int) int {
	if kelvin < MinTemp {
		return MinTemp
	}
	if kelvin > MaxTemp {
		return MaxTemp
	}
	return kelvin
}

// TempToPercent maps a Kelvin value to a warmth percentage, where 100% is
// the warmest supported temperature.
func TempToPercent(kelvin int) int {
	kelvin = ClampTemp(kelvin)
	return 100 - (kelvin-MinTemp)*100/(MaxTemp-MinTemp)
}

// PercentToTemp maps a warmth percentage back to Kelvin.
func PercentToTemp(percent int) int {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return MaxTemp - percent*(MaxTemp-MinTemp)/100
}

// Enable starts the persistent hyprsunset daemon at the given temperature,
// killing any stale instance first. The daemon is launched detached and not
// waited on.
func (m *Manager) Enable(ctx context.Context, kelvin int) error {
	kelvin = ClampTemp(kelvin)

	m.killStale(ctx)

	if err := m.exec.Start(m.bin, "-t", strconv.Itoa(kelvin)); err != nil {
		return fmt.Errorf("start hyprsunset: %w", err)
	}

	m.mu.Lock()
	m.current = kelvin
	m.mu.Unlock()

	m.logger.Debug().Int("kelvin", kelvin).Msg("night light enabled")
	return nil
}

// Disable stops any running hyprsunset instance. A missing instance is not
// an error.
func (m *Manager) Disable(ctx context.Context) error {
	m.killStale(ctx)

	m.mu.Lock()
	m.current = 0
	m.mu.Unlock()

	m.logger.Debug().Msg("night light disabled")
	return nil
}

// SetTemperature updates the running daemon's temperature via
// "hyprctl hyprsunset temperature K". hyprsunset flickers when fading toward
// warmer temperatures, so warmer targets restart the daemon at the target
// instead of adjusting in place.
func (m *Manager) SetTemperature(ctx context.Context, kelvin int) error {
	kelvin = ClampTemp(kelvin)

	m.mu.Lock()
	previous := m.current
	m.mu.Unlock()

	if previous > 0 && kelvin < previous {
		return m.Enable(ctx, kelvin)
	}

	_, stderr, err := m.exec.Run(ctx, m.hyprctl, "hyprsunset", "temperature", strconv.Itoa(kelvin))
	if err != nil {
		return fmt.Errorf("set temperature: %w", commandError(err, stderr))
	}

	m.mu.Lock()
	m.current = kelvin
	m.mu.Unlock()

	return nil
}

// Fade transitions the display to the given temperature over the given
// duration via "hyprsunset -f S -t K", launched detached.
func (m *Manager) Fade(kelvin int, seconds float64) error {
	kelvin = ClampTemp(kelvin)
	if seconds <= 0 {
		seconds = DefaultFadeSeconds
	}

	fade := strconv.FormatFloat(seconds, 'g', -1, 64)
	if err := m.exec.Start(m.bin, "-f", fade, "-t", strconv.Itoa(kelvin)); err != nil {
		return fmt.Errorf("fade hyprsunset: %w", err)
	}

	m.mu.Lock()
	m.current = kelvin
	m.mu.Unlock()

	return nil
}

// killStale terminates any hyprsunset instance, including ones this manager
// did not start. pkill exits 1 when nothing matched, which is fine here.
func (m *Manager) killStale(ctx context.Context) {
	if _, _, err := m.exec.Run(ctx, "pkill", "-x", "hyprsunset"); err != nil {
		if _, exited := execx.ExitCode(err); !exited {
			m.logger.Debug().Err(err).Msg("pkill unavailable")
		}
	}
}

func commandError(err error, stderr []byte) error {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return errors.New(msg)
	}
	return err
}
