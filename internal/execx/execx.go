// Package execx runs the external tools displayctl drives.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode extracts the exit code from an error returned by Run.
// The second return is false when the error is not an exit failure
// (for example when the binary could not be launched at all).
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}

// Local runs commands on the local machine.
type Local struct{}

// Run executes a command and waits for it, capturing stdout and stderr.
// A non-zero exit is reported as *ExitError; any other error means the
// process could not be started.
func (Local) Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return outBuf.Bytes(), errBuf.Bytes(), &ExitError{Code: exitErr.ExitCode()}
		}
		return outBuf.Bytes(), errBuf.Bytes(), err
	}

	return outBuf.Bytes(), errBuf.Bytes(), nil
}

// Start launches a command detached from the caller. The process is not
// waited on synchronously; a background goroutine reaps it so it does not
// linger as a zombie. Output is discarded.
func (Local) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}

	go func() {
		_ = cmd.Wait()
	}()

	return nil
}
