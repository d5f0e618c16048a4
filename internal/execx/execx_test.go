package execx

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunCapturesOutput(t *testing.T) {
	var local Local

	stdout, stderr, err := local.Run(context.Background(), "sh", "-c", "echo out; echo err >&2")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if strings.TrimSpace(string(stdout)) != "out" {
		t.Fatalf("unexpected stdout %q", stdout)
	}
	if strings.TrimSpace(string(stderr)) != "err" {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestRunNonZeroExit(t *testing.T) {
	var local Local

	_, _, err := local.Run(context.Background(), "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("expected error")
	}

	code, exited := ExitCode(err)
	if !exited {
		t.Fatalf("expected exit error, got %v", err)
	}
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
}

func TestRunLaunchFailure(t *testing.T) {
	var local Local

	_, _, err := local.Run(context.Background(), "/nonexistent/binary")
	if err == nil {
		t.Fatal("expected error")
	}
	if _, exited := ExitCode(err); exited {
		t.Fatalf("launch failure misreported as exit failure: %v", err)
	}
}

func TestExitCodeOnForeignError(t *testing.T) {
	if _, exited := ExitCode(errors.New("boom")); exited {
		t.Fatal("plain error misreported as exit failure")
	}
}

func TestStartDetached(t *testing.T) {
	var local Local

	if err := local.Start("sh", "-c", "exit 0"); err != nil {
		t.Fatalf("Start error: %v", err)
	}

	if err := local.Start("/nonexistent/binary"); err == nil {
		t.Fatal("expected launch error")
	}
}
