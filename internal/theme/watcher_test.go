package theme

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherNoThemeFileIsNoop(t *testing.T) {
	withConfigDir(t)

	var w Watcher
	w.Subscribe(func() {
		t.Error("callback fired without a theme file")
	})
	w.Unsubscribe()
}

func TestWatcherUnsubscribeWithoutSubscribe(t *testing.T) {
	var w Watcher
	w.Unsubscribe()
	w.Unsubscribe()
}

func TestWatcherNotifiesOnWrite(t *testing.T) {
	root := withConfigDir(t)
	path := filepath.Join(root, "theme", "colors")
	writeThemeFile(t, path, "background=#1e1e2e\n")

	changed := make(chan struct{}, 1)

	var w Watcher
	w.Subscribe(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer w.Unsubscribe()

	if err := os.WriteFile(path, []byte("background=#11111b\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("expected change notification")
	}
}

func TestWatcherSubscribeIsIdempotent(t *testing.T) {
	root := withConfigDir(t)
	path := filepath.Join(root, "theme", "colors")
	writeThemeFile(t, path, "background=#1e1e2e\n")

	first := make(chan struct{}, 8)
	second := make(chan struct{}, 8)

	var w Watcher
	w.Subscribe(func() { first <- struct{}{} })
	// Re-subscribing replaces the previous watch entirely.
	w.Subscribe(func() { second <- struct{}{} })
	defer w.Unsubscribe()

	if err := os.WriteFile(path, []byte("background=#11111b\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-second:
	case <-time.After(3 * time.Second):
		t.Fatal("expected notification on the new subscription")
	}

	select {
	case <-first:
		t.Fatal("torn-down subscription still fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherNoCallbackAfterUnsubscribe(t *testing.T) {
	root := withConfigDir(t)
	path := filepath.Join(root, "theme", "colors")
	writeThemeFile(t, path, "background=#1e1e2e\n")

	fired := make(chan struct{}, 8)

	var w Watcher
	w.Subscribe(func() { fired <- struct{}{} })
	w.Unsubscribe()

	if err := os.WriteFile(path, []byte("background=#11111b\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case <-fired:
		t.Fatal("callback fired after Unsubscribe")
	case <-time.After(200 * time.Millisecond):
	}
}
