package theme

import (
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher notifies a callback whenever the resolved theme file changes.
// A zero Watcher is ready for use.
//
// Callbacks are delivered on the watcher's own goroutine, not the caller's;
// anyone reacting to a change must handle that.
type Watcher struct {
	mu   sync.Mutex
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// Subscribe starts watching the resolved theme file for content changes and
// invokes onChanged on each one. It is idempotent: an active watch is fully
// torn down before the new one is established. When no theme file exists, or
// the watch cannot be set up, Subscribe is a silent no-op and the theme
// simply won't live-reload.
func (w *Watcher) Subscribe(onChanged func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.teardownLocked()

	path := ResolvePath()
	if path == "" || onChanged == nil {
		return
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return
	}

	// done is this subscription's cancellation token. It is checked before
	// every callback dispatch so no callback can fire once Unsubscribe has
	// closed it, even if an event was already in flight.
	done := make(chan struct{})
	w.fsw = fsw
	w.done = done

	go func() {
		for {
			select {
			case <-done:
				return
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				select {
				case <-done:
					return
				default:
				}
				onChanged()
			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

// Unsubscribe tears down the active watch. It is safe to call when nothing
// is being watched.
func (w *Watcher) Unsubscribe() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.teardownLocked()
}

func (w *Watcher) teardownLocked() {
	if w.done != nil {
		close(w.done)
		w.done = nil
	}
	if w.fsw != nil {
		w.fsw.Close()
		w.fsw = nil
	}
}
