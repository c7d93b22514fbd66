package verify

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of write events from editors that save
// in multiple syscalls.
const DefaultDebounce = 300 * time.Millisecond

// Watcher re-runs verification whenever a watched fixture file actually
// changes. Content digests filter out touch events and atomic-save noise:
// a write that leaves the bytes identical does not trigger a rerun.
type Watcher struct {
	paths    map[string]bool
	debounce time.Duration
	digests  map[string]uint64
}

// NewWatcher prepares a watcher for the given fixture files
func NewWatcher(paths []string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	tracked := make(map[string]bool, len(paths))
	for _, p := range paths {
		tracked[filepath.Clean(p)] = true
	}

	return &Watcher{
		paths:    tracked,
		debounce: debounce,
		digests:  make(map[string]uint64, len(paths)),
	}
}

// Watch blocks until ctx is done, invoking onChange after any tracked
// fixture's content changes. Events are debounced so one rerun covers a
// burst of writes, and digests are compared only after the burst settles
// so half-written files are never hashed.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	// Watch parent directories; editors often replace files on save, and
	// directory watches survive that.
	dirs := make(map[string]bool)
	for path := range w.paths {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			return err
		}
	}

	// Prime digests so the first event compares against current content
	w.refreshDigests()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if !w.paths[filepath.Clean(event.Name)] {
				continue
			}
			pending = time.After(w.debounce)

		case _, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			// Watch errors are transient; keep running

		case <-pending:
			pending = nil
			if w.refreshDigests() {
				onChange()
			}
		}
	}
}

// refreshDigests rehashes every tracked file and reports whether any
// content differs from the previous observation.
func (w *Watcher) refreshDigests() bool {
	changed := false
	for path := range w.paths {
		content, err := os.ReadFile(path)
		if err != nil {
			// Deleted or unreadable; keep the old digest so reappearing
			// identical content does not trigger a rerun
			continue
		}
		digest := xxhash.Sum64(content)
		if prev, ok := w.digests[path]; !ok || prev != digest {
			w.digests[path] = digest
			changed = true
		}
	}
	return changed
}
