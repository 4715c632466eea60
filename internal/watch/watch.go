package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zaneops/templates/internal/errors"
	"github.com/zaneops/templates/internal/logging"
)

// DefaultDelay is how long the watcher waits for changes to settle.
const DefaultDelay = 300 * time.Millisecond

// EventType classifies a change.
type EventType int

const (
	// EventCreated is a new file or directory.
	EventCreated EventType = iota
	// EventModified is a write to an existing file.
	EventModified
	// EventDeleted is a removed file or directory.
	EventDeleted
	// EventRenamed is a path that was moved away.
	EventRenamed
)

func (e EventType) String() string {
	switch e {
	case EventCreated:
		return "created"
	case EventModified:
		return "modified"
	case EventDeleted:
		return "deleted"
	case EventRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Event is a change to a single path.
type Event struct {
	Type EventType
	Path string
}

// Handler receives each batch of changes. Batches hold at most one event
// per path (the latest) and are sorted by path. A returned error is logged
// and watching continues.
type Handler func(ctx context.Context, events []Event) error

// Watcher watches a templates root.
type Watcher struct {
	fsw    *fsnotify.Watcher
	root   string
	delay  time.Duration
	logger *slog.Logger
}

// New creates a Watcher over root. A non-positive delay uses DefaultDelay.
func New(root string, delay time.Duration, logger *slog.Logger) (*Watcher, error) {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}

	w := &Watcher{fsw: fsw, root: filepath.Clean(root), delay: delay, logger: logger}
	if err := w.addTree(); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// addTree watches the root and every template directory below it.
func (w *Watcher) addTree() error {
	if err := w.fsw.Add(w.root); err != nil {
		return errors.Wrapf(err, "watching %s", w.root)
	}

	entries, err := os.ReadDir(w.root)
	if err != nil {
		return errors.Wrapf(err, "reading %s", w.root)
	}
	for _, e := range entries {
		if !e.IsDir() || ignored(e.Name()) {
			continue
		}
		if err := w.fsw.Add(filepath.Join(w.root, e.Name())); err != nil {
			return errors.Wrapf(err, "watching %s", e.Name())
		}
	}
	return nil
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run delivers batches to handler until ctx is done.
func (w *Watcher) Run(ctx context.Context, handler Handler) error {
	pending := map[string]Event{}

	timer := time.NewTimer(w.delay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			event, keep := w.translate(ev)
			if !keep {
				continue
			}
			pending[event.Path] = event
			timer.Reset(w.delay)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-timer.C:
			batch := drain(pending)
			w.logger.Debug("changes detected", "count", len(batch))
			if err := handler(ctx, batch); err != nil {
				w.logger.Warn("watch handler failed", "error", err)
			}
		}
	}
}

// translate filters an fsnotify event and keeps new template directories
// under watch.
func (w *Watcher) translate(ev fsnotify.Event) (Event, bool) {
	if ignored(filepath.Base(ev.Name)) {
		return Event{}, false
	}

	var typ EventType
	switch {
	case ev.Has(fsnotify.Create):
		typ = EventCreated
		if filepath.Dir(ev.Name) == w.root {
			if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
				if err := w.fsw.Add(ev.Name); err != nil {
					w.logger.Warn("cannot watch new template", "path", ev.Name, "error", err)
				}
			}
		}
	case ev.Has(fsnotify.Write):
		typ = EventModified
	case ev.Has(fsnotify.Remove):
		typ = EventDeleted
	case ev.Has(fsnotify.Rename):
		typ = EventRenamed
	default:
		// chmod only
		return Event{}, false
	}

	w.logger.Log(context.Background(), logging.LevelTrace, "file event", "op", typ, "path", ev.Name)
	return Event{Type: typ, Path: ev.Name}, true
}

func drain(pending map[string]Event) []Event {
	batch := make([]Event, 0, len(pending))
	for path, ev := range pending {
		batch = append(batch, ev)
		delete(pending, path)
	}
	slices.SortFunc(batch, func(a, b Event) int { return strings.Compare(a.Path, b.Path) })
	return batch
}

// ignored skips hidden files and editor temporaries.
func ignored(name string) bool {
	return strings.HasPrefix(name, ".") ||
		strings.HasSuffix(name, "~") ||
		strings.HasSuffix(name, ".swp") ||
		strings.HasSuffix(name, ".tmp")
}
