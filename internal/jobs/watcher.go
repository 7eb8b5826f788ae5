package jobs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a jobs file and reports debounced change events. The
// parent directory is watched rather than the file itself because editors
// commonly replace files on save, which would drop a direct file watch.
type Watcher struct {
	path     string
	debounce time.Duration
	fw       *fsnotify.Watcher
	events   chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period after the last write before a change
// event is delivered.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher creates a Watcher for the given jobs file.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:     path,
		debounce: 500 * time.Millisecond,
		fw:       fw,
		events:   make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Events returns the channel on which debounced change notifications are
// delivered. At most one notification is pending at a time.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Run pumps filesystem events until the context is cancelled, collapsing
// bursts of writes into a single notification per quiet period.
func (w *Watcher) Run(ctx context.Context) error {
	var timer *time.Timer
	var timerCh <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if !w.isRelevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerCh = timer.C
			} else {
				if !timer.Stop() {
					<-timerCh
				}
				timer.Reset(w.debounce)
			}
		case <-timerCh:
			timer = nil
			timerCh = nil
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", w.path, err)
		}
	}
}

// isRelevant reports whether a filesystem event concerns the watched file.
func (w *Watcher) isRelevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
