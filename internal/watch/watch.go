// Package watch reports changes made to the data file by other processes.
package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/julianstephens/imaan/internal/constants"
	"github.com/julianstephens/imaan/internal/logger"
)

// Watcher watches the directory holding a data file and calls onChange once
// writes to that file have settled for the debounce window. SQLite journal
// and WAL siblings count as writes to the data file.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	names    map[string]struct{}
	onChange func()

	debounce time.Duration
	pending  time.Time
	fired    int

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	closed  bool
}

// ErrClosed is returned by Start once Stop has been called
var ErrClosed = errors.New("watch: watcher is closed")

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce sets how long the file must be quiet before onChange runs
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New creates a Watcher for the data file at path
func New(path string, onChange func(), opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	base := filepath.Base(path)
	w := &Watcher{
		watcher: fw,
		dir:     filepath.Dir(path),
		names: map[string]struct{}{
			base:              {},
			base + "-wal":     {},
			base + "-journal": {},
		},
		onChange: onChange,
		debounce: constants.WatchDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching. It is non-blocking; events are handled on a
// goroutine until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0700); err != nil {
		logger.Warn("watch: failed to create data dir", "dir", w.dir, "error", err)
	}
	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	logger.Debug("watch: watching directory", "dir", w.dir)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher, waits for its goroutine to exit and releases the
// underlying fsnotify watcher. It must be called even when Start failed. It
// is safe to call Stop more than once, and after ctx has been cancelled.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}

	if err := w.watcher.Close(); err != nil {
		logger.Error("watch: error closing watcher", "error", err)
	}
	logger.Debug("watch: stopped")
}

// Fired returns how many times onChange has been called
func (w *Watcher) Fired() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fired
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch: watcher error", "error", err)
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if _, ok := w.names[filepath.Base(event.Name)]; !ok {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return
	}

	logger.Debug("watch: data file event", "op", event.Op.String(), "path", event.Name)
	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.fired++
	w.mu.Unlock()

	w.onChange()
}
