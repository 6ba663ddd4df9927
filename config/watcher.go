package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ardnew/neostatus/pkg"
)

// DefaultDebounce coalesces bursts of file events from editors.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads the configuration file when it changes and passes the
// fresh Config to every registered handler.
type Watcher struct {
	path     string
	debounce time.Duration
	loader   func(path string) (Config, error)
	handlers []func(Config)
	onError  func(error)
	mu       sync.RWMutex
	watcher  *fsnotify.Watcher
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce duration for config changes.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.debounce = d }
}

// WithErrorHandler sets a callback for config load errors.
func WithErrorHandler(handler func(error)) WatcherOption {
	return func(w *Watcher) { w.onError = handler }
}

// WithLoader replaces Load as the reload function.
func WithLoader(loader func(path string) (Config, error)) WatcherOption {
	return func(w *Watcher) { w.loader = loader }
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string, opts ...WatcherOption) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		loader:   Load,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// OnReload registers a handler and returns a function removing it.
func (w *Watcher) OnReload(handler func(Config)) func() {
	w.mu.Lock()
	w.handlers = append(w.handlers, handler)
	idx := len(w.handlers) - 1
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.handlers[idx] = nil
	}
}

// Start begins watching. The parent directory is watched so files
// replaced by rename are still seen.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return err
	}
	w.watcher = watcher

	pkg.LogInfo(pkg.ComponentConfig, "config watcher started", "path", w.path)
	go w.watch()
	return nil
}

// Stop stops watching and waits for the watch goroutine to exit.
func (w *Watcher) Stop() error {
	w.cancel()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) watch() {
	defer close(w.done)

	var timer *time.Timer
	var timerC <-chan time.Time
	target := filepath.Clean(w.path)

	for {
		select {
		case <-w.ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pkg.LogDebug(pkg.ComponentConfig, "config change detected", "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			pkg.LogWarn(pkg.ComponentConfig, "config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.loader(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		pkg.LogWarn(pkg.ComponentConfig, "config reload failed", "error", err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}

	w.mu.RLock()
	handlers := make([]func(Config), 0, len(w.handlers))
	for _, h := range w.handlers {
		if h != nil {
			handlers = append(handlers, h)
		}
	}
	w.mu.RUnlock()

	pkg.LogInfo(pkg.ComponentConfig, "config reloaded", "path", w.path)
	for _, h := range handlers {
		h(cfg)
	}
}

// ApplyLogging applies the log level of cfg. It is the reload handler
// the simulator registers; other settings take effect on restart.
func ApplyLogging(cfg Config) {
	level, err := pkg.ParseLevel(cfg.Log.Level)
	if err != nil {
		return
	}
	if level != pkg.GetLogLevel() {
		pkg.SetLogLevel(level)
		pkg.LogInfo(pkg.ComponentConfig, "log level changed", "level", level.String())
	}
}
