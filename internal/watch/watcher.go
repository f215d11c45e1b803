// Package watch re-runs a sync whenever the manifest or generated sources
// change on disk. Change bursts are debounced so one editor save (or one
// remote publish touching many files) triggers a single sync.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher monitors a project tree and invokes onChange with the batch of
// changed paths after each debounced burst.
type Watcher struct {
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	root      string
	dirs      []string
	onChange  func([]string) error
	log       *zap.Logger
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// New creates a Watcher over root. dirs are root-relative directories to
// watch; missing ones are skipped so a watch can start before the first
// sync has created them.
func New(root string, dirs []string, onChange func([]string) error, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		watcher:   fsw,
		debouncer: newDebouncer(200 * time.Millisecond),
		root:      root,
		dirs:      dirs,
		onChange:  onChange,
		log:       log,
		stopChan:  make(chan struct{}),
	}

	w.debouncer.setCallback(func(files []string) {
		if err := w.onChange(files); err != nil {
			w.log.Error("change handler failed", zap.Error(err))
		}
	})

	return w, nil
}

// Start begins watching. It returns immediately; events are handled on a
// background goroutine until Stop.
func (w *Watcher) Start() error {
	watched := 0
	for _, dir := range w.dirs {
		path := filepath.Join(w.root, dir)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		w.log.Debug("watching directory", zap.String("path", path))
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("nothing to watch under %s", w.root)
	}

	w.wg.Add(1)
	go w.loop()
	return nil
}

// Stop halts the watcher. Safe to call more than once.
func (w *Watcher) Stop() error {
	select {
	case <-w.stopChan:
		return nil
	default:
		close(w.stopChan)
	}
	w.wg.Wait()
	w.debouncer.stop()
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.shouldIgnore(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			w.log.Debug("file changed", zap.String("path", event.Name))
			w.debouncer.add(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-w.stopChan:
			return
		}
	}
}

// shouldIgnore filters out hidden files, editor swap files, and the
// node_modules tree.
func (w *Watcher) shouldIgnore(path string) bool {
	if strings.Contains(path, "node_modules"+string(os.PathSeparator)) {
		return true
	}
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return true
	}
	return false
}

// debouncer collects changed paths and fires the callback once the burst
// has been quiet for the configured duration.
type debouncer struct {
	duration time.Duration
	timer    *time.Timer
	files    map[string]struct{}
	mu       sync.Mutex
	callback func([]string)
}

func newDebouncer(duration time.Duration) *debouncer {
	return &debouncer{
		duration: duration,
		files:    make(map[string]struct{}),
	}
}

func (d *debouncer) setCallback(callback func([]string)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callback = callback
}

func (d *debouncer) add(file string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.files[file] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, d.flush)
}

func (d *debouncer) flush() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.files) == 0 {
		return
	}
	files := make([]string, 0, len(d.files))
	for file := range d.files {
		files = append(files, file)
	}
	d.files = make(map[string]struct{})

	if d.callback != nil {
		d.callback(files)
	}
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
