// Package watch re-analyzes word lists whenever they change on disk.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const DefaultDebounce = 100 * time.Millisecond

// Word list extensions picked up when a directory is watched.
var wordListExtensions = map[string]bool{
	".txt":   true,
	".jsonl": true,
	".words": true,
}

// Watcher fires onChange once a watched file has been quiet for the debounce
// interval, so an editor's burst of writes produces a single callback.
type Watcher struct {
	fw       *fsnotify.Watcher
	debounce time.Duration
	logger   *zerolog.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	done    chan struct{}
	stopped bool
}

func NewWatcher(debounce time.Duration, logger *zerolog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		fw:       fw,
		debounce: debounce,
		logger:   logger,
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}, nil
}

// Watch monitors target, which is either a word list file or a directory of
// word lists. Files are watched through their parent directory because most
// editors save by renaming a temp file over the original.
func (w *Watcher) Watch(target string, onChange func(path string)) error {
	absPath, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("watch %s: %w", target, err)
	}

	dir := absPath
	match := isWordList
	if !info.IsDir() {
		dir = filepath.Dir(absPath)
		match = func(path string) bool { return path == absPath }
	}

	if err := w.fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.logger.Info().Str("path", absPath).Dur("debounce", w.debounce).Msg("Watching for changes")

	go w.loop(match, onChange)
	return nil
}

func (w *Watcher) loop(match func(string) bool, onChange func(string)) {
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !match(event.Name) {
				continue
			}
			w.schedule(event.Name, onChange)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("Watcher error")

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule(path string, onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if timer, ok := w.timers[path]; ok {
		timer.Reset(w.debounce)
		return
	}

	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		stopped := w.stopped
		w.mu.Unlock()

		if stopped {
			return
		}
		// A rename can leave nothing behind; only report files that exist.
		if _, err := os.Stat(path); err != nil {
			return
		}
		onChange(path)
	})
}

// Stop ends monitoring and releases all resources. Safe to call more than
// once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
	close(w.done)
	return w.fw.Close()
}

func isWordList(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return wordListExtensions[filepath.Ext(base)]
}
