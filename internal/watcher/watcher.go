package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ErrAlreadyWatching is returned when Watch is called twice
var ErrAlreadyWatching = errors.New("watcher already started")

// Watcher reports changes of a single file
type Watcher struct {
	logger *zap.Logger

	mu      sync.Mutex
	fs      *fsnotify.Watcher
	started bool
	wg      sync.WaitGroup
	once    sync.Once
}

// New creates a new watcher
func New(logger *zap.Logger) *Watcher {
	return &Watcher{logger: logger}
}

// Watch invokes onChange for every write or create of path until ctx is done
// or Close is called. A missing file or a failed setup leaves nothing watched.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		return ErrAlreadyWatching
	}

	if _, err := os.Stat(path); err != nil {
		w.logger.Info("Vocabulary file not present, not watching", zap.String("path", path))
		return nil
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Warn("Failed to create file watcher", zap.Error(err))
		return nil
	}

	target := filepath.Clean(path)
	// Editors and the producer app replace the file, so watch its directory
	if err := fs.Add(filepath.Dir(target)); err != nil {
		w.logger.Warn("Failed to watch directory",
			zap.String("dir", filepath.Dir(target)),
			zap.Error(err),
		)
		_ = fs.Close()
		return nil
	}

	w.fs = fs
	w.started = true
	w.wg.Add(1)
	go w.loop(ctx, fs, target, onChange)

	w.logger.Info("Watching vocabulary file", zap.String("path", target))
	return nil
}

// Close stops watching and waits for the event loop to exit
func (w *Watcher) Close() error {
	w.mu.Lock()
	fs := w.fs
	w.mu.Unlock()

	var err error
	if fs != nil {
		w.once.Do(func() { err = fs.Close() })
	}
	w.wg.Wait()
	return err
}

func (w *Watcher) loop(ctx context.Context, fs *fsnotify.Watcher, target string, onChange func()) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			w.once.Do(func() { _ = fs.Close() })
			return
		case event, ok := <-fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug("Vocabulary file event", zap.String("op", event.Op.String()))
				onChange()
			}
		case err, ok := <-fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("File watcher error", zap.Error(err))
		}
	}
}
