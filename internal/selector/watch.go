package selector

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches bursts of editor saves into one re-scan.
const DefaultDebounce = 300 * time.Millisecond

// Watcher re-runs a Scanner whenever a source file under <root>/src changes.
type Watcher struct {
	scanner  *Scanner
	root     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
}

// NewWatcher creates a Watcher for root. The caller must call Run or Close.
func NewWatcher(scanner *Scanner, root string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		scanner:  scanner,
		root:     root,
		debounce: debounce,
		watcher:  fw,
		logger:   scanner.logger,
	}

	// The root is watched so a src directory created later is picked up.
	if err := fw.Add(root); err != nil {
		fw.Close()
		return nil, err
	}
	w.addTree(filepath.Join(root, SourceDir))
	return w, nil
}

// Run emits an initial scan, then a fresh scan after every debounced batch of
// relevant changes. It blocks until ctx is done and closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, onChange func([]Candidate)) error {
	defer w.Close()

	onChange(w.scanner.Scan(w.root))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-fire:
			fire = nil
			onChange(w.scanner.Scan(w.root))
		}
	}
}

// Close releases the underlying watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// relevant reports whether ev can change the scan result. New directories
// inside src are added to the watch set as a side effect.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
		return false
	}
	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			w.addTree(ev.Name)
			return true
		}
	}
	return w.scanner.Matches(ev.Name)
}

// addTree watches dir and every directory below it. fsnotify is not recursive.
func (w *Watcher) addTree(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				w.logger.Warn("cannot watch directory", zap.String("dir", path), zap.Error(err))
			}
		}
		return nil
	})
}
