package document

import (
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Watch observes the document's backing file for changes made outside
// the editor, so a save can warn before overwriting them. It watches
// the parent directory because many programs replace files by rename.
type Watch struct {
	watcher  *fsnotify.Watcher
	path     string
	modified atomic.Bool
	done     chan struct{}
}

// NewWatch starts watching the file at path.
func NewWatch(path string) (*Watch, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watch{
		watcher: fsw,
		path:    abs,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watch) run() {
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.modified.Store(true)
			}
		case _, ok := <-w.watcher.Errors:
			// Watch errors degrade to unwatched; the editor keeps
			// working without the on-disk change warning.
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Modified reports whether the file changed on disk since the last
// Reset.
func (w *Watch) Modified() bool {
	return w.modified.Load()
}

// Reset clears the modified flag, typically right after a save.
func (w *Watch) Reset() {
	w.modified.Store(false)
}

// Close stops the watcher.
func (w *Watch) Close() error {
	close(w.done)
	return w.watcher.Close()
}
