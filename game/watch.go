package game

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// LayoutWatcher reports changes to a layout file. It watches the file's
// directory so editors that replace the file on save are still seen.
type LayoutWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Changed chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	done    sync.WaitGroup
}

// WatchLayout starts watching path.
func WatchLayout(path string) (*LayoutWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	lw := &LayoutWatcher{
		watcher: w,
		path:    abs,
		Changed: make(chan string, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	lw.done.Add(1)
	go lw.run()
	return lw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (lw *LayoutWatcher) Close() error {
	var err error
	lw.once.Do(func() {
		close(lw.closeCh)
		err = lw.watcher.Close()
		lw.done.Wait()
		close(lw.Changed)
		close(lw.Errors)
	})
	return err
}

// Poll returns true when the file changed since the last Poll. It never
// blocks.
func (lw *LayoutWatcher) Poll() (bool, error) {
	changed := false
	for {
		select {
		case _, ok := <-lw.Changed:
			if !ok {
				return changed, nil
			}
			changed = true
		case err, ok := <-lw.Errors:
			if ok {
				return changed, err
			}
		default:
			return changed, nil
		}
	}
}

func (lw *LayoutWatcher) run() {
	defer lw.done.Done()
	var last time.Time
	for {
		select {
		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != lw.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < reloadDebounce {
				continue
			}
			last = now
			select {
			case lw.Changed <- event.Name:
			default:
			}
		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case lw.Errors <- err:
			default:
			}
		case <-lw.closeCh:
			return
		}
	}
}
