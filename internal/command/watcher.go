package command

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher hot-reloads a keymap file when it changes on disk.
type Watcher struct {
	keymap  *Keymap
	path    string
	watcher *fsnotify.Watcher

	// OnReload, if set, is called after every successful reload.
	OnReload func()

	// OnError, if set, is called when a reload or watch fails.
	OnError func(error)

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewWatcher starts watching the given keymap file. The file's directory
// is watched rather than the file itself, so editors that replace the
// file on save keep triggering reloads.
func NewWatcher(km *Keymap, path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		keymap:  km,
		path:    path,
		watcher: fsw,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.matches(ev) {
				continue
			}
			if err := w.keymap.LoadFile(w.path); err != nil {
				w.report(err)
				continue
			}
			if w.OnReload != nil {
				w.OnReload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) matches(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Clean(ev.Name) == filepath.Clean(w.path)
}

func (w *Watcher) report(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}

// Close stops watching and waits for the watch loop to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.watcher.Close()
	<-w.done
	return err
}
