package prefabs

import (
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Change is one spec file edited on disk.
type Change struct {
	Name    string
	Removed bool
}

// Watcher reports edits to a fixed set of spec files in a directory. Bursts
// of writes to the same file are reported once.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   []string
	Changes chan Change
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dir for changes to the named files, TuningFile when
// none are given.
func NewWatcher(dir string, files ...string) (*Watcher, error) {
	if len(files) == 0 {
		files = []string{TuningFile}
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory, editors often replace files instead of writing them
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		files:   files,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Changes and Errors are closed once the watch
// goroutine has exited.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Changes)
		close(w.Errors)
		close(w.done)
	}()

	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			change, ok := w.filter(event)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[change.Name]; seen && now.Sub(t) < watchDebounce && !change.Removed {
				continue
			}
			last[change.Name] = now
			select {
			case w.Changes <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) filter(event fsnotify.Event) (Change, bool) {
	name := filepath.Base(event.Name)
	if !slices.Contains(w.files, name) {
		return Change{}, false
	}
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return Change{Name: name, Removed: true}, true
	case event.Has(fsnotify.Write), event.Has(fsnotify.Create):
		return Change{Name: name}, true
	default:
		return Change{}, false
	}
}
