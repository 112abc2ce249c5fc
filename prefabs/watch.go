package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce drops repeat notifications for one file; editors often write a
// file several times per save.
const debounce = 100 * time.Millisecond

// Watcher reports prefab files changed on disk by base name, e.g.
// "player.yaml". Receive from Changes and Errors on the game loop and call
// Close when done.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan string
	errs    chan error
	stop    chan struct{}
	done    chan struct{}

	closeOnce sync.Once
	closeErr  error
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fsw,
		changes: make(chan string, 16),
		errs:    make(chan error, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) Changes() <-chan string { return w.changes }

// Errors carries watcher failures. Only the latest unread error is kept.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops watching and closes both channels. It is safe to call twice.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.stop)
		w.closeErr = w.fs.Close()
		<-w.done
		close(w.changes)
		close(w.errs)
	})
	return w.closeErr
}

func (w *Watcher) loop() {
	defer close(w.done)

	seen := make(map[string]time.Time)
	for {
		select {
		case <-w.stop:
			return
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			name, ok := changedSpec(event)
			if !ok {
				continue
			}
			now := time.Now()
			if last, dup := seen[name]; dup && now.Sub(last) < debounce {
				continue
			}
			seen[name] = now
			select {
			case w.changes <- name:
			case <-w.stop:
				return
			}
		}
	}
}

// changedSpec returns the base name of the prefab file that event wrote,
// created or renamed into place. Removals are ignored: the embedded copy is
// still there.
func changedSpec(event fsnotify.Event) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".yaml", ".yml":
		return filepath.Base(event.Name), true
	}
	return "", false
}
