package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-loads physics.json whenever it changes on disk and hands
// the result to a callback. Intended for live tuning during
// development; the embedded config path never uses it.
type Watcher struct {
	dir      string
	watcher  *fsnotify.Watcher
	onReload func(*PhysicsConfig)
	done     chan struct{}
}

// NewWatcher starts watching dir for changes to physics.json.
// onReload runs on the watcher goroutine with each successfully parsed
// config; parse failures are logged and skipped so a half-saved file
// does not kill the session.
func NewWatcher(dir string, onReload func(*PhysicsConfig)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &Watcher{
		dir:      dir,
		watcher:  fw,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	loader := NewLoader(w.dir)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != "physics.json" {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := loader.LoadPhysics()
			if err != nil {
				log.Printf("config reload skipped: %v", err)
				continue
			}
			w.onReload(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
