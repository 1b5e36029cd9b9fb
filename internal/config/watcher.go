package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration file whenever it changes and invokes
// onChange with the fresh configuration. It returns a stop function that
// releases the underlying watcher.
//
// The parent directory is watched rather than the file itself so that
// editors replacing the file atomically (write to temp, rename) are
// still observed.
func Watch(path string, onChange func(*Config)) (func() error, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				if name, err := filepath.Abs(event.Name); err != nil || name != abs {
					continue
				}

				cfg, err := Load(path)
				if err != nil {
					log.Printf("Failed to reload config: %v", err)
					continue
				}
				onChange(cfg)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Config watcher error: %v", err)
			}
		}
	}()

	return watcher.Close, nil
}
