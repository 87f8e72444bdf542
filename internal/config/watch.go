package config

import (
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config whenever the file at path is written or
// created and passes the result to onChange. Invalid or unreadable
// configs are skipped; the previous config stays in effect. The
// returned Closer stops the watcher.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file (write-to-temp + rename) keep
// triggering reloads.
func Watch(path string, onChange func(*Config)) (io.Closer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := LoadFrom(abs)
				if err != nil {
					continue
				}
				onChange(cfg)
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return watcher, nil
}
