package engine

import (
	"fmt"
	"log"

	"github.com/fsnotify/fsnotify"
)

// WatchCorpus reloads the engine whenever the corpus file changes on disk.
// It returns a stop function that releases the watcher. Watching the
// embedded default corpus is an error: there is no file to watch.
func (e *Engine) WatchCorpus() (func() error, error) {
	if e.corpusPath == "" {
		return nil, fmt.Errorf("cannot watch the embedded corpus; configure a corpus file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create corpus watcher: %w", err)
	}

	if err := watcher.Add(e.corpusPath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch corpus file %q: %w", e.corpusPath, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					if err := e.Reload(); err != nil {
						// Keep serving the previous snapshot.
						log.Printf("Warning: %v", err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Warning: corpus watcher error: %v", err)
			}
		}
	}()

	return watcher.Close, nil
}
