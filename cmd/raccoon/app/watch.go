package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/appcypher/raccoon/internal/config"
)

// Watch re-tokenizes path every time it is written to, printing the new
// token list to stdout. debounceMillis overrides the .raccoon.yml/default
// debounce interval when positive.
func Watch(path string, debounceMillis int) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file '%s' not found", path)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	debounce := cfg.WatchDebounce
	if debounceMillis > 0 {
		debounce = time.Duration(debounceMillis) * time.Millisecond
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	log.Info("watching for changes", "file", path, "debounce", debounce)
	fmt.Printf("watching '%s' for changes...\n", path)

	if err := Tokenize(path); err != nil {
		log.Error("initial tokenize failed", "error", err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug("file event", "op", event.Op.String(), "path", event.Name)
			timer.Reset(debounce)
			pending = true

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "error", err)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			if err := Tokenize(path); err != nil {
				log.Error("tokenize failed", "error", err)
			}
		}
	}
}
