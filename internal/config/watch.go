package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay absorbs editor save bursts: write-then-rename saves
// emit several events within a few milliseconds.
const debounceDelay = 200 * time.Millisecond

// Watch blocks until ctx is done, reloading path after every change and
// handing each valid result to onChange. Scenarios that fail to parse
// or validate are logged and skipped, so a half-saved edit never tears
// down a running server.
func Watch(ctx context.Context, path string, log *slog.Logger, onChange func(Scenario)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory rather than the file: editors that replace the
	// file on save would otherwise drop the watch with it.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	base := filepath.Base(path)

	debounce := time.NewTimer(time.Hour)
	defer debounce.Stop()
	if !debounce.Stop() {
		<-debounce.C
	}
	rearm := func() {
		if !debounce.Stop() {
			select {
			case <-debounce.C:
			default:
			}
		}
		debounce.Reset(debounceDelay)
	}

	log.Info("watching scenario", "path", path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			rearm()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("scenario watcher error", "err", err)
		case <-debounce.C:
			s, err := Load(path)
			if err != nil {
				log.Warn("scenario reload skipped", "path", path, "err", err)
				continue
			}
			log.Info("scenario reloaded", "path", path)
			onChange(s)
		}
	}
}
