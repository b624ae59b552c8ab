package resume

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ReloadedMsg carries the result of re-reading the résumé file.
type ReloadedMsg struct {
	Resume *Resume
	Err    error
}

// Watch reloads path whenever it changes and passes the result to
// onChange. The parent directory is watched so editors that replace the
// file by renaming are picked up. Watch returns once the watcher is
// running; it stops when ctx is done.
func Watch(ctx context.Context, path string, log *zap.Logger, onChange func(*Resume, error)) error {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve resume path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				log.Debug("resume changed", zap.String("path", abs), zap.Stringer("op", ev.Op))
				r, err := Load(abs)
				onChange(r, err)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("resume watcher", zap.Error(err))
			}
		}
	}()
	return nil
}
