package settings

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the settings file must stay untouched before it is reloaded.
const reloadDebounce = 100 * time.Millisecond

// Watch reloads the settings file at path every time it changes, until ctx is done. Every successful
// reload passes a fresh File to onChange. Files that fail to load are passed to onError, if it is not
// nil, and the previous settings stay in use. Watch blocks and is usually called in its own goroutine.
func Watch(ctx context.Context, path string, onChange func(File), onError func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// The directory is watched rather than the file, as editors often replace files on save.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	name := filepath.Clean(path)

	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Reload once the file stopped changing.
			timer.Reset(reloadDebounce)
		case <-timer.C:
			f, err := Load(path)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(f)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(err)
			}
		}
	}
}
