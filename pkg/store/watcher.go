package store

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/fenestra-app/fenestra/pkg/errors"
	"github.com/fenestra-app/fenestra/pkg/logging"
)

// PreferencesWatcher reloads preferences when another process or window
// replaces preferences.json on disk. Because saves go through an atomic
// rename, the watcher observes create/rename events on the data directory
// rather than watching the file inode itself.
type PreferencesWatcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	changes chan Preferences
	done    chan struct{}
	logger  zerolog.Logger
}

// WatchPreferences starts watching the data directory for preference changes.
// Only meaningful on the OS filesystem; the data directory is created if it
// does not exist yet.
func (s *Store) WatchPreferences() (*PreferencesWatcher, error) {
	if err := s.fs.MkdirAll(s.paths.DataDir(), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "failed to create app data directory")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "failed to create filesystem watcher")
	}
	if err := fw.Add(s.paths.DataDir()); err != nil {
		fw.Close()
		return nil, errors.Wrap(err, errors.ErrIO, "failed to watch app data directory")
	}

	w := &PreferencesWatcher{
		store:   s,
		watcher: fw,
		changes: make(chan Preferences, 1),
		done:    make(chan struct{}),
		logger:  logging.GetLogger("store.watcher"),
	}
	go w.run()
	return w, nil
}

// Changes delivers the reloaded preferences after each on-disk replacement.
// Slow consumers only ever miss intermediate states, never the latest one.
func (w *PreferencesWatcher) Changes() <-chan Preferences {
	return w.changes
}

// Close stops the watcher and releases its resources.
func (w *PreferencesWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *PreferencesWatcher) run() {
	target := filepath.Base(w.store.paths.PreferencesFile())

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}

			prefs, err := w.store.LoadPreferences()
			if err != nil {
				w.logger.Warn().Err(err).Msg("Failed to reload preferences after change")
				continue
			}

			// Keep only the latest state if the consumer is behind.
			select {
			case w.changes <- prefs:
			default:
				select {
				case <-w.changes:
				default:
				}
				select {
				case w.changes <- prefs:
				default:
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("Filesystem watcher error")
		}
	}
}
