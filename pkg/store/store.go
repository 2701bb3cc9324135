// Package store implements the durable persistence layer: preferences and
// emergency recovery snapshots saved as JSON with write-temp-then-rename
// atomicity, so a reader never observes a half-written file.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/fenestra-app/fenestra/pkg/errors"
	"github.com/fenestra-app/fenestra/pkg/filesystem"
	"github.com/fenestra-app/fenestra/pkg/logging"
	"github.com/fenestra-app/fenestra/pkg/paths"
)

// Policy defaults. Overridable per store via options (pkg/config feeds these);
// the defaults preserve long-standing on-disk behavior.
const (
	// DefaultMaxRecoveryBytes caps the serialized size of a recovery snapshot.
	DefaultMaxRecoveryBytes = 10 * 1024 * 1024

	// DefaultRetention is how long recovery snapshots are kept before the
	// sweep removes them.
	DefaultRetention = 7 * 24 * time.Hour
)

// Store validates, serializes, atomically writes, reads, and retires
// JSON-backed records.
type Store struct {
	fs               filesystem.FS
	paths            *paths.Paths
	maxRecoveryBytes int
	retention        time.Duration
	now              func() time.Time
	logger           zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithMaxRecoveryBytes overrides the recovery snapshot size cap.
func WithMaxRecoveryBytes(n int) Option {
	return func(s *Store) { s.maxRecoveryBytes = n }
}

// WithRetention overrides how long recovery snapshots are kept.
func WithRetention(d time.Duration) Option {
	return func(s *Store) { s.retention = d }
}

// WithClock overrides the time source used by the retention sweep.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store over the given filesystem and path layout.
func New(fs filesystem.FS, p *paths.Paths, opts ...Option) *Store {
	s := &Store{
		fs:               fs,
		paths:            p,
		maxRecoveryBytes: DefaultMaxRecoveryBytes,
		retention:        DefaultRetention,
		now:              time.Now,
		logger:           logging.GetLogger("store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SavePreferences validates and atomically persists the preferences record.
// The record is overwritten wholesale on every save.
func (s *Store) SavePreferences(prefs Preferences) error {
	if err := prefs.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("Rejected invalid preferences")
		return err
	}

	s.logger.Debug().Str("theme", string(prefs.Theme)).Msg("Saving preferences to disk")

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to serialize preferences")
		return errors.Wrap(err, errors.ErrParse, "failed to serialize preferences")
	}

	if err := s.fs.MkdirAll(s.paths.DataDir(), 0755); err != nil {
		s.logger.Error().Err(err).Msg("Failed to create app data directory")
		return errors.Wrap(err, errors.ErrIO, "failed to create app data directory")
	}

	if err := s.writeFileAtomic(s.paths.PreferencesFile(), data); err != nil {
		return err
	}

	s.logger.Info().Str("path", s.paths.PreferencesFile()).Msg("Successfully saved preferences")
	return nil
}

// LoadPreferences reads the preferences record from disk. A missing file is
// not an error: it means first run, and the defaults are returned.
func (s *Store) LoadPreferences() (Preferences, error) {
	s.logger.Debug().Msg("Loading preferences from disk")

	path := s.paths.PreferencesFile()
	if _, err := s.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			s.logger.Info().Msg("Preferences file not found, using defaults")
			return DefaultPreferences(), nil
		}
		s.logger.Error().Err(err).Msg("Failed to stat preferences file")
		return Preferences{}, errors.Wrap(err, errors.ErrIO, "failed to stat preferences file")
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read preferences file")
		return Preferences{}, errors.Wrap(err, errors.ErrIO, "failed to read preferences file")
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		s.logger.Error().Err(err).Msg("Failed to parse preferences JSON")
		return Preferences{}, errors.Wrap(err, errors.ErrParse, "failed to parse preferences")
	}

	s.logger.Info().Msg("Successfully loaded preferences")
	return prefs, nil
}

// writeFileAtomic writes data to a sibling temporary path and renames it over
// the final path. The rename is atomic on the same volume, so the final path
// always holds either the previous complete content or the new complete
// content. A failed rename may orphan the temporary file; that leak is
// accepted and not retried.
func (s *Store) writeFileAtomic(path string, data []byte) error {
	tmp := tempPath(path)

	if err := s.fs.WriteFile(tmp, data, 0644); err != nil {
		s.logger.Error().Err(err).Str("path", tmp).Msg("Failed to write temporary file")
		return errors.Wrap(err, errors.ErrIO, "failed to write file")
	}

	if err := s.fs.Rename(tmp, path); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("Failed to finalize file")
		return errors.Wrap(err, errors.ErrIO, "failed to finalize file")
	}

	return nil
}

// tempPath replaces the path's extension with .tmp.
func tempPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".tmp"
}
