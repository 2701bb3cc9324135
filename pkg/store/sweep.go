package store

import (
	"os"
	"strings"

	"github.com/fenestra-app/fenestra/pkg/errors"
)

// SweepExpired removes recovery snapshots whose age strictly exceeds the
// configured retention and returns how many were removed. Per-file failures
// are logged and skipped; one bad file never aborts the sweep. The sweep is
// lock-free: a snapshot rewritten concurrently may disappear under it, and a
// missing file at delete time is benign.
func (s *Store) SweepExpired() (int, error) {
	s.logger.Info().Msg("Cleaning up old recovery files")

	dir := s.paths.RecoveryDir()
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		s.logger.Error().Err(err).Msg("Failed to create recovery directory")
		return 0, errors.Wrap(err, errors.ErrIO, "failed to create recovery directory")
	}

	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read recovery directory")
		return 0, errors.Wrap(err, errors.ErrIO, "failed to read recovery directory")
	}

	cutoff := s.now().Add(-s.retention)
	removed := 0

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			s.logger.Warn().Err(err).Str("file", name).Msg("Failed to get file metadata")
			continue
		}

		if !info.ModTime().Before(cutoff) {
			continue
		}

		path := s.paths.RecoveryFile(strings.TrimSuffix(name, ".json"))
		if err := s.fs.Remove(path); err != nil {
			if os.IsNotExist(err) {
				// Deleted out from under us, likely by a concurrent rewrite.
				s.logger.Debug().Str("path", path).Msg("Recovery file already gone")
			} else {
				s.logger.Warn().Err(err).Str("path", path).Msg("Failed to remove old recovery file")
			}
			continue
		}

		s.logger.Info().Str("path", path).Msg("Removed old recovery file")
		removed++
	}

	s.logger.Info().Int("removed", removed).Msg("Cleanup complete")
	return removed, nil
}
