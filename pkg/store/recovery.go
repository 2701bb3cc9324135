package store

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/fenestra-app/fenestra/pkg/errors"
	"github.com/fenestra-app/fenestra/pkg/paths"
)

// SaveRecovery validates and atomically persists an emergency recovery
// snapshot under the given key. The document may be any JSON-serializable
// value; its serialized size must not exceed the configured cap.
func (s *Store) SaveRecovery(key string, doc interface{}) error {
	s.logger.Info().Str("key", key).Msg("Saving emergency data")

	if err := paths.ValidateRecoveryKey(key); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Rejected invalid recovery key")
		return err
	}

	// Size check on the compact form, before any disk mutation.
	compact, err := json.Marshal(doc)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to serialize emergency data")
		return errors.Wrap(err, errors.ErrParse, "failed to serialize emergency data")
	}
	if len(compact) > s.maxRecoveryBytes {
		s.logger.Warn().Int("size", len(compact)).Int("max", s.maxRecoveryBytes).
			Msg("Rejected oversized emergency data")
		return errors.Newf(errors.ErrDataTooLarge,
			"data too large (max %d bytes)", s.maxRecoveryBytes).
			WithDetail("max_bytes", s.maxRecoveryBytes)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to serialize emergency data")
		return errors.Wrap(err, errors.ErrParse, "failed to serialize emergency data")
	}

	if err := s.fs.MkdirAll(s.paths.RecoveryDir(), 0755); err != nil {
		s.logger.Error().Err(err).Msg("Failed to create recovery directory")
		return errors.Wrap(err, errors.ErrIO, "failed to create recovery directory")
	}

	path := s.paths.RecoveryFile(key)
	if err := s.writeFileAtomic(path, data); err != nil {
		return err
	}

	s.logger.Info().Str("path", path).Msg("Successfully saved emergency data")
	return nil
}

// LoadRecovery reads the recovery snapshot stored under the given key.
// A missing snapshot is reported as ErrFileNotFound so callers can tell
// "never saved" apart from "corrupted".
func (s *Store) LoadRecovery(key string) (interface{}, error) {
	s.logger.Info().Str("key", key).Msg("Loading emergency data")

	if err := paths.ValidateRecoveryKey(key); err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("Rejected invalid recovery key")
		return nil, err
	}

	path := s.paths.RecoveryFile(key)
	if _, err := s.fs.Stat(path); err != nil {
		if os.IsNotExist(err) {
			s.logger.Info().Str("path", path).Msg("Recovery file not found")
			return nil, errors.New(errors.ErrFileNotFound, "file not found")
		}
		s.logger.Error().Err(err).Msg("Failed to stat recovery file")
		return nil, errors.Wrap(err, errors.ErrIO, "failed to stat recovery file")
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read recovery file")
		return nil, errors.Wrap(err, errors.ErrIO, "failed to read recovery file")
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Error().Err(err).Msg("Failed to parse recovery JSON")
		return nil, errors.Wrap(err, errors.ErrParse, "failed to parse recovery data")
	}

	s.logger.Info().Msg("Successfully loaded emergency data")
	return doc, nil
}

// RecoveryInfo describes one stored recovery snapshot.
type RecoveryInfo struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// ListRecovery enumerates the stored recovery snapshots. A missing recovery
// directory simply means nothing has been saved yet.
func (s *Store) ListRecovery() ([]RecoveryInfo, error) {
	entries, err := s.fs.ReadDir(s.paths.RecoveryDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrIO, "failed to read recovery directory")
	}

	var infos []RecoveryInfo
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
		infos = append(infos, RecoveryInfo{
			Key:     strings.TrimSuffix(name, ".json"),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return infos, nil
}
