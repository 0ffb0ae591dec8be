package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/callpipe/callpipe/domain/repositories"
)

const replyPrefix = "reply_"

// LocalStore stages audio files in a single directory that is also
// served read-only over HTTP at the /audio path prefix.
type LocalStore struct {
	dir     string
	baseURL string
	ttl     time.Duration
	logger  *zap.Logger
	done    chan struct{}
}

var _ repositories.AudioStore = (*LocalStore)(nil)

// NewLocalStore creates the staging directory if needed. baseURL is the
// externally reachable base URL of this service; reply URLs are formed
// as baseURL + "/audio/" + filename.
func NewLocalStore(dir, baseURL string, ttl time.Duration, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
		logger:  logger,
		done:    make(chan struct{}),
	}, nil
}

// Dir returns the staging directory path.
func (s *LocalStore) Dir() string {
	return s.dir
}

// StageRecording writes a fetched recording and returns its local path.
func (s *LocalStore) StageRecording(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write recording: %w", err)
	}
	s.logger.Debug("Staged recording", zap.String("path", path), zap.Int("bytes", len(data)))
	return path, nil
}

// StageReply writes synthesized audio and returns its public URL.
func (s *LocalStore) StageReply(name string, data []byte) (string, error) {
	base := filepath.Base(name)
	path := filepath.Join(s.dir, base)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write reply audio: %w", err)
	}
	s.logger.Debug("Staged reply", zap.String("path", path), zap.Int("bytes", len(data)))
	return s.baseURL + "/audio/" + base, nil
}

// Remove deletes a staged file. A missing file is not an error.
func (s *LocalStore) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove staged file: %w", err)
	}
	return nil
}

// StartSweeper launches a background loop that deletes reply files
// older than the configured TTL. Reply files must outlive the HTTP
// response that references them, since the telephony provider fetches
// them afterwards; the TTL bounds how long they linger after that.
func (s *LocalStore) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.done:
				return
			}
		}
	}()
}

// StopSweeper terminates the background sweep loop.
func (s *LocalStore) StopSweeper() {
	close(s.done)
}

func (s *LocalStore) sweep() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Warn("Audio sweep failed to read directory", zap.Error(err))
		return
	}
	cutoff := time.Now().Add(-s.ttl)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), replyPrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("Swept expired reply audio", zap.Int("removed", removed))
	}
}
