package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pickem-tracker/internal/config"
	"pickem-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// EntryStore persists the entry collection as a single JSON file.
// All mutations go through Update, which holds the store lock for the
// whole load-mutate-save cycle so concurrent requests cannot interleave
// partial writes.
type EntryStore struct {
	path   string
	mu     sync.Mutex
	logger zerolog.Logger
}

func New(cfg *config.Config, logger zerolog.Logger) *EntryStore {
	return &EntryStore{
		path:   cfg.EntriesPath,
		logger: logger,
	}
}

func NewWithPath(path string, logger zerolog.Logger) *EntryStore {
	return &EntryStore{path: path, logger: logger}
}

// Load reads the persisted entries. A missing or unreadable file yields
// an empty collection, never an error: the store is data-loss-tolerant
// and a corrupt file must not take the service down.
func (s *EntryStore) Load(ctx context.Context) []domain.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *EntryStore) load(ctx context.Context) []domain.Entry {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.Entry{}
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("entries file unreadable, starting empty")
		return []domain.Entry{}
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("entries file malformed, starting empty")
		return []domain.Entry{}
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries
}

// Save writes the full entry set. The data lands in a temp file in the
// same directory which is then renamed over the target, so a failed
// write never leaves a partially written entries file behind.
func (s *EntryStore) Save(ctx context.Context, entries []domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, entries)
}

func (s *EntryStore) save(ctx context.Context, entries []domain.Entry) error {
	if entries == nil {
		entries = []domain.Entry{}
	}

	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".entries-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing entries: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing entries: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing entries file: %w", err)
	}

	s.logger.Debug().Int("count", len(entries)).Str("path", s.path).Msg("entries saved")
	return nil
}

// Update runs fn under the store lock with the current entries and
// persists whatever it returns. If fn errors, nothing is written.
func (s *EntryStore) Update(ctx context.Context, fn func(entries []domain.Entry) ([]domain.Entry, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := fn(s.load(ctx))
	if err != nil {
		return err
	}
	return s.save(ctx, entries)
}
