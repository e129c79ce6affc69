// Package cas implements the fingerprint based conversion state store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/commons/internal/core/domain"
	"go.trai.ch/commons/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConversionStore = (*Store)(nil)

// Store implements ports.ConversionStore using a flat JSON file keyed by input path.
// The file is read on first use.
type Store struct {
	path   string
	mu     sync.Mutex
	loaded bool
	cache  map[string]domain.ConversionRecord
}

// NewStore creates a new ConversionStore backed by the file at the given path.
// A missing file yields an empty store.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the location of the state file.
func (s *Store) Path() string {
	return s.path
}

// ensureLoaded reads the state file once. The caller must hold the lock.
func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	cache := make(map[string]domain.ConversionRecord)

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	case len(data) > 0:
		if err := json.Unmarshal(data, &cache); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
		}
	}

	s.cache = cache
	s.loaded = true
	return nil
}

// save writes the cache to disk. The caller must hold the lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the record for an input path.
func (s *Store) Get(path string) (*domain.ConversionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	rec, ok := s.cache[filepath.Clean(path)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// Put stores the record and persists the state file. The in-memory state
// is left untouched when the write fails.
func (s *Store) Put(rec domain.ConversionRecord) error {
	rec.Path = filepath.Clean(rec.Path)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	prev, existed := s.cache[rec.Path]
	s.cache[rec.Path] = rec
	if err := s.save(); err != nil {
		if existed {
			s.cache[rec.Path] = prev
		} else {
			delete(s.cache, rec.Path)
		}
		return err
	}
	return nil
}
