package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/commons/convert"
	"go.trai.ch/commons/internal/core/domain"
	"go.trai.ch/commons/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements the DocumentStore interface on the local file system.
type DocumentStore struct{}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Read loads the document at path.
func (s *DocumentStore) Read(path string) (*domain.Document, error) {
	format, err := convert.FormatFromPath(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}

	//nolint:gosec // path is supplied by the user on purpose
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}

	return &domain.Document{Path: path, Format: format, Data: data}, nil
}

// Write stores doc, creating parent directories as needed.
func (s *DocumentStore) Write(doc *domain.Document) error {
	if dir := filepath.Dir(doc.Path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", doc.Path)
		}
	}

	//nolint:gosec // documents are meant to be readable by others
	if err := os.WriteFile(doc.Path, doc.Data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDocumentWriteFailed.Error()), "path", doc.Path)
	}
	return nil
}

// Exists reports whether a regular file exists at path.
func (s *DocumentStore) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
