package ports

import "go.trai.ch/commons/internal/core/domain"

// DocumentStore defines the interface for reading and writing JSON/YAML documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=document_store.go -destination=mocks/mock_document_store.go -package=mocks
type DocumentStore interface {
	// Read loads the document at path, deriving its format from the extension.
	Read(path string) (*domain.Document, error)

	// Write stores doc at doc.Path, creating parent directories as needed.
	Write(doc *domain.Document) error

	// Exists reports whether a document exists at path.
	Exists(path string) bool
}
