package ports

import "go.trai.ch/commons/internal/core/domain"

// ConversionStore defines the interface for remembering completed conversions.
//
//go:generate go run go.uber.org/mock/mockgen -source=conversion_store.go -destination=mocks/mock_conversion_store.go -package=mocks
type ConversionStore interface {
	// Get retrieves the record for an input path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.ConversionRecord, error)

	// Put stores the record.
	Put(rec domain.ConversionRecord) error
}
