package domain

import (
	"time"

	"go.trai.ch/commons/convert"
)

// Document is a serialized JSON or YAML file.
type Document struct {
	Path   string
	Format convert.Format
	Data   []byte
}

// ConversionRecord remembers the last conversion of an input document.
type ConversionRecord struct {
	Path        string         `json:"path,omitzero"`
	Fingerprint string         `json:"fingerprint,omitzero"`
	Output      string         `json:"output,omitzero"`
	Format      convert.Format `json:"format,omitzero"`
	Timestamp   time.Time      `json:"timestamp,omitzero"`
}

// UpToDate reports whether r already covers converting a document with the
// given fingerprint to output in format.
func (r *ConversionRecord) UpToDate(fingerprint, output string, format convert.Format) bool {
	if r == nil {
		return false
	}
	return r.Fingerprint == fingerprint && r.Output == output && r.Format == format
}
