// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// ErrorEntry exposes errorEntry to the external test package.
type ErrorEntry = errorEntry

// NewErrorEntry builds an entry.
func NewErrorEntry(message string, metadata map[string]any) ErrorEntry {
	return errorEntry{message: message, metadata: metadata}
}

// EntryMessage returns the message of an entry.
func EntryMessage(e ErrorEntry) string { return e.message }

// EntryMetadata returns the metadata of an entry.
func EntryMetadata(e ErrorEntry) map[string]any { return e.metadata }
