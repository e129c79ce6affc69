package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches zerr errors, which report their message without the chain.
type messager interface {
	Message() string
}

// metadataer matches zerr errors carrying key-value metadata.
type metadataer interface {
	Metadata() map[string]any
}

// errorEntry is one level of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of err. zerr levels contribute their own
// message and metadata; the first standard error ends the walk with its full
// text. Metadata of levels without a message is attached to the next entry.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	var pending map[string]any

	for current := err; current != nil; current = errors.Unwrap(current) {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}

		if m.Message() == "" {
			pending = merge(pending, meta)
			continue
		}
		entries = append(entries, errorEntry{message: m.Message(), metadata: merge(pending, meta)})
		pending = nil
	}

	return entries
}

// merge returns the union of a and b, or nil when both are empty.
func merge(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// formatErrorEntries renders entries as an "Error:" headline followed by an
// indented "Caused by:" list.
func formatErrorEntries(entries []errorEntry) string {
	lines := make([]string, 0, len(entries)+2)

	for i, entry := range entries {
		text := entry.message + formatMetadata(entry.metadata)
		parts := strings.Split(text, "\n")

		switch i {
		case 0:
			lines = append(lines, "Error: "+parts[0])
			for _, line := range parts[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		case 1:
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, "    → "+parts[0])
		for _, line := range parts[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, meta[k]))
	}
	return " (" + strings.Join(pairs, ", ") + ")"
}
