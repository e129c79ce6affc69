package convert

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Format identifies a document encoding.
type Format string

const (
	// FormatJSON is a JSON document.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name, accepting "yml" as YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", zerr.With(ErrUnsupportedFormat, "format", s)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", zerr.With(ErrUnsupportedFormat, "path", path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", zerr.With(err, "path", path)
	}
	return f, nil
}

// Ext returns the canonical file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Transcode re-encodes data from one format to another.
func Transcode(data []byte, from, to Format) ([]byte, error) {
	if from == to {
		return data, nil
	}
	switch {
	case from == FormatJSON && to == FormatYAML:
		return JSONToYAML(data)
	case from == FormatYAML && to == FormatJSON:
		return YAMLToJSON(data)
	default:
		err := zerr.With(ErrUnsupportedFormat, "from", string(from))
		return nil, zerr.With(err, "to", string(to))
	}
}
