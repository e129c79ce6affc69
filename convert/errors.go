package convert

import "go.trai.ch/zerr"

var (
	// ErrNotObject is returned when a value does not serialize to a JSON object.
	ErrNotObject = zerr.New("value is not an object")

	// ErrUnsupportedFormat is returned for document formats other than JSON and YAML.
	ErrUnsupportedFormat = zerr.New("unsupported document format")
)
