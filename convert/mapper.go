// Package convert moves values between Go types, maps, JSON and YAML using a
// single JSON field mapping, and fingerprints their content.
package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"go.trai.ch/zerr"
)

// Mapper converts values through their JSON representation.
type Mapper struct {
	// Strict rejects input fields that have no matching destination field.
	Strict bool
}

// Default is the lenient Mapper used by the package-level helpers.
var Default = Mapper{}

// Decode unmarshals JSON data into dst.
func (m Mapper) Decode(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if m.Strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		return zerr.Wrap(err, "failed to decode JSON")
	}
	return nil
}

// Convert copies src into dst by encoding src as JSON and decoding it into dst.
func (m Mapper) Convert(src, dst any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return zerr.Wrap(err, "failed to encode JSON")
	}
	return m.Decode(data, dst)
}

// Convert returns src converted to a new T. Absent input yields nil.
func Convert[T any](src any) (*T, error) {
	if isNil(src) {
		return nil, nil
	}
	var out T
	if err := Default.Convert(src, &out); err != nil {
		return nil, zerr.With(err, "target", fmt.Sprintf("%T", out))
	}
	return &out, nil
}

// FromMap builds a T from an attribute map. A nil map yields nil.
func FromMap[T any](m map[string]any) (*T, error) {
	if m == nil {
		return nil, nil
	}
	return Convert[T](m)
}

// ToMap returns the attributes of v as a map. Numbers are kept as
// json.Number so integers survive without loss of precision.
// Absent input yields nil.
func ToMap(v any) (map[string]any, error) {
	if isNil(v) {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode JSON")
	}
	if !isObject(data) {
		return nil, zerr.With(ErrNotObject, "type", fmt.Sprintf("%T", v))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, zerr.Wrap(err, "failed to decode JSON")
	}
	return out, nil
}

// FromJSON parses s into a new T. An empty string yields nil.
func FromJSON[T any](s string) (*T, error) {
	if s == "" {
		return nil, nil
	}
	var out T
	if err := Default.Decode([]byte(s), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FromJSONList parses a JSON array of T. An empty string yields nil.
func FromJSONList[T any](s string) ([]T, error) {
	if s == "" {
		return nil, nil
	}
	var out []T
	if err := Default.Decode([]byte(s), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ToJSON serializes v. Absent input yields "".
func ToJSON(v any) (string, error) {
	if isNil(v) {
		return "", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to encode JSON"), "type", fmt.Sprintf("%T", v))
	}
	return string(data), nil
}

// isNil reports whether v is nil or a nil pointer, map, slice or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
