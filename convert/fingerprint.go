package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Fingerprint returns a 16 hex digit XXHash of v's canonical JSON form.
// Values with equal JSON content have equal fingerprints regardless of map
// ordering.
func Fingerprint(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode JSON")
	}
	return fingerprintJSON(data)
}

// FingerprintBytes fingerprints a serialized document. A YAML document and
// the equivalent JSON document have the same fingerprint.
func FingerprintBytes(data []byte, format Format) (string, error) {
	switch format {
	case FormatJSON:
	case FormatYAML:
		var err error
		if data, err = YAMLToJSON(data); err != nil {
			return "", err
		}
	default:
		return "", zerr.With(ErrUnsupportedFormat, "format", string(format))
	}
	return fingerprintJSON(data)
}

func fingerprintJSON(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", zerr.Wrap(err, "failed to decode JSON")
	}

	// Object keys are sorted on re-encoding.
	canonical, err := json.Marshal(canonicalNumbers(v))
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode canonical JSON")
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(canonical)), nil
}

// canonicalNumbers rewrites numbers so that 1, 1.0 and 1e0 encode alike:
// integers that fit int64 stay integers, everything else becomes float64.
func canonicalNumbers(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := strconv.ParseInt(string(v), 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(string(v), 64); err == nil {
			return f
		}
		return v
	case map[string]any:
		for k, e := range v {
			v[k] = canonicalNumbers(e)
		}
		return v
	case []any:
		for i, e := range v {
			v[i] = canonicalNumbers(e)
		}
		return v
	default:
		return v
	}
}
