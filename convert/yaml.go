package convert

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// JSONToYAML re-encodes a JSON document as block-style YAML, keeping the
// order of object keys.
func JSONToYAML(data []byte) ([]byte, error) {
	if !json.Valid(data) {
		return nil, zerr.New("invalid JSON document")
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse JSON document")
	}
	clearStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(&doc); err != nil {
		return nil, zerr.Wrap(err, "failed to encode YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to encode YAML")
	}
	return buf.Bytes(), nil
}

// clearStyle drops the flow and quoting styles inherited from JSON syntax.
// The encoder still quotes strings that would otherwise change type.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// YAMLToJSON re-encodes a YAML document as compact JSON, keeping the order
// of mapping keys. Aliases are expanded. An empty document yields null.
func YAMLToJSON(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse YAML document")
	}

	var buf bytes.Buffer
	w := jsonWriter{buf: &buf, visiting: make(map[*yaml.Node]bool)}
	if err := w.write(&doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type jsonWriter struct {
	buf      *bytes.Buffer
	visiting map[*yaml.Node]bool
}

func (w jsonWriter) write(n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			w.buf.WriteString("null")
			return nil
		}
		return w.write(n.Content[0])
	case yaml.AliasNode:
		return w.writeAlias(n)
	case yaml.MappingNode:
		return w.writeMapping(n)
	case yaml.SequenceNode:
		w.buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			if err := w.write(item); err != nil {
				return err
			}
		}
		w.buf.WriteByte(']')
		return nil
	case yaml.ScalarNode:
		return w.writeScalar(n)
	default:
		w.buf.WriteString("null")
		return nil
	}
}

func (w jsonWriter) writeAlias(n *yaml.Node) error {
	if w.visiting[n.Alias] {
		return zerr.With(zerr.New("recursive YAML alias"), "line", n.Line)
	}
	w.visiting[n.Alias] = true
	defer delete(w.visiting, n.Alias)
	return w.write(n.Alias)
}

func (w jsonWriter) writeMapping(n *yaml.Node) error {
	w.buf.WriteByte('{')
	for i := 0; i+1 < len(n.Content); i += 2 {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		key := n.Content[i]
		for key.Kind == yaml.AliasNode && key.Alias != nil {
			key = key.Alias
		}
		if key.Kind != yaml.ScalarNode {
			return zerr.With(zerr.New("YAML mapping key is not a scalar"), "line", key.Line)
		}
		encodedKey, err := json.Marshal(key.Value)
		if err != nil {
			return zerr.Wrap(err, "failed to encode JSON key")
		}
		w.buf.Write(encodedKey)
		w.buf.WriteByte(':')
		if err := w.write(n.Content[i+1]); err != nil {
			return err
		}
	}
	w.buf.WriteByte('}')
	return nil
}

func (w jsonWriter) writeScalar(n *yaml.Node) error {
	var v any
	if err := n.Decode(&v); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to decode YAML scalar"), "line", n.Line)
	}
	encoded, err := json.Marshal(v)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode JSON value"), "line", n.Line)
	}
	w.buf.Write(encoded)
	return nil
}

// ToYAML serializes v as YAML using its JSON field mapping.
func ToYAML(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode JSON")
	}
	return JSONToYAML(data)
}

// FromYAML parses a YAML document into a new T using T's JSON field
// mapping. Empty input yields nil.
func FromYAML[T any](data []byte) (*T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	jsonData, err := YAMLToJSON(data)
	if err != nil {
		return nil, err
	}
	var out T
	if err := Default.Decode(jsonData, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
