package strs

import (
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/charmap"
)

// FromBytes decodes b as ISO-8859-1, one character per byte.
func FromBytes(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	// Every byte value is a valid ISO-8859-1 code point, so decoding cannot fail.
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(out)
}

// FromBytesRange decodes length bytes of b starting at offset as ISO-8859-1.
func FromBytesRange(b []byte, offset, length int) (string, error) {
	if offset < 0 || length < 0 || offset > len(b)-length {
		err := zerr.With(ErrOutOfRange, "offset", offset)
		err = zerr.With(err, "length", length)
		return "", zerr.With(err, "size", len(b))
	}
	return FromBytes(b[offset : offset+length]), nil
}
