// Package strs provides nil-free string helpers: emptiness checks, defaults,
// case conversion, byte decoding and MessageFormat-style formatting.
//
// An absent string is the empty string throughout this package. White space
// is whatever unicode.IsSpace accepts: U+00A0 and the other Unicode spaces
// count as blank, while control characters outside \t\n\v\f\r do not.
package strs

import (
	"strings"
	"unicode/utf8"

	"go.trai.ch/commons/lang"
)

// Length returns the number of runes in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// IsEmpty reports whether s has no characters.
func IsEmpty(s string) bool {
	return s == ""
}

// IsBlank reports whether s is empty or contains only white space.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank is the negation of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Trim removes leading and trailing white space.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Replace replaces every occurrence of old with replacement.
// Blank input is returned unchanged.
func Replace(s, old, replacement string) string {
	if IsBlank(s) {
		return s
	}
	return strings.ReplaceAll(s, old, replacement)
}

// DefaultIfEmpty returns s, or the value supplied by fn when s is empty.
func DefaultIfEmpty(s string, fn func() string) string {
	if IsEmpty(s) {
		return lang.Supply(fn)
	}
	return s
}

// DefaultIfBlank returns s, or the value supplied by fn when s is blank.
func DefaultIfBlank(s string, fn func() string) string {
	if IsBlank(s) {
		return lang.Supply(fn)
	}
	return s
}

// FreeText normalizes user-entered text for matching: lower case, trimmed,
// with each run of white space collapsed to a single space.
// Blank input yields "".
func FreeText(s string) string {
	if IsBlank(s) {
		return ""
	}
	return strings.Join(strings.Fields(lower(s)), " ")
}
