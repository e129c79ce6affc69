package strs

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower returns s in lower case. A Caser is stateful, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Capitalize title-cases the first rune of s.
func Capitalize(s string) string {
	return mapFirst(s, unicode.ToTitle)
}

// Uncapitalize lower-cases the first rune of s.
func Uncapitalize(s string) string {
	return mapFirst(s, unicode.ToLower)
}

func mapFirst(s string, fn func(rune) rune) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	mapped := fn(r)
	if mapped == r {
		return s
	}
	return string(mapped) + s[size:]
}

// ToCamelCase converts s to camel case. The input is lower-cased, delimiter
// runes are dropped and the rune following a delimiter is title-cased.
// Space is always a delimiter. The first rune written is title-cased only
// when capitalizeFirst is set.
func ToCamelCase(s string, capitalizeFirst bool, delimiters ...rune) string {
	if s == "" {
		return s
	}

	delims := make(map[rune]struct{}, len(delimiters)+1)
	delims[' '] = struct{}{}
	for _, d := range delimiters {
		delims[d] = struct{}{}
	}

	var b strings.Builder
	b.Grow(len(s))

	capitalizeNext := capitalizeFirst
	written := false
	for _, r := range lower(s) {
		if _, ok := delims[r]; ok {
			// Leading delimiters never capitalize the first output rune.
			capitalizeNext = written
			continue
		}
		if capitalizeNext || (!written && capitalizeFirst) {
			b.WriteRune(unicode.ToTitle(r))
			capitalizeNext = false
		} else {
			b.WriteRune(r)
		}
		written = true
	}
	return b.String()
}

// ToCamelCaseUnderscore converts snake_case input to lowerCamelCase.
func ToCamelCaseUnderscore(s string) string {
	return ToCamelCase(s, false, '_')
}
