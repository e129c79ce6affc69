package domain

import (
	"go.trai.ch/commons/codes"
	"go.trai.ch/commons/numbers"
)

// Settings holds the user-configurable defaults of the commons CLI.
type Settings struct {
	Code   CodeSettings
	Number NumberSettings
	Text   TextSettings
}

// CodeSettings configures random code generation.
type CodeSettings struct {
	Length   int
	Alphabet string
}

// NumberSettings configures number formatting.
type NumberSettings struct {
	Pattern string
	Symbols numbers.Symbols
}

// TextSettings configures text transformations.
type TextSettings struct {
	// Delimiters separate words for camel-case conversion, in addition to space.
	Delimiters []rune
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Code: CodeSettings{
			Length:   codes.DefaultLength,
			Alphabet: codes.DefaultAlphabet,
		},
		Number: NumberSettings{
			Pattern: numbers.DefaultPattern,
			Symbols: numbers.DefaultSymbols,
		},
		Text: TextSettings{
			Delimiters: []rune{'_'},
		},
	}
}
