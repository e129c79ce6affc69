package numbers

import (
	"strings"

	"go.trai.ch/zerr"
)

const (
	digit        = '#'
	zeroDigit    = '0'
	groupingSep  = ','
	decimalSep   = '.'
	quote        = '\''
	percent      = '%'
	subSeparator = ';'
)

// pattern is the parsed positive sub-pattern of a DecimalFormat-style pattern.
type pattern struct {
	prefix        string
	suffix        string
	grouping      int
	minInt        int
	minFrac       int
	maxFrac       int
	showDecimal   bool
	multiplyBy100 bool
}

func parsePattern(src string) (pattern, error) {
	var p pattern

	positive := cutSubPattern(src)

	prefix, rest, err := p.scanAffix(positive, true)
	if err != nil {
		return p, zerr.With(err, "pattern", src)
	}

	end := 0
	for end < len(rest) && isNumberChar(rest[end]) {
		end++
	}
	if err := p.parseNumber(rest[:end]); err != nil {
		return p, zerr.With(err, "pattern", src)
	}

	suffix, tail, err := p.scanAffix(rest[end:], false)
	if err != nil || tail != "" {
		return p, zerr.With(ErrInvalidPattern, "pattern", src)
	}

	p.prefix = prefix
	p.suffix = suffix
	return p, nil
}

// cutSubPattern drops an optional ";negative" sub-pattern. Negative numbers
// are always rendered with a leading minus sign.
func cutSubPattern(src string) string {
	quoted := false
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case quote:
			quoted = !quoted
		case subSeparator:
			if !quoted {
				return src[:i]
			}
		}
	}
	return src
}

// scanAffix reads literal text up to the first unquoted number character.
// In prefix position it stops there; in suffix position a number character
// makes the pattern invalid.
func (p *pattern) scanAffix(src string, isPrefix bool) (string, string, error) {
	var b strings.Builder
	quoted := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == quote:
			if i+1 < len(src) && src[i+1] == quote {
				b.WriteByte(quote)
				i++
				continue
			}
			quoted = !quoted
		case quoted:
			b.WriteByte(c)
		case isNumberChar(c):
			if isPrefix {
				return b.String(), src[i:], nil
			}
			return "", "", ErrInvalidPattern
		case c == percent:
			p.multiplyBy100 = true
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	if quoted {
		return "", "", ErrInvalidPattern
	}
	if isPrefix {
		// A pattern without digits.
		return "", "", ErrInvalidPattern
	}
	return b.String(), "", nil
}

func (p *pattern) parseNumber(num string) error {
	intPart, fracPart, hasDecimal := strings.Cut(num, string(decimalSep))
	if strings.ContainsRune(fracPart, decimalSep) || strings.ContainsRune(fracPart, groupingSep) {
		return ErrInvalidPattern
	}
	if !strings.ContainsAny(num, "#0") {
		return ErrInvalidPattern
	}

	seenZero := false
	for i := 0; i < len(intPart); i++ {
		switch intPart[i] {
		case digit:
			if seenZero {
				return ErrInvalidPattern
			}
		case zeroDigit:
			seenZero = true
			p.minInt++
		}
	}

	if idx := strings.LastIndexByte(intPart, groupingSep); idx >= 0 {
		p.grouping = len(intPart) - idx - 1
		if p.grouping == 0 {
			return ErrInvalidPattern
		}
	}

	seenOptional := false
	for i := 0; i < len(fracPart); i++ {
		switch fracPart[i] {
		case zeroDigit:
			if seenOptional {
				return ErrInvalidPattern
			}
			p.minFrac++
		case digit:
			seenOptional = true
		}
		p.maxFrac++
	}

	p.showDecimal = hasDecimal && fracPart == ""
	return nil
}

func isNumberChar(c byte) bool {
	return c == digit || c == zeroDigit || c == groupingSep || c == decimalSep
}
