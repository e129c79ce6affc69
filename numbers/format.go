// Package numbers formats decimal values with DecimalFormat-style patterns
// such as "#,###" or "#,##0.00".
package numbers

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPattern groups the integer part in thousands and drops the fraction.
const DefaultPattern = "#,###"

var hundred = decimal.NewFromInt(100)

// Symbols are the separators written into formatted output.
type Symbols struct {
	Decimal  rune
	Grouping rune
}

// DefaultSymbols uses a comma for decimals and a dot for grouping.
var DefaultSymbols = Symbols{Decimal: ',', Grouping: '.'}

// Option configures a Formatter.
type Option func(*Formatter)

// WithSymbols overrides the separators used in the output.
func WithSymbols(s Symbols) Option {
	return func(f *Formatter) {
		f.symbols = s
	}
}

// Formatter renders decimals according to a compiled pattern.
// It is immutable and safe for concurrent use.
type Formatter struct {
	pattern pattern
	symbols Symbols
}

// NewFormatter compiles pattern. An empty pattern selects DefaultPattern.
func NewFormatter(p string, opts ...Option) (*Formatter, error) {
	if p == "" {
		p = DefaultPattern
	}
	parsed, err := parsePattern(p)
	if err != nil {
		return nil, err
	}

	f := &Formatter{
		pattern: parsed,
		symbols: DefaultSymbols,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Format renders d. Rounding is half-even.
func (f *Formatter) Format(d decimal.Decimal) string {
	p := f.pattern
	if p.multiplyBy100 {
		d = d.Mul(hundred)
	}

	//nolint:gosec // fraction digit count comes from a short pattern
	places := int32(p.maxFrac)
	rounded := d.RoundBank(places)
	negative := rounded.Sign() < 0

	intPart, fracPart, _ := strings.Cut(rounded.Abs().StringFixed(places), ".")

	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) < p.minFrac {
		fracPart += strings.Repeat("0", p.minFrac-len(fracPart))
	}

	if intPart == "0" && p.minInt == 0 {
		intPart = ""
	}
	if len(intPart) < p.minInt {
		intPart = strings.Repeat("0", p.minInt-len(intPart)) + intPart
	}
	if intPart == "" && fracPart == "" {
		intPart = "0"
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(p.prefix)
	f.writeGrouped(&b, intPart)
	if fracPart != "" || p.showDecimal {
		b.WriteRune(f.symbols.Decimal)
		b.WriteString(fracPart)
	}
	b.WriteString(p.suffix)
	return b.String()
}

func (f *Formatter) writeGrouped(b *strings.Builder, digits string) {
	size := f.pattern.grouping
	if size <= 0 {
		b.WriteString(digits)
		return
	}
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%size == 0 {
			b.WriteRune(f.symbols.Grouping)
		}
		b.WriteByte(digits[i])
	}
}

var defaultFormatter = func() *Formatter {
	f, err := NewFormatter(DefaultPattern)
	if err != nil {
		panic(err)
	}
	return f
}()

// Format renders d with the given pattern and the default symbols.
func Format(d decimal.Decimal, pattern string) (string, error) {
	f, err := NewFormatter(pattern)
	if err != nil {
		return "", err
	}
	return f.Format(d), nil
}

// FormatDefault renders d with DefaultPattern.
func FormatDefault(d decimal.Decimal) string {
	return defaultFormatter.Format(d)
}
