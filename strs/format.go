package strs

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format substitutes MessageFormat-style placeholders in pattern.
//
// {n} is replaced by args[n]; any ",type,style" suffix inside the braces is
// ignored. A doubled single quote yields one quote, and text between single
// quotes is copied literally, braces included. Placeholders without a
// matching argument are written back as {n}, and unterminated braces are
// copied as-is. Quotes are processed even when no arguments are given.
func Format(pattern string, args ...any) string {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	b.Grow(len(pattern))

	quoted := false
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			quoted = !quoted
			i++
		case quoted || c != '{':
			b.WriteByte(c)
			i++
		default:
			end := strings.IndexByte(pattern[i:], '}')
			if end < 0 {
				b.WriteString(pattern[i:])
				return b.String()
			}
			b.WriteString(placeholder(p, pattern[i+1:i+end], args))
			i += end + 1
		}
	}
	return b.String()
}

func placeholder(p *message.Printer, body string, args []any) string {
	index, _, _ := strings.Cut(body, ",")
	index = strings.TrimSpace(index)

	n, err := strconv.Atoi(index)
	if err != nil || n < 0 {
		return "{" + body + "}"
	}
	if n >= len(args) {
		return "{" + index + "}"
	}
	return formatArg(p, args[n])
}

func formatArg(p *message.Printer, v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return p.Sprintf("%d", v)
	case float32, float64:
		return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
	default:
		return fmt.Sprint(v)
	}
}
