package shell

import (
	"fmt"
	"strings"
)

// QuoteStyle selects the quoting context the escaped string will be
// embedded into.
type QuoteStyle int

const (
	// DoubleQuote escapes for embedding between double quotes
	DoubleQuote QuoteStyle = iota
	// SingleQuote escapes for embedding between single quotes
	SingleQuote
)

// Escape makes s safe for embedding in generated shell text under the
// given quoting style. Every user-controlled string must pass through
// here before it appears in a recipe or install hook.
func Escape(s string, style QuoteStyle) (string, error) {
	switch style {
	case DoubleQuote:
		return escapeDouble(s), nil
	case SingleQuote:
		return escapeSingle(s), nil
	default:
		return "", fmt.Errorf("unknown quote style: %d", style)
	}
}

func escapeDouble(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '"', '$', '`':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '!':
			// History expansion fires even inside double quotes on
			// interactive shells, so the bang is rehomed into a
			// single-quoted section.
			b.WriteString(`"'!'"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeSingle(s string) string {
	return strings.ReplaceAll(s, "'", `'"'"'`)
}
