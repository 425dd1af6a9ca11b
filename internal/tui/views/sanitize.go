package views

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sanitizeForTerminal drops codepoints that break cell widths in tcell:
// control characters, skin tone modifiers, zero width joiners and
// variation selectors. A label like "👍🏻" becomes "👍".
func sanitizeForTerminal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isProblematicRune(r) {
			b.WriteRune(r)
		}
		i += size
	}
	return b.String()
}

func isProblematicRune(r rune) bool {
	switch {
	case unicode.IsControl(r):
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF:
		return true
	case r == 0x200D:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r >= 0xE0100 && r <= 0xE01EF:
		return true
	default:
		return false
	}
}
