package registry

import (
	"strings"
	"unicode"
)

// NormalizeKey converts a key to snake_case so that spellings like
// "DistilBERT", "distil-bert" and "distil_bert" collide predictably. The
// same rule runs at registration and lookup time.
func NormalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)

	runes := []rune(key)
	lastUnderscore := true // suppress a leading separator
	for i, r := range runes {
		switch {
		case r == '-' || r == ' ' || r == '.' || r == '_':
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		case unicode.IsUpper(r):
			// Break before an upper rune that starts a new word: either the
			// previous rune is lower/digit, or this rune ends an acronym
			// run followed by a lower rune.
			if i > 0 && !lastUnderscore {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		default:
			b.WriteRune(r)
			lastUnderscore = false
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
