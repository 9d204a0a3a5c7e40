package sanitize

import "strings"

// Identifier replaces every byte outside [A-Za-z0-9_] with an underscore. The
// result always has the same length as s, so a multi-byte rune becomes one
// underscore per byte.
func Identifier(s string) string {
	if IsIdentifier(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isIdentByte(c) {
			b.WriteByte(c)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// IsIdentifier reports whether s is already in sanitized form.
func IsIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isIdentByte(s[i]) {
			return false
		}
	}
	return true
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
