package domain

import (
	"strings"
	"unicode"
)

// CleanName prepares a topic or subject name for storage: leading and
// trailing whitespace is trimmed and inner runs of whitespace collapse to a
// single space. Case is preserved.
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
