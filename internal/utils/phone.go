package utils

import (
	"strings"
)

// NormalizePhone canonicalizes raw phone input into a digits-only string.
// Separators, a leading "+", and any other non-digit characters are dropped.
// Empty or garbage input normalizes to an empty or short digit string;
// callers must treat an empty result as invalid.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// E164Phone returns the normalized phone with a leading "+", the form the
// commerce platform expects on customer records.
func E164Phone(normalized string) string {
	if normalized == "" {
		return ""
	}
	return "+" + normalized
}
