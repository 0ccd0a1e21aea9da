package emitter

import "strings"

// SpecialChars are the characters escaped with a backslash in literal text.
const SpecialChars = `^$.[]-?+*(){}|\`

// Escape prefixes every special character of s with a backslash.
// It is applied once, to the raw literal value, at emission time. Bytes
// outside SpecialChars, including invalid UTF-8, are copied unchanged.
func Escape(s string) string {
	if !strings.ContainsAny(s, SpecialChars) {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(SpecialChars, c) >= 0 {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
