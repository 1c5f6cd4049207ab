// Package sanitize provides the canonical text-cleaning pass applied to
// every user-submitted form field before validation.
package sanitize

import "strings"

// Text normalises a raw form value: line endings collapse to "\n", tabs
// become single spaces, control characters below code point 32 are dropped
// (newlines survive only when allowNewlines is set), and the result is
// trimmed of leading/trailing whitespace.
// PRE: none
// POST: returned string contains no control characters other than '\n'
func Text(value string, allowNewlines bool) string {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	value = strings.ReplaceAll(value, "\r", "\n")

	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r == '\n':
			if allowNewlines {
				b.WriteRune(r)
			}
		case r == '\t':
			b.WriteRune(' ')
		case r >= 32:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
