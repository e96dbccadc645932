package view

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// HumanizeModelName turns a hyphenated model name into a display title:
// each non-empty segment gets its first rune upper-cased with the rest of
// the segment untouched, and segments are rejoined with single spaces.
// Consecutive hyphens contribute nothing ("a--b" → "A B").
func HumanizeModelName(name string) string {
	segments := strings.Split(name, "-")
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		parts = append(parts, string(unicode.ToUpper(r))+seg[size:])
	}
	return strings.Join(parts, " ")
}
