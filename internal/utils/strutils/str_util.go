package strutils

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded, trimmed form of s, for comparing user input
// against section and field keys.
func Fold(s string) string {
	// A Caser holds state, so each call gets its own.
	folder := cases.Fold()
	return folder.String(strings.TrimSpace(s))
}

// FoldSet builds a lookup set of folded values. Empty entries are skipped.
func FoldSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if f := Fold(v); f != "" {
			set[f] = true
		}
	}
	return set
}
