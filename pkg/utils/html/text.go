// ABOUTME: Text utilities for strings pulled out of HTML documents
// ABOUTME: Collapses whitespace runs and removes stress marks used on church texts

package html

import (
	"strings"
	"unicode"
)

// CombiningAcute is the stress mark the site places over vowels
const CombiningAcute = '\u0301'

// CollapseWhitespace replaces every run of whitespace with a single space.
// Leading and trailing runs are collapsed too, not removed.
func CollapseWhitespace(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}

	return b.String()
}

// StripAccents removes combining acute accents
func StripAccents(text string) string {
	if !strings.ContainsRune(text, CombiningAcute) {
		return text
	}
	return strings.ReplaceAll(text, string(CombiningAcute), "")
}

// CleanText collapses whitespace and trims the result
func CleanText(text string) string {
	return strings.TrimSpace(CollapseWhitespace(text))
}
