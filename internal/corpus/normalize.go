package corpus

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical match form of s: NFKC folding (collapses
// full/half width variants and compatibility forms), katakana folded to
// hiragana, lowercased, surrounding whitespace trimmed. Pure and total: the
// same input always yields the same output, any string is accepted.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.Map(kataToHira, s)
	return strings.ToLower(strings.TrimSpace(s))
}

// kataToHira shifts katakana into the hiragana block. The long vowel mark and
// anything outside the katakana range pass through unchanged.
func kataToHira(r rune) rune {
	if r >= 'ァ' && r <= 'ヶ' {
		return r - 0x60
	}
	return r
}
