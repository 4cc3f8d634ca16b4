package domain

// ChainRule constrains how a new answer must relate to the previous accepted
// one. Implementations compare normalized match strings; prev is empty for
// the first answer of a session. The exact comparison is deliberately
// pluggable: house rules vary on what counts as the "last sound".
type ChainRule interface {
	Allows(prev, candidate string) bool
}

// KanaChainRule is the shiritori-style rule: the candidate must begin with
// the final sound of the previous answer. Small kana widen to their base form
// and a trailing long vowel mark is skipped, so しんじゅく chains on く and
// ぎゅうにゅう chains on う.
type KanaChainRule struct{}

func (KanaChainRule) Allows(prev, candidate string) bool {
	if prev == "" {
		return true
	}
	last, ok := lastSound(prev)
	if !ok {
		return true
	}
	for _, r := range candidate {
		return widenKana(r) == last
	}
	return false
}

// lastSound returns the chaining sound of s: the last rune, skipping a long
// vowel mark and widening small kana.
func lastSound(s string) (rune, bool) {
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == 'ー' {
			continue
		}
		return widenKana(runes[i]), true
	}
	return 0, false
}

// smallToBase maps small kana to their base form.
var smallToBase = map[rune]rune{
	'ぁ': 'あ', 'ぃ': 'い', 'ぅ': 'う', 'ぇ': 'え', 'ぉ': 'お',
	'ゃ': 'や', 'ゅ': 'ゆ', 'ょ': 'よ', 'っ': 'つ', 'ゎ': 'わ',
}

func widenKana(r rune) rune {
	if base, ok := smallToBase[r]; ok {
		return base
	}
	return r
}
