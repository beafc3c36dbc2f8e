package longcase

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// baseRune returns the first rune of r's canonical decomposition — the
// letter with its combining marks removed. Runes that do not decompose
// (plain ASCII, ß, ſ) are returned unchanged.
func baseRune(r rune) rune {
	if r < 0x80 {
		return r
	}
	d := norm.NFD.String(string(r))
	for _, first := range d {
		return first
	}
	return r
}

// isVowelLetter reports whether r (accent-free) is a vowel letter.
// y counts as a vowel: ÿ and ý appear in French and loanwords and their
// accents carry meaning the same way vowel accents do.
func isVowelLetter(r rune) bool {
	switch lowerASCII(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// lowerASCII lowers the basic Latin letters without a table hit.
func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// StripConsonantAccents removes diacritics from consonants while keeping
// vowel accents and letter case: "čas" becomes "cas", "äste" stays "äste".
// The result has exactly as many runes as the input, in the same positions.
func StripConsonantAccents(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		base := baseRune(r)
		if base == r || isVowelLetter(base) {
			b.WriteRune(r)
		} else {
			b.WriteRune(base)
		}
	}
	return b.String()
}

// Fold removes diacritics from every letter, vowels included, keeping case:
// "áères" becomes "aeres". Rune count and positions are preserved.
// The romance converters match their letter classes against the folded form
// while editing the original.
func Fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(baseRune(r))
	}
	return b.String()
}
