// Package longcase provides the casing and diacritic helpers shared by the
// long-s converters.
//
// The converters work on three position-aligned strings: the original word,
// a lowercased accent-reduced blueprint, and a mutable working string. Every
// function in this package is rune-count preserving so that this alignment
// holds at all times:
//
//   - ToLower lowercases rune by rune.
//   - StripConsonantAccents removes diacritics from consonants only,
//     keeping vowel accents (ä stays ä, č becomes c).
//   - Fold removes all diacritics (used by the romance converters).
//   - TransferAllographs projects a resolved lowercase spelling back onto
//     the original word's casing and accents.
//
// All functions are safe for concurrent use by multiple goroutines.
package longcase

import (
	"strings"
	"unicode"
)

// LongS is the long-s allograph (U+017F), the sole substitution target of
// this module.
const LongS = 'ſ'

// ToLower returns s lowercased rune by rune.
// Unlike strings.ToLower it is guaranteed to preserve the rune count,
// which the converters rely on for positional lookups.
func ToLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// TransferAllographs applies the casing and diacritics of original onto the
// resolved spelling, position for position:
//
//   - where resolved holds a long s and the original letter is lowercase,
//     the long s is kept (the allograph choice is preserved exactly);
//   - where the original letter is uppercase it is kept as-is — the long s
//     has no uppercase form;
//   - every other position takes the original rune, restoring its case
//     and any diacritic the blueprint had stripped.
//
// If the two strings differ in rune count, original is returned unchanged.
func TransferAllographs(resolved, original string) string {
	res := []rune(resolved)
	orig := []rune(original)
	if len(res) != len(orig) {
		return original
	}

	var b strings.Builder
	b.Grow(len(original) + len(resolved))
	for i, r := range res {
		switch {
		case r == LongS && !unicode.IsUpper(orig[i]):
			b.WriteRune(LongS)
		default:
			b.WriteRune(orig[i])
		}
	}
	return b.String()
}
