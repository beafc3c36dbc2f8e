// Package romance converts French, Italian, and Spanish text to the
// historical orthography that distinguishes the long s (ſ) from the
// short s.
//
// These languages need no staged resolution: a lowercase s takes the long
// form exactly when the next character belongs to a fixed class, so each
// converter is a single pass. The class is matched against an accent-
// folded copy of the text while the original is edited in place, which
// keeps accents and casing untouched.
//
// All functions are safe for concurrent use by multiple goroutines.
package romance

import "github.com/travisgk/long-s/longcase"

// accentedVowels are the vowels that block a long s in Italian and
// Spanish: an s directly before one of these keeps its short form.
const accentedVowels = "áàéèíìóòúüÁÀÉÈÍÌÓÒÚÙÜ"

// noAccentedO drops ó and ò from the blocking set; used by the Spanish
// converter when configured to allow a long s before an accented o.
const noAccentedO = "áàéèíìúùüÁÀÉÈÍÌÚÙÜ"

// ItalianConfig adjusts the Italian converter.
type ItalianConfig struct {
	// SplitSSI renders the ssi sequence as ſsi instead of the default ſſi.
	SplitSSI bool
}

// SpanishConfig adjusts the Spanish converter.
type SpanishConfig struct {
	// LongSBeforeAccentedO allows a long s directly before ó and ò.
	LongSBeforeAccentedO bool
}

// French converts French text. An s becomes long before any letter
// except b, f, and h.
func French(text string) string {
	return convert(text, func(next, folded rune) bool {
		return isClassLetter(folded, 'b', 'f', 'h')
	})
}

// Italian converts Italian text with the default configuration.
func Italian(text string) string {
	return ItalianWith(text, ItalianConfig{})
}

// ItalianWith converts Italian text. An s becomes long before any letter
// except b and f, and before a hyphen or dash, but never before an
// accented vowel.
func ItalianWith(text string, cfg ItalianConfig) string {
	out := convert(text, func(next, folded rune) bool {
		if containsRune(accentedVowels, next) {
			return false
		}
		return isClassLetter(folded, 'b', 'f') || folded == '-' || folded == '—'
	})
	if cfg.SplitSSI {
		out = splitSSI(out)
	}
	return out
}

// Spanish converts Spanish text with the default configuration.
func Spanish(text string) string {
	return SpanishWith(text, SpanishConfig{})
}

// SpanishWith converts Spanish text. An s becomes long before any letter
// except b, f, and h, and before a hyphen or dash, but never before a
// blocked accented vowel. The ssi sequence always renders as ſsi.
func SpanishWith(text string, cfg SpanishConfig) string {
	blocked := accentedVowels
	if cfg.LongSBeforeAccentedO {
		blocked = noAccentedO
	}
	out := convert(text, func(next, folded rune) bool {
		if containsRune(blocked, next) {
			return false
		}
		return isClassLetter(folded, 'b', 'f', 'h') || folded == '-' || folded == '—'
	})
	return splitSSI(out)
}

// convert runs the single-pass substitution: every lowercase s whose
// successor passes takesLong becomes a long s. The predicate sees both
// the original next rune (for accent checks) and its folded form (for
// the letter class).
func convert(text string, takesLong func(next, folded rune) bool) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	folded := []rune(longcase.Fold(text))

	for i := 0; i < len(runes)-1; i++ {
		if folded[i] == 's' && takesLong(runes[i+1], folded[i+1]) {
			runes[i] = longcase.LongS
		}
	}
	return string(runes)
}

// isClassLetter reports whether r is an unaccented Latin letter outside
// the excluded set. Case does not matter for the class, only for the s
// being replaced.
func isClassLetter(r rune, excluded ...rune) bool {
	lower := r
	if r >= 'A' && r <= 'Z' {
		lower = r + ('a' - 'A')
	}
	if lower < 'a' || lower > 'z' {
		return false
	}
	for _, x := range excluded {
		if lower == x {
			return false
		}
	}
	return true
}

func containsRune(set string, r rune) bool {
	for _, x := range set {
		if x == r {
			return true
		}
	}
	return false
}

// splitSSI rewrites every ſſi as ſsi.
func splitSSI(text string) string {
	runes := []rune(text)
	for i := 0; i+2 < len(runes); i++ {
		if runes[i] == longcase.LongS && runes[i+1] == longcase.LongS && runes[i+2] == 'i' {
			runes[i+1] = 's'
		}
	}
	return string(runes)
}
