package german

// maxVariantSlots caps the number of s positions in a template for
// crossword matching. Variant generation is 2^N in the number of s
// positions; the shipped tables max out at three. Templates over the cap
// are skipped.
const maxVariantSlots = 8

// crosswordReplace fills unresolved spans of w that a fully-resolved
// template can complete, the way letters fit into a crossword. Every
// variant of the template with some subset of its s positions blanked to
// the marker is searched for; each occurrence is overwritten with the
// resolved template. Reports whether any replacement was made.
func crosswordReplace(w, template []rune) bool {
	if len(template) > len(w) {
		return false
	}

	var slots []int
	for i, r := range template {
		if r == shortS || r == longS {
			slots = append(slots, i)
		}
	}
	if len(slots) == 0 || len(slots) > maxVariantSlots {
		return false
	}

	replaced := false
	variant := make([]rune, len(template))
	for mask := 1; mask < 1<<len(slots); mask++ {
		copy(variant, template)
		for bit, pos := range slots {
			if mask&(1<<bit) != 0 {
				variant[pos] = marker
			}
		}

		for from := 0; ; {
			i := indexRunes(w, variant, from)
			if i < 0 {
				break
			}
			copy(w[i:i+len(template)], template)
			replaced = true
			from = i + len(template)
		}
	}
	return replaced
}

// blueprintReplace forces a template into w at every offset where the
// blueprint contains the template's allograph-free form. Unlike crossword
// matching this overwrites resolved positions too; it drives the suffix
// and forced-overwrite stages. Reports whether any replacement was made.
func blueprintReplace(w, blueprint, template []rune) bool {
	stripped := make([]rune, len(template))
	for i, r := range template {
		if r == longS {
			stripped[i] = shortS
		} else {
			stripped[i] = r
		}
	}

	replaced := false
	for from := 0; ; {
		i := indexRunes(blueprint, stripped, from)
		if i < 0 {
			break
		}
		copy(w[i:i+len(template)], template)
		replaced = true
		from = i + len(stripped)
	}
	return replaced
}

// indexRunes returns the first index at or after from where needle occurs
// in haystack, or -1.
func indexRunes(haystack, needle []rune, from int) int {
	if len(needle) == 0 {
		return -1
	}
outer:
	for i := from; i+len(needle) <= len(haystack); i++ {
		for j, r := range needle {
			if haystack[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}
