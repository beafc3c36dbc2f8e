package german

// Character roles in the working string. Every other rune is a literal
// letter carried over from the blueprint.
const (
	marker = 'φ' // an s whose allograph is not yet decided
	longS  = 'ſ'
	shortS = 's'
)

// encodePlaceholders copies the blueprint into a fresh working string with
// every s except the final rune replaced by the marker, then applies the
// two unconditional rules: a word-initial s is always long, and the
// second-to-last s is long unless the word ends in k.
func encodePlaceholders(blueprint []rune) []rune {
	w := make([]rune, len(blueprint))
	copy(w, blueprint)

	for i := 0; i < len(w)-1; i++ {
		if w[i] == shortS {
			w[i] = marker
		}
	}

	if len(w) > 0 && w[0] == marker {
		w[0] = longS
	}
	if n := len(w); n >= 2 && w[n-2] == marker {
		if w[n-1] == 'k' {
			w[n-2] = shortS
		} else {
			w[n-2] = longS
		}
	}

	return w
}

// fillDigraphs resolves every marker that sits next to an already-resolved
// short s: the pair renders as the ſs digraph when the marker comes first,
// and as sſ when the short s does — a resolved position is never changed.
func fillDigraphs(w []rune) {
	for i := 0; i < len(w)-1; i++ {
		if w[i] == marker && w[i+1] == shortS {
			w[i] = longS
		} else if w[i] == shortS && w[i+1] == marker {
			w[i+1] = longS
		}
	}
}

// hasMarker reports whether any position is still unresolved.
func hasMarker(w []rune) bool {
	for _, r := range w {
		if r == marker {
			return true
		}
	}
	return false
}
