// Package german converts modern-spelling German words to the historical
// orthography that distinguishes the long s (ſ) from the short s.
//
// Unlike the romance languages, German gives the two allographs no simple
// positional rule: the right form depends on morpheme boundaries the
// modern spelling no longer shows. The converter therefore marks every
// undecided s as unresolved and narrows the set through six ordered rule
// stages — local lookahead, suffix lookup, general patterns, prefix
// lookup, cleanup patterns, and forced corrections — until every position
// is resolved or the configured default applies.
//
// Convert handles one word per call: conversion is pure and allocation-
// bounded, and batches parallelize trivially at the call level. All
// functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Output quality is bounded by the rule tables; compound seams not
//     covered by a table entry fall back to the configured default.
//   - Input is expected to be a single word. Spaces and punctuation are
//     treated as ordinary non-s letters.
//   - Uppercase S has no long form and is always kept as written.
//   - The Greek letter φ is reserved as the internal unresolved marker;
//     words containing it, and invalid UTF-8, are returned unchanged.
package german

import (
	"strings"
	"unicode/utf8"

	"github.com/travisgk/long-s/longcase"
	"github.com/travisgk/long-s/patterns"
)

// TraceFunc receives the working string after each resolution stage.
// The marker rune φ shows positions still unresolved. Tracing has no
// effect on the returned value.
type TraceFunc func(stage string, working string)

// Config adjusts a Converter. The zero value is the standard post-1901
// behavior.
type Config struct {
	// DefaultShortS resolves positions no stage could decide to the
	// short s instead of the long s.
	DefaultShortS bool

	// ShortSBeforeZ forces a short s before z, per the orthography in
	// use before the 1901 reform.
	ShortSBeforeZ bool

	// Trace, when non-nil, is called with the working string after each
	// stage.
	Trace TraceFunc
}

// Converter applies the staged resolution algorithm over a pattern store.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	store *patterns.Store
	cfg   Config
}

// New returns a Converter over the given store. A nil store selects the
// shipped default tables.
func New(store *patterns.Store, cfg Config) *Converter {
	if store == nil {
		store = patterns.Default()
	}
	return &Converter{store: store, cfg: cfg}
}

// Convert converts a single word using the default store and configuration.
func Convert(word string) string {
	return New(nil, Config{}).Convert(word)
}

// Convert returns word with every s resolved to its historical allograph.
// The result always has exactly as many runes as the input; only s
// positions are ever substituted. Empty input returns empty output.
func (c *Converter) Convert(word string) string {
	if word == "" {
		return ""
	}
	if !utf8.ValidString(word) {
		return word
	}

	lowered := longcase.StripConsonantAccents(longcase.ToLower(word))
	if strings.ContainsRune(lowered, marker) {
		return word
	}
	blueprint := []rune(lowered)

	// Stage 0: exact-word override.
	for _, term := range c.store.ExactMatches(blueprint[0]) {
		if patterns.StripAllographs(term) == lowered {
			return longcase.TransferAllographs(term, word)
		}
	}

	w := encodePlaceholders(blueprint)
	fillDigraphs(w)
	c.trace("placeholder", w)
	if !hasMarker(w) {
		return longcase.TransferAllographs(string(w), word)
	}

	c.phonotacticStage(w)
	c.suffixStage(w, blueprint)
	c.patternStage("omnipresent", w, c.store.Omnipresent())
	c.prefixStage(w, blueprint)
	c.patternStage("postprocess", w, c.store.Postprocess())
	c.forcedStage(w, blueprint)

	// Default resolution for anything the stages left undecided.
	for i, r := range w {
		if r == marker {
			if c.cfg.DefaultShortS {
				w[i] = shortS
			} else {
				w[i] = longS
			}
		}
	}
	c.trace("default", w)

	return longcase.TransferAllographs(string(w), word)
}

// phonotacticStage resolves every marker whose following letter is outside
// the keep-unresolved class to a short s. The class covers the letters
// after which the allograph stays genuinely ambiguous; z belongs to it
// only under the post-1901 rules.
func (c *Converter) phonotacticStage(w []rune) {
	for i := 0; i < len(w)-1; i++ {
		if w[i] == marker && !c.keepsUnresolved(w[i+1]) {
			w[i] = shortS
		}
	}
	fillDigraphs(w)
	c.trace("phonotactic", w)
}

// keepsUnresolved reports whether a marker followed by r must be left for
// the later stages.
func (c *Converter) keepsUnresolved(r rune) bool {
	switch r {
	case 'a', 'ä', 'c', 'e', 'i', 'o', 'ö', 'p', longS, marker, 't', 'u', 'ü', 'y':
		return true
	case 'z':
		return !c.cfg.ShortSBeforeZ
	}
	return false
}

// suffixStage looks up end patterns by the word's last three, two, then
// one letters and applies the first template that produces a replacement,
// matched at exact offsets within the word-final snippet.
func (c *Converter) suffixStage(w, blueprint []rune) {
	n := len(blueprint)
	var ends []string
	if n >= 3 {
		ends = c.store.EndPatterns(string(blueprint[n-3:]))
	}
	if ends == nil && n >= 2 {
		ends = c.store.EndPatterns(string(blueprint[n-2:]))
	}
	if ends == nil && n >= 1 {
		ends = c.store.EndPatterns(string(blueprint[n-1:]))
	}

	for _, term := range ends {
		t := []rune(term)
		if len(t) > len(w) {
			continue
		}
		snippet := w[len(w)-len(t):]
		bpSnippet := blueprint[len(blueprint)-len(t):]
		if blueprintReplace(snippet, bpSnippet, t) {
			fillDigraphs(w)
			break
		}
	}
	c.trace("suffix", w)
}

// patternStage runs crossword matching over the whole word for each
// template in order, stopping once no markers remain. Both the general
// and the cleanup lists use this mechanism.
func (c *Converter) patternStage(stage string, w []rune, list []string) {
	for _, term := range list {
		if !hasMarker(w) {
			break
		}
		if crosswordReplace(w, []rune(term)) {
			fillDigraphs(w)
		}
	}
	c.trace(stage, w)
}

// prefixStage mirrors suffixStage at the start of the word, using
// crossword matching on the leading snippet. Skipped when nothing is
// left to resolve.
func (c *Converter) prefixStage(w, blueprint []rune) {
	if hasMarker(w) {
		for _, term := range c.store.StartPatterns(blueprint[0]) {
			t := []rune(term)
			if len(t) > len(w) {
				continue
			}
			if crosswordReplace(w[:len(t)], t) {
				fillDigraphs(w)
				break
			}
		}
	}
	c.trace("prefix", w)
}

// forcedStage applies every forced-overwrite template at every blueprint
// offset it matches. No early exit: entries target disjoint spellings and
// each gets its chance, even when the word is already fully resolved.
func (c *Converter) forcedStage(w, blueprint []rune) {
	for _, term := range c.store.ForcedOverwrites() {
		t := []rune(term)
		if len(t) > len(w) {
			continue
		}
		if blueprintReplace(w, blueprint, t) {
			fillDigraphs(w)
		}
	}
	c.trace("forced", w)
}

func (c *Converter) trace(stage string, w []rune) {
	if c.cfg.Trace != nil {
		c.cfg.Trace(stage, string(w))
	}
}
