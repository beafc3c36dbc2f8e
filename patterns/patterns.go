// Package patterns holds the rule tables that drive the German long-s
// converter.
//
// A Store groups six kinds of spelling templates. A template is a short
// lowercase reference spelling in which every s is already resolved to
// either the short form "s" or the long form "ſ":
//
//   - exact overrides: full-word spellings, keyed by first letter;
//   - end patterns: word-final templates, keyed by the word's last one to
//     three letters;
//   - start patterns: word-initial templates, keyed by the first letter;
//   - omnipresent patterns: templates matched anywhere in the word;
//   - postprocess patterns: a smaller cleanup list, also matched anywhere;
//   - forced overwrites: absolute corrections applied at every occurrence,
//     free to overwrite earlier resolutions.
//
// Ordering inside every list is significant: the converter tries entries
// first to last, and for the keyed lists the first entry that produces a
// replacement wins.
//
// A Store is immutable after construction and safe for concurrent use by
// multiple goroutines. Default returns the process-wide store built from
// the shipped tables; NewStore builds a store from caller-supplied tables.
package patterns

import (
	"strings"
	"sync"
)

// Tables is the raw input to NewStore. All spellings must be lowercase
// with every s resolved; ExactMatches entries are keyed internally by
// their first letter with long s read as plain s.
type Tables struct {
	ExactMatches  []string
	EndPatterns   map[string][]string
	StartPatterns map[rune][]string
	Omnipresent   []string
	Postprocess   []string
	Forced        []string
}

// Store is an immutable collection of rule tables.
type Store struct {
	exact       map[rune][]string
	ends        map[string][]string
	starts      map[rune][]string
	omnipresent []string
	postprocess []string
	forced      []string
}

// StripAllographs returns s with every long s replaced by a plain s.
// Keys and blueprint comparisons use this allograph-free form.
func StripAllographs(s string) string {
	return strings.ReplaceAll(s, "ſ", "s")
}

// NewStore builds an immutable Store from t. The input tables are copied;
// later mutation of t does not affect the returned Store.
func NewStore(t Tables) *Store {
	s := &Store{
		exact:       make(map[rune][]string),
		ends:        make(map[string][]string, len(t.EndPatterns)),
		starts:      make(map[rune][]string, len(t.StartPatterns)),
		omnipresent: copyList(t.Omnipresent),
		postprocess: copyList(t.Postprocess),
		forced:      copyList(t.Forced),
	}

	for _, term := range t.ExactMatches {
		stripped := StripAllographs(term)
		if stripped == "" {
			continue
		}
		first := []rune(stripped)[0]
		s.exact[first] = append(s.exact[first], term)
	}
	for key, list := range t.EndPatterns {
		s.ends[key] = copyList(list)
	}
	for key, list := range t.StartPatterns {
		s.starts[key] = copyList(list)
	}
	return s
}

func copyList(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// ExactMatches returns the full-word overrides whose allograph-free form
// starts with initial, or nil. Callers must not modify the returned slice.
func (s *Store) ExactMatches(initial rune) []string {
	return s.exact[initial]
}

// EndPatterns returns the word-final templates for the given ending key
// (the word's last one to three letters), or nil.
// Callers must not modify the returned slice.
func (s *Store) EndPatterns(key string) []string {
	return s.ends[key]
}

// StartPatterns returns the word-initial templates for words starting with
// initial, or nil. Callers must not modify the returned slice.
func (s *Store) StartPatterns(initial rune) []string {
	return s.starts[initial]
}

// Omnipresent returns the ordered general pattern list.
// Callers must not modify the returned slice.
func (s *Store) Omnipresent() []string {
	return s.omnipresent
}

// Postprocess returns the ordered cleanup pattern list.
// Callers must not modify the returned slice.
func (s *Store) Postprocess() []string {
	return s.postprocess
}

// ForcedOverwrites returns the ordered list of absolute corrections.
// Every entry is applied at every occurrence, in order, with no early
// exit: a later entry may overwrite what an earlier one resolved. The
// shipped entries are engineered not to overlap.
// Callers must not modify the returned slice.
func (s *Store) ForcedOverwrites() []string {
	return s.forced
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide Store built from the shipped German
// tables. The store is built once and shared; it is safe to use from any
// number of goroutines.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = NewStore(Tables{
			ExactMatches:  parseExactMatches(exactRaw),
			EndPatterns:   endPatterns,
			StartPatterns: startPatterns,
			Omnipresent:   omnipresentPatterns,
			Postprocess:   postprocessPatterns,
			Forced:        forcedOverwrites,
		})
	})
	return defaultStore
}
