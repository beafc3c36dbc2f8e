package german

import (
	"sync"
	"testing"

	"github.com/travisgk/long-s/patterns"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// -- Unconditional positional rules --

		{"word initial s", "so", "ſo"},
		{"final s untouched", "bus", "bus"},
		{"penultimate before vowel", "gase", "gaſe"},
		{"penultimate before k", "bask", "bask"},
		{"single s word", "s", "s"},
		{"final s two letters", "es", "es"},

		// -- Digraph and general patterns --

		{"intervocalic double s", "wasser", "waſſer"},
		{"final double s", "pass", "paſs"},
		{"st ligature", "verstehen", "verſtehen"},
		{"sch trigraph initial", "schule", "ſchule"},
		{"sch trigraph medial", "falsch", "falſch"},

		// -- Suffix lookup --

		{"suffix sam", "langsam", "langſam"},
		{"suffix sel", "insel", "inſel"},
		{"suffix sen", "lesen", "leſen"},
		{"suffix ste", "beste", "beſte"},
		{"suffix sten", "meisten", "meiſten"},
		{"suffix sion", "version", "verſion"},
		{"suffix isch", "logisch", "logiſch"},

		// -- Prefix lookup --

		{"prefix ver", "versuch", "verſuch"},
		{"prefix be", "besitz", "beſitz"},
		{"prefix an", "ansicht", "anſicht"},

		// -- Postprocess patterns --

		{"loanword ysi", "physik", "phyſik"},
		{"loanword oso", "philosophie", "philoſophie"},

		// -- Forced overwrites --

		{"compound seam aus", "aussage", "ausſage"},
		{"diminutive haeuschen", "häuschen", "häuschen"},
		{"wax tube reading", "wachstube", "wachstube"},

		// -- Exact overrides --

		{"exact dasselbe", "dasselbe", "dasſelbe"},
		{"exact samstag", "samstag", "ſamstag"},
		{"exact transport", "transport", "transport"},
		{"exact bistum", "bistum", "bistum"},

		// -- Default resolution --

		{"default long before z", "oszillieren", "oſzillieren"},

		// -- Case and accent transfer --

		{"title case", "Wasser", "Waſſer"},
		{"all caps keeps S", "WASSER", "WASSER"},
		{"initial capital S stays", "So", "So"},
		{"eszett untouched", "straße", "ſtraße"},

		// -- Words without s --

		{"no s", "baum", "baum"},
		{"no s with umlaut", "könig", "könig"},

		// -- Edge cases --

		{"empty", "", ""},
		{"single letter", "a", "a"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Convert(tt.input)
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   Config
		input string
		want  string
	}{
		{"default long s", Config{}, "oszillieren", "oſzillieren"},
		{"default short s", Config{DefaultShortS: true}, "oszillieren", "oszillieren"},
		{"pre-1901 short before z", Config{ShortSBeforeZ: true}, "oszillieren", "oszillieren"},
		{"flags leave decided words alone", Config{DefaultShortS: true}, "wasser", "waſſer"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := New(nil, tt.cfg).Convert(tt.input)
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvertTraceNeutral(t *testing.T) {
	t.Parallel()

	words := []string{"wasser", "verstehen", "aussage", "häuschen", "oszillieren", "so", "bask"}
	for _, word := range words {
		var stages []string
		traced := New(nil, Config{Trace: func(stage, working string) {
			stages = append(stages, stage+" "+working)
		}})

		if got, want := traced.Convert(word), Convert(word); got != want {
			t.Errorf("traced Convert(%q) = %q, untraced = %q", word, got, want)
		}
		if len(stages) == 0 {
			t.Errorf("Convert(%q) produced no trace records", word)
		}
	}
}

func TestConvertCustomStore(t *testing.T) {
	t.Parallel()

	store := patterns.NewStore(patterns.Tables{
		ExactMatches: []string{"teſtfall"},
	})
	c := New(store, Config{})

	if got, want := c.Convert("testfall"), "teſtfall"; got != want {
		t.Errorf("Convert(testfall) = %q, want %q", got, want)
	}

	// A store without pattern lists leaves both markers for the default rule.
	if got, want := c.Convert("wasser"), "waſſer"; got != want {
		t.Errorf("Convert(wasser) = %q, want %q", got, want)
	}
}

func TestConvertConcurrent(t *testing.T) {
	t.Parallel()

	c := New(nil, Config{})
	words := []string{"wasser", "schule", "aussage", "samstag", "physik", "oszillieren"}
	want := make([]string, len(words))
	for i, w := range words {
		want[i] = c.Convert(w)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, w := range words {
				if got := c.Convert(w); got != want[i] {
					t.Errorf("concurrent Convert(%q) = %q, want %q", w, got, want[i])
				}
			}
		}()
	}
	wg.Wait()
}
