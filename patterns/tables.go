package patterns

import (
	"bufio"
	"bytes"
	_ "embed"
)

// exactRaw lists full-word overrides, one resolved spelling per line.
// Lines starting with # are comments.
//
//go:embed exact.txt
var exactRaw []byte

// parseExactMatches splits the embedded override file into spellings.
func parseExactMatches(raw []byte) []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		out = append(out, string(line))
	}
	return out
}

// endPatterns maps a word's last one to three letters to word-final
// templates. The converter tries the three-letter key first, then two,
// then one; within a list the first template that fits wins.
var endPatterns = map[string][]string{
	// -sam, -sal, -sel: suffixes written with the long form.
	"sam": {"ſam"},
	"sal": {"ſal"},
	"sel": {"ſel"},

	// -ste(n): superlatives and ordinals (beſte, meiſten).
	"ste": {"ſte"},
	"ten": {"ſten"},

	// -sen: leſen, weſen, wachſen.
	"sen": {"ſen"},

	// -sion: Latinate endings (Verſion, Penſion).
	"ion": {"ſion"},

	// -isch: adjectival ending. Keyed by "sch" since only the last three
	// letters are visible; the four-letter template keeps "falsch" and
	// friends from matching here.
	"sch": {"iſch"},
}

// startPatterns maps a word's first letter to word-initial templates.
var startPatterns = map[rune][]string{
	'a': {"anſ"},  // an- + stem: anſicht, anſatz
	'b': {"beſ"},  // be- + stem: beſitz, beſuch
	'g': {"geſ"},  // ge- + stem: geſang, geſagt
	'v': {"verſ"}, // ver- + stem: verſuch, verſand
}

// omnipresentPatterns are matched anywhere in the word, in order.
var omnipresentPatterns = []string{
	"ſch", // the sch trigraph always takes the long form
	"ſſ",  // intervocalic double s: waſſer, beſſer
	"ſt",  // the st ligature
	"ſp",  // ſpiel, weſpe
}

// postprocessPatterns catch residual Greek/Latin loanword spellings the
// earlier stages leave unresolved.
var postprocessPatterns = []string{
	"yſi", // phyſik, analyſieren
	"oſo", // philoſophie
}

// forcedOverwrites are absolute corrections, applied at every occurrence
// and allowed to overwrite earlier resolutions. This is where compound
// seams beat the general patterns: aus- keeps its morpheme-final short s,
// and -chen diminutives keep the stem's final s short even though the
// general rules would read the following "ch" as a trigraph.
var forcedOverwrites = []string{
	"ausſ",     // aus- + s-stem: ausſage, ausſicht
	"wachstub", // Wachs-tube reading wins over Wach-stube
	"häusch",   // häus-chen
	"mäusch",   // mäus-chen
	"bläsch",   // bläs-chen
	"rösch",    // rös-chen
}
