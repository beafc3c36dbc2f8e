// Command longs converts words to historical long-s orthography.
//
// Words are taken from the command line, or from stdin (one word or line
// per input line) when no arguments are given:
//
//	longs wasser versuch
//	longs -lang fr <chapter.txt
//
// German input is converted word by word; the romance languages convert
// whole lines.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/travisgk/long-s/german"
	"github.com/travisgk/long-s/romance"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("longs: ")

	lang := flag.String("lang", "de", "language: de, fr, it, or es")
	short := flag.Bool("short", false, "resolve undecided s to the short form (German)")
	pre1901 := flag.Bool("pre1901", false, "use pre-1901 rules: short s before z (German)")
	trace := flag.Bool("trace", false, "print per-stage working strings to stderr (German)")
	flag.Parse()

	convert, err := converterFor(*lang, *short, *pre1901, *trace)
	if err != nil {
		log.Fatal(err)
	}

	if flag.NArg() > 0 {
		for _, word := range flag.Args() {
			fmt.Println(convert(word))
		}
		return
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		fmt.Println(convert(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

func converterFor(lang string, short, pre1901, trace bool) (func(string) string, error) {
	switch lang {
	case "de":
		cfg := german.Config{DefaultShortS: short, ShortSBeforeZ: pre1901}
		if trace {
			cfg.Trace = func(stage, working string) {
				fmt.Fprintf(os.Stderr, "%-12s %s\n", stage, working)
			}
		}
		return german.New(nil, cfg).Convert, nil
	case "fr":
		return romance.French, nil
	case "it":
		return romance.Italian, nil
	case "es":
		return romance.Spanish, nil
	}
	return nil, fmt.Errorf("unknown language %q (want de, fr, it, or es)", lang)
}
