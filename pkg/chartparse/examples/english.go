// Package examples bundles a small English grammar and lexicon used by
// the cmd/chartdemo CLI and by this package's own scenario tests. The
// vocabulary and rule set trace back to Steve Isard's LIB CHART demo
// grammar (University of Sussex), ported here from the historical
// reference's english.py with its features preserved rather than
// stripped: that source notes the features "could reasonably be
// handled... via compilation to a plain CFG, since their purpose is
// only to enforce agreement" but strips them instead; this package's
// grammar keeps them and enforces agreement through the
// feature-agreement machinery in pkg/chartparse, on realistic data.
package examples

import (
	_ "embed"
	"fmt"

	"github.com/gitrdm/chartparse/pkg/chartparse"
	"github.com/gitrdm/chartparse/pkg/chartparse/text"
)

//go:embed testdata/english_grammar.txt
var englishGrammarText string

//go:embed testdata/english_lexicon.txt
var englishLexiconText string

// EnglishGrammar parses and returns the bundled demo grammar, combining
// the phrase-structure rules with the lexicon (every lexicon entry is
// itself a lexical Rule).
func EnglishGrammar() (*chartparse.Grammar, error) {
	rules, err := text.ParseGrammar(englishGrammarText)
	if err != nil {
		return nil, fmt.Errorf("examples: parsing bundled grammar: %w", err)
	}
	lex, err := text.ParseLexicon(englishLexiconText)
	if err != nil {
		return nil, fmt.Errorf("examples: parsing bundled lexicon: %w", err)
	}
	return chartparse.NewGrammar(append(rules, lex...)), nil
}
