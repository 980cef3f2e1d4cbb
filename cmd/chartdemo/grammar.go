package main

import (
	"fmt"
	"os"

	"github.com/gitrdm/chartparse/pkg/chartparse"
	"github.com/gitrdm/chartparse/pkg/chartparse/examples"
	"github.com/gitrdm/chartparse/pkg/chartparse/text"
)

// loadGrammar honors cfg.GrammarFile/LexiconFile when both are set,
// falls back to the bundled English demo grammar when neither is, and
// returns an error when only one is set.
func loadGrammar(cfg runConfig) (*chartparse.Grammar, error) {
	if cfg.GrammarFile == "" && cfg.LexiconFile == "" {
		return examples.EnglishGrammar()
	}
	if cfg.GrammarFile == "" || cfg.LexiconFile == "" {
		return nil, fmt.Errorf("config must set both grammar_file and lexicon_file, or neither")
	}

	grammarText, err := os.ReadFile(cfg.GrammarFile)
	if err != nil {
		return nil, fmt.Errorf("reading grammar_file: %w", err)
	}
	lexiconText, err := os.ReadFile(cfg.LexiconFile)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon_file: %w", err)
	}

	rules, err := text.ParseGrammar(string(grammarText))
	if err != nil {
		return nil, fmt.Errorf("parsing grammar_file: %w", err)
	}
	lex, err := text.ParseLexicon(string(lexiconText))
	if err != nil {
		return nil, fmt.Errorf("parsing lexicon_file: %w", err)
	}
	return chartparse.NewGrammar(append(rules, lex...)), nil
}

func topCategory(cfg runConfig) string {
	if cfg.TopCategory == "" {
		return "S"
	}
	return cfg.TopCategory
}
