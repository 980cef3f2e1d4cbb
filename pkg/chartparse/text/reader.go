// Package text reads the grammar and lexicon text format described in
// spec.md §6: one rule per line (LHS -> RHS1 | RHS2 | ...) and one
// lexicon entry per line (word cat1 | cat2 | ...), with categories
// written as a bare name or Name(f1:v1,...,g1,...) where bare names
// declare re-entrancies.
//
// This reader is the external-collaborator concern named in spec.md
// §1 ("the human-readable grammar and lexicon text format and its
// parser"); it is grounded directly on the historical reference's
// features.py (string_pairs_from_rules, compile_lexicon,
// ImmutableCategory.from_string).
package text

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gitrdm/chartparse/pkg/chartparse"
)

// ParseError reports a malformed grammar or lexicon line, surfaced to
// the caller per spec.md §7's "malformed grammar/lexicon text"
// error kind.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("text: line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// categoryPattern mirrors the reference's COMPLEX_CATEGORY regex:
// a name, optional whitespace, then a parenthesised feature list.
var categoryPattern = regexp.MustCompile(`^(\w+)\s*\(([^)]+)\)$`)

// parseCategory parses a single category token into its name, its
// plain k:v bindings, and its bare re-entrancy names.
func parseCategory(tok string) (name string, bindings map[string]string, bare []string, err error) {
	if m := categoryPattern.FindStringSubmatch(tok); m != nil {
		name = m[1]
		for _, piece := range strings.Split(m[2], ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			if kv := strings.SplitN(piece, ":", 2); len(kv) == 2 {
				if bindings == nil {
					bindings = make(map[string]string)
				}
				bindings[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
			} else {
				bare = append(bare, piece)
			}
		}
		return name, bindings, bare, nil
	}
	if strings.ContainsAny(tok, "()") {
		return "", nil, nil, fmt.Errorf("malformed category %q", tok)
	}
	return tok, nil, nil, nil
}

// ParseGrammar reads rule lines of the form "LHS -> RHS1 | RHS2 | ...".
// Blank lines are skipped. Every alternative on a line shares that
// line's left-hand category.
func ParseGrammar(src string) ([]chartparse.Rule, error) {
	var rules []chartparse.Rule
	for lineNo, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lhsPart, rhsPart, ok := strings.Cut(line, "->")
		if !ok {
			return nil, &ParseError{Line: lineNo + 1, Text: line, Err: fmt.Errorf("missing '->'")}
		}
		lhsName, lhsBindings, lhsBare, err := parseCategory(strings.TrimSpace(lhsPart))
		if err != nil {
			return nil, &ParseError{Line: lineNo + 1, Text: line, Err: err}
		}
		lhs := chartparse.NewCategory(lhsName, lhsBindings)

		for _, alt := range strings.Split(rhsPart, "|") {
			fields := strings.Fields(alt)
			if len(fields) == 0 {
				return nil, &ParseError{Line: lineNo + 1, Text: line, Err: fmt.Errorf("empty right-hand side")}
			}
			rhs := make([]chartparse.Category, len(fields))
			daughterBare := make([][]string, len(fields))
			for i, tok := range fields {
				name, bindings, bare, err := parseCategory(tok)
				if err != nil {
					return nil, &ParseError{Line: lineNo + 1, Text: line, Err: err}
				}
				rhs[i] = chartparse.NewCategory(name, bindings)
				daughterBare[i] = bare
			}
			rules = append(rules, chartparse.NewRule(lhs, rhs, lhsBare, daughterBare))
		}
	}
	return rules, nil
}

// ParseLexicon reads lexicon lines of the form "word cat1 | cat2 | ...".
// Each (word, category) pair becomes a lexical Rule(lhs=category,
// rhs=[word-as-terminal-category]). Blank lines are skipped.
func ParseLexicon(src string) ([]chartparse.Rule, error) {
	var rules []chartparse.Rule
	for lineNo, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, &ParseError{Line: lineNo + 1, Text: line, Err: fmt.Errorf("expected a word followed by at least one category")}
		}
		word := fields[0]
		terminal := chartparse.NewCategory(word, nil)

		var catTokens []string
		for _, tok := range fields[1:] {
			if tok == "|" {
				continue
			}
			if strings.Contains(tok, "|") {
				for _, piece := range strings.Split(tok, "|") {
					if piece != "" {
						catTokens = append(catTokens, piece)
					}
				}
				continue
			}
			catTokens = append(catTokens, tok)
		}

		for _, tok := range catTokens {
			name, bindings, bare, err := parseCategory(tok)
			if err != nil {
				return nil, &ParseError{Line: lineNo + 1, Text: line, Err: err}
			}
			lhs := chartparse.NewCategory(name, bindings)
			rules = append(rules, chartparse.NewRule(lhs, []chartparse.Category{terminal}, bare, [][]string{nil}))
		}
	}
	return rules, nil
}
