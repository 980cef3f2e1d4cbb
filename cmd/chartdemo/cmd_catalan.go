package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gitrdm/chartparse/pkg/chartparse"
)

var catalanCmd = &cobra.Command{
	Use:   "catalan [k]",
	Short: "Print the number of derivations for X -> X X | a on k copies of \"a\"",
	Long: `Demonstrates the ambiguity-scaling property: for the grammar
X -> X X | a on an input of k occurrences of "a", the number of
distinct derivation trees is the (k-1)th Catalan number.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalan,
}

func runCatalan(cmd *cobra.Command, args []string) error {
	k, err := strconv.Atoi(args[0])
	if err != nil || k < 1 {
		return fmt.Errorf("k must be a positive integer, got %q", args[0])
	}

	xx := chartparse.NewRule(chartparse.NewCategory("X", nil),
		[]chartparse.Category{chartparse.NewCategory("X", nil), chartparse.NewCategory("X", nil)},
		nil, [][]string{nil, nil})
	lex := chartparse.NewRule(chartparse.NewCategory("X", nil),
		[]chartparse.Category{chartparse.NewCategory("a", nil)},
		nil, [][]string{nil})
	grammar := chartparse.NewGrammar([]chartparse.Rule{xx, lex})

	words := make([]string, k)
	for i := range words {
		words[i] = "a"
	}
	fsm := chartparse.NewLinearFSM(words)
	chart := chartparse.NewChart(grammar, fsm.FinalState(), false, logger)
	chart.Run(fsm)

	sols := chart.Solutions(chartparse.NewCategory("X", nil))
	if len(sols) == 0 {
		fmt.Println("no parse")
		return nil
	}
	fmt.Printf("k=%d derivations=%d\n", k, chart.Count(sols[0]))
	return nil
}
