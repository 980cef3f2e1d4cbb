package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/chartparse/pkg/chartparse"
	"github.com/gitrdm/chartparse/pkg/chartparse/printer"
)

var parseCmd = &cobra.Command{
	Use:   "parse [word...]",
	Short: "Parse a linear sequence of words and print every derivation",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	grammar, err := loadGrammar(cfg)
	if err != nil {
		return err
	}

	fsm := chartparse.NewLinearFSM(args)
	chart := chartparse.NewChart(grammar, fsm.FinalState(), cfg.Features, logger)
	chart.Run(fsm)

	top := chartparse.NewCategory(topCategory(cfg), nil)
	sols := chart.Solutions(top)
	logger.Infow("parse finished", "words", args, "solutions", len(sols))

	if len(sols) == 0 {
		fmt.Println("no parse")
		return nil
	}

	for i, sol := range sols {
		count := chart.Count(sol)
		fmt.Printf("solution %d: %s (%d derivation(s))\n", i+1, sol.Label.String(), count)
		for tree := range chart.Trees(sol) {
			fmt.Print(printer.Sprint(tree))
		}
	}
	return nil
}
