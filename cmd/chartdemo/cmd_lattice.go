package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/chartparse/pkg/chartparse"
	"github.com/gitrdm/chartparse/pkg/chartparse/printer"
)

var arcsFile string

var latticeCmd = &cobra.Command{
	Use:   "lattice",
	Short: "Parse a word lattice and print every derivation",
	Long: `Parses an acyclic word lattice supplied via --arcs (one arc per
line: "src word dst"). Without --arcs, demonstrates the built-in
director/direct-or segmentation ambiguity from "the director is clint
eastwood".`,
	RunE: runLattice,
}

func init() {
	latticeCmd.Flags().StringVar(&arcsFile, "arcs", "", "Path to a lattice arc file (one \"src word dst\" per line)")
}

func runLattice(cmd *cobra.Command, args []string) error {
	arcs, err := loadArcs(arcsFile)
	if err != nil {
		return err
	}

	fsm, err := chartparse.NewLatticeFSM(arcs)
	if err != nil {
		return err
	}

	grammar, err := loadGrammar(cfg)
	if err != nil {
		return err
	}

	chart := chartparse.NewChart(grammar, fsm.FinalState(), cfg.Features, logger)
	chart.Run(fsm)

	top := chartparse.NewCategory(topCategory(cfg), nil)
	sols := chart.Solutions(top)
	logger.Infow("lattice parse finished", "arcs", len(arcs), "solutions", len(sols))

	if len(sols) == 0 {
		fmt.Println("no parse")
		return nil
	}
	for i, sol := range sols {
		fmt.Printf("solution %d: %s (%d derivation(s))\n", i+1, sol.Label.String(), chart.Count(sol))
		for tree := range chart.Trees(sol) {
			fmt.Print(printer.Sprint(tree))
		}
	}
	return nil
}

// demoDirectorArcs reproduces the director/direct-or ambiguous
// segmentation of "the director is clint eastwood" as a lattice.
func demoDirectorArcs() []chartparse.Arc {
	return []chartparse.Arc{
		{Src: 0, Word: "the", Dst: 1},
		{Src: 1, Word: "director", Dst: 3},
		{Src: 1, Word: "direct", Dst: 2},
		{Src: 2, Word: "or", Dst: 3},
		{Src: 3, Word: "is", Dst: 4},
		{Src: 4, Word: "clint", Dst: 5},
		{Src: 5, Word: "eastwood", Dst: 6},
	}
}

func loadArcs(path string) ([]chartparse.Arc, error) {
	if path == "" {
		return demoDirectorArcs(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening arcs file: %w", err)
	}
	defer f.Close()

	var arcs []chartparse.Arc
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("arcs file line %d: expected \"src word dst\", got %q", lineNo, line)
		}
		src, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("arcs file line %d: invalid src: %w", lineNo, err)
		}
		dst, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("arcs file line %d: invalid dst: %w", lineNo, err)
		}
		arcs = append(arcs, chartparse.Arc{Src: src, Word: fields[1], Dst: dst})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading arcs file: %w", err)
	}
	return arcs, nil
}
