package chartparse

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
)

// Arc is one transition of an input FSM: a single terminal symbol word
// connecting state src to state dst.
type Arc struct {
	Src  int
	Word string
	Dst  int
}

// FSM is the abstract input contract: an enumerable set of arcs and a
// designated accepting state. States are integers 0..FinalState().
// Both realisations below (LinearFSM, LatticeFSM) must be acyclic.
type FSM interface {
	FinalState() int
	Arcs() iter.Seq[Arc]
}

// LinearFSM is the degenerate FSM for a plain word sequence: arcs
// (i, words[i], i+1), final state len(words).
type LinearFSM struct {
	words []string
}

// NewLinearFSM builds the FSM for a linear sequence of words.
func NewLinearFSM(words []string) LinearFSM {
	cp := make([]string, len(words))
	copy(cp, words)
	return LinearFSM{words: cp}
}

// FinalState implements FSM.
func (f LinearFSM) FinalState() int { return len(f.words) }

// Arcs implements FSM.
func (f LinearFSM) Arcs() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		for i, w := range f.words {
			if !yield(Arc{Src: i, Word: w, Dst: i + 1}) {
				return
			}
		}
	}
}

// LatticeFSM is a general acyclic word lattice: an explicit,
// pre-renumbered set of arcs, possibly offering several competing
// paths (ambiguous tokenisation) between the same pair of states.
type LatticeFSM struct {
	arcs  []Arc
	final int
}

// NewLatticeFSM builds a LatticeFSM from an explicit arc list. The
// final state is the largest state number named by any arc, source or
// destination (the maximum destination whenever the highest-numbered
// state has no outgoing arcs). Construction
// fails with ErrCyclicFSM if the arcs describe a cyclic graph: an
// unbounded chart would otherwise result, and "detect and refuse" is
// an explicitly conformant response to a cyclic input FSM.
func NewLatticeFSM(arcs []Arc) (LatticeFSM, error) {
	cp := make([]Arc, len(arcs))
	copy(cp, arcs)

	final := 0
	for _, a := range cp {
		if a.Dst > final {
			final = a.Dst
		}
		if a.Src > final {
			final = a.Src
		}
	}

	if err := checkAcyclic(cp); err != nil {
		return LatticeFSM{}, err
	}

	return LatticeFSM{arcs: cp, final: final}, nil
}

func checkAcyclic(arcs []Arc) error {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	seen := map[int]bool{}
	ensure := func(state int) error {
		if seen[state] {
			return nil
		}
		seen[state] = true
		return g.AddVertex(strconv.Itoa(state))
	}
	for _, a := range arcs {
		if err := ensure(a.Src); err != nil {
			return fmt.Errorf("chartparse: building cycle-check graph: %w", err)
		}
		if err := ensure(a.Dst); err != nil {
			return fmt.Errorf("chartparse: building cycle-check graph: %w", err)
		}
		if _, err := g.AddEdge(strconv.Itoa(a.Src), strconv.Itoa(a.Dst), 0); err != nil {
			return fmt.Errorf("chartparse: building cycle-check graph: %w", err)
		}
	}

	hasCycle, _, err := dfs.DetectCycles(g)
	if err != nil {
		return fmt.Errorf("chartparse: cycle detection failed: %w", err)
	}
	if hasCycle {
		return ErrCyclicFSM
	}
	return nil
}

// FinalState implements FSM.
func (f LatticeFSM) FinalState() int { return f.final }

// Arcs implements FSM.
func (f LatticeFSM) Arcs() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		for _, a := range f.arcs {
			if !yield(a) {
				return
			}
		}
	}
}
