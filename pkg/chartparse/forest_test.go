package chartparse_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/chartparse/pkg/chartparse"
)

func simpleGrammar() *chartparse.Grammar {
	s := chartparse.NewRule(cat("S", nil), []chartparse.Category{cat("Np", nil), cat("Vp", nil)}, nil, [][]string{nil, nil})
	np := chartparse.NewRule(cat("Np", nil), []chartparse.Category{cat("det", nil), cat("n", nil)}, nil, [][]string{nil, nil})
	vp := chartparse.NewRule(cat("Vp", nil), []chartparse.Category{cat("v", nil)}, nil, [][]string{nil})
	theDet := chartparse.NewRule(cat("det", nil), []chartparse.Category{cat("the", nil)}, nil, [][]string{nil})
	dogN := chartparse.NewRule(cat("n", nil), []chartparse.Category{cat("dog", nil)}, nil, [][]string{nil})
	barksV := chartparse.NewRule(cat("v", nil), []chartparse.Category{cat("barks", nil)}, nil, [][]string{nil})
	return chartparse.NewGrammar([]chartparse.Rule{s, np, vp, theDet, dogN, barksV})
}

func TestChartTreesAndCountAgreeOnUnambiguousSentence(t *testing.T) {
	g := simpleGrammar()
	fsm := chartparse.NewLinearFSM([]string{"the", "dog", "barks"})
	c := chartparse.NewChart(g, fsm.FinalState(), false, nil)
	c.Run(fsm)

	sols := c.Solutions(cat("S", nil))
	require.Len(t, sols, 1)

	require.Equal(t, 1, c.Count(sols[0]))

	var trees []chartparse.Tree
	for tr := range c.Trees(sols[0]) {
		trees = append(trees, tr)
	}
	require.Len(t, trees, 1)

	want := chartparse.Tree{
		Label: cat("S", nil),
		Children: []chartparse.Tree{
			{
				Label: cat("Np", nil),
				Children: []chartparse.Tree{
					{Label: cat("det", nil), Children: []chartparse.Tree{{Label: cat("the", nil)}}},
					{Label: cat("n", nil), Children: []chartparse.Tree{{Label: cat("dog", nil)}}},
				},
			},
			{
				Label: cat("Vp", nil),
				Children: []chartparse.Tree{
					{Label: cat("v", nil), Children: []chartparse.Tree{{Label: cat("barks", nil)}}},
				},
			},
		},
	}
	if diff := cmp.Diff(want, trees[0]); diff != "" {
		t.Errorf("unexpected tree shape (-want +got):\n%s", diff)
	}
}

func TestChartTreesRestartable(t *testing.T) {
	g := simpleGrammar()
	fsm := chartparse.NewLinearFSM([]string{"the", "dog", "barks"})
	c := chartparse.NewChart(g, fsm.FinalState(), false, nil)
	c.Run(fsm)

	sols := c.Solutions(cat("S", nil))
	require.Len(t, sols, 1)

	seq := c.Trees(sols[0])
	var first, second int
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	require.Equal(t, first, second, "ranging over the same Trees sequence twice must re-walk, not exhaust")
}

// ambiguousGrammar accepts a run of one or more terminals "a" as X via
// two productions, X -> X X | a, so that an input of k tokens has as
// many distinct bracketings as there are binary trees over k leaves:
// the Catalan numbers (spec.md §8's ambiguity-scaling property).
func ambiguousGrammar() *chartparse.Grammar {
	xx := chartparse.NewRule(cat("X", nil), []chartparse.Category{cat("X", nil), cat("X", nil)}, nil, [][]string{nil, nil})
	lex := chartparse.NewRule(cat("X", nil), []chartparse.Category{cat("a", nil)}, nil, [][]string{nil})
	return chartparse.NewGrammar([]chartparse.Rule{xx, lex})
}

func TestChartCountMatchesCatalanNumbers(t *testing.T) {
	catalan := []int{1, 1, 2, 5, 14, 42, 132, 429}

	for k := 1; k <= 8; k++ {
		words := make([]string, k)
		for i := range words {
			words[i] = "a"
		}
		fsm := chartparse.NewLinearFSM(words)
		c := chartparse.NewChart(ambiguousGrammar(), fsm.FinalState(), false, nil)
		c.Run(fsm)

		sols := c.Solutions(cat("X", nil))
		require.Len(t, sols, 1, "k=%d", k)
		require.Equal(t, catalan[k-1], c.Count(sols[0]), "k=%d", k)
	}
}
