package examples_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/chartparse/pkg/chartparse"
	"github.com/gitrdm/chartparse/pkg/chartparse/examples"
)

func parseWords(t *testing.T, g *chartparse.Grammar, words []string, top string) []chartparse.Edge {
	t.Helper()
	fsm := chartparse.NewLinearFSM(words)
	c := chartparse.NewChart(g, fsm.FinalState(), true, nil)
	c.Run(fsm)
	return c.Solutions(chartparse.NewCategory(top, nil))
}

// Scenario: "the pigeons are punished and they suffer" parses one way,
// as a conjunction of two agreement-clean clauses (spec.md §8 scenario
// 1).
func TestEnglishGrammarConjoinedClause(t *testing.T) {
	g, err := examples.EnglishGrammar()
	require.NoError(t, err)

	words := []string{"the", "pigeons", "are", "punished", "and", "they", "suffer"}
	fsm := chartparse.NewLinearFSM(words)
	chart := chartparse.NewChart(g, fsm.FinalState(), true, nil)
	chart.Run(fsm)

	sols := chart.Solutions(chartparse.NewCategory("S", nil))
	require.Len(t, sols, 1)

	var trees []chartparse.Tree
	for tr := range chart.Trees(sols[0]) {
		trees = append(trees, tr)
	}
	require.Len(t, trees, 1)

	root := trees[0]
	require.Equal(t, "S", root.Label.Name)
	require.Len(t, root.Children, 3)
	require.Equal(t, "S", root.Children[0].Label.Name)
	require.Equal(t, "conj", root.Children[1].Label.Name)
	require.Equal(t, "S", root.Children[2].Label.Name)
}

// Scenario: "the sheep suffers" — "sheep" is unmarked for number, so it
// percolates number from the verb (spec.md §8 scenario 3).
func TestEnglishGrammarInvariantNounSingular(t *testing.T) {
	g, err := examples.EnglishGrammar()
	require.NoError(t, err)

	sols := parseWords(t, g, []string{"the", "sheep", "suffers"}, "S")
	require.Len(t, sols, 1)
	v, ok := sols[0].Label.Binding("num")
	require.True(t, ok)
	require.Equal(t, "sing", v)
}

// Scenario: "the sheep suffer" is the plural counterpart of the above
// (spec.md §8 scenario 5).
func TestEnglishGrammarInvariantNounPlural(t *testing.T) {
	g, err := examples.EnglishGrammar()
	require.NoError(t, err)

	sols := parseWords(t, g, []string{"the", "sheep", "suffer"}, "S")
	require.Len(t, sols, 1)
	v, ok := sols[0].Label.Binding("num")
	require.True(t, ok)
	require.Equal(t, "pl", v)
}

// Scenario: "the pigeon suffer" mismatches a singular noun against a
// plural verb and must not parse (spec.md §8 scenario 4).
func TestEnglishGrammarRejectsNumberClash(t *testing.T) {
	g, err := examples.EnglishGrammar()
	require.NoError(t, err)

	sols := parseWords(t, g, []string{"the", "pigeon", "suffer"}, "S")
	require.Empty(t, sols)
}

// Scenario: an imperative sentence with an embedded relative clause,
// presented as a word lattice offering three independent ambiguous
// segmentations ("director" / "direct or" / "dye rector" and
// "eastwood" / "is wood" / "east wood"). At least the reading
// SImp[show me [Np a movie [Relp where [S the director is [Pn clint
// eastwood]]]]] must be found (spec.md §8 scenario 7).
func TestEnglishGrammarLatticeImperativeWithRelativeClause(t *testing.T) {
	g, err := examples.EnglishGrammar()
	require.NoError(t, err)

	fsm, err := chartparse.NewLatticeFSM([]chartparse.Arc{
		{Src: 0, Word: "show", Dst: 1},
		{Src: 1, Word: "me", Dst: 2},
		{Src: 2, Word: "a", Dst: 3},
		{Src: 3, Word: "movie", Dst: 4},
		{Src: 4, Word: "where", Dst: 5},
		{Src: 5, Word: "the", Dst: 6},
		{Src: 6, Word: "director", Dst: 8},
		{Src: 6, Word: "direct", Dst: 7},
		{Src: 6, Word: "dye", Dst: 7},
		{Src: 7, Word: "or", Dst: 8},
		{Src: 7, Word: "rector", Dst: 8},
		{Src: 8, Word: "is", Dst: 9},
		{Src: 9, Word: "clint", Dst: 10},
		{Src: 10, Word: "eastwood", Dst: 12},
		{Src: 10, Word: "is", Dst: 11},
		{Src: 10, Word: "east", Dst: 11},
		{Src: 11, Word: "wood", Dst: 12},
	})
	require.NoError(t, err)

	c := chartparse.NewChart(g, fsm.FinalState(), true, nil)
	c.Run(fsm)

	sols := c.Solutions(chartparse.NewCategory("SImp", nil))
	require.NotEmpty(t, sols, "at least one reading of the imperative sentence must be found")
}
