package chartparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/chartparse/pkg/chartparse"
)

func TestNewRuleIsLexical(t *testing.T) {
	lhs := chartparse.NewCategory("det", map[string]string{"num": "sing"})
	rhs := []chartparse.Category{chartparse.NewCategory("a", nil)}
	r := chartparse.NewRule(lhs, rhs, nil, [][]string{nil})

	require.True(t, r.IsLexical())
	require.Equal(t, "a", r.LeftCorner().Name)
}

func TestNewRuleDropsMotherOnlyReentrancy(t *testing.T) {
	// S(num) -> Np Vp, with "num" declared only on the mother: it must
	// be dropped from the constraint descriptor, since there is no
	// daughter to percolate it from (spec.md §3 invariant).
	lhs := chartparse.NewCategory("S", nil)
	rhs := []chartparse.Category{
		chartparse.NewCategory("Np", nil),
		chartparse.NewCategory("Vp", nil),
	}
	r := chartparse.NewRule(lhs, rhs, []string{"num"}, [][]string{nil, nil})

	edge := chartparse.NewSpawnedEdge(r, 0)
	// Percolating against a daughter bound num:sing should NOT extend
	// the mother label, because "num" never recurs across positions.
	label, _, _ := edge.Percolate(chartparse.NewCategory("Np", map[string]string{"num": "sing"}))
	_, ok := label.Binding("num")
	require.False(t, ok)
}

func TestNewRuleKeepsSharedReentrancy(t *testing.T) {
	// S(num) -> Np(num,case:subj) Vp(num): "num" recurs on mother, Np,
	// and Vp, so it must survive into the constraint descriptor.
	lhs := chartparse.NewCategory("S", nil)
	rhs := []chartparse.Category{
		chartparse.NewCategory("Np", map[string]string{"case": "subj"}),
		chartparse.NewCategory("Vp", nil),
	}
	r := chartparse.NewRule(lhs, rhs, []string{"num"}, [][]string{{"num"}, {"num"}})

	edge := chartparse.NewSpawnedEdge(r, 0)
	label, needed, _ := edge.Percolate(chartparse.NewCategory("Np", map[string]string{"num": "pl", "case": "subj"}))

	v, ok := label.Binding("num")
	require.True(t, ok)
	require.Equal(t, "pl", v)

	require.Len(t, needed, 1)
	v, ok = needed[0].Binding("num")
	require.True(t, ok)
	require.Equal(t, "pl", v)
}
