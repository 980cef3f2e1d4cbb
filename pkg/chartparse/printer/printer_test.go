package printer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/chartparse/pkg/chartparse"
	"github.com/gitrdm/chartparse/pkg/chartparse/printer"
)

func TestSprintCollapsesLexicalLeaf(t *testing.T) {
	tree := chartparse.Tree{
		Label: chartparse.NewCategory("n", nil),
		Children: []chartparse.Tree{
			{Label: chartparse.NewCategory("dog", nil)},
		},
	}
	require.Equal(t, "n dog\n", printer.Sprint(tree))
}

func TestSprintIndentsNestedStructure(t *testing.T) {
	tree := chartparse.Tree{
		Label: chartparse.NewCategory("S", nil),
		Children: []chartparse.Tree{
			{
				Label: chartparse.NewCategory("Np", nil),
				Children: []chartparse.Tree{
					{Label: chartparse.NewCategory("dog", nil)},
				},
			},
			{
				Label: chartparse.NewCategory("Vp", nil),
				Children: []chartparse.Tree{
					{Label: chartparse.NewCategory("barks", nil)},
				},
			},
		},
	}

	want := "S\n" +
		" Np dog\n" +
		" Vp barks\n"
	require.Equal(t, want, printer.Sprint(tree))
}
