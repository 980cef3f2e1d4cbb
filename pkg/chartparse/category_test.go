package chartparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/chartparse/pkg/chartparse"
)

func TestCategoryEqual(t *testing.T) {
	a := chartparse.NewCategory("Np", map[string]string{"num": "sing"})
	b := chartparse.NewCategory("Np", map[string]string{"num": "sing"})
	c := chartparse.NewCategory("Np", map[string]string{"num": "pl"})
	d := chartparse.NewCategory("Vp", map[string]string{"num": "sing"})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(d))
}

func TestCategoryLessGeneral(t *testing.T) {
	s := chartparse.NewCategory("S", nil)
	sNum := chartparse.NewCategory("S", map[string]string{"num": "pl"})
	sNumCase := chartparse.NewCategory("S", map[string]string{"num": "pl", "case": "obj"})
	vp := chartparse.NewCategory("Vp", map[string]string{"num": "pl"})

	require.True(t, sNum.LessGeneral(s))
	require.False(t, s.LessGeneral(sNum))
	require.True(t, sNumCase.LessGeneral(sNum))
	require.False(t, sNum.LessGeneral(sNum), "a category is never strictly less general than itself")
	require.False(t, sNum.LessGeneral(vp), "different names are never comparable")
}

func TestCategoryCompatible(t *testing.T) {
	sing := chartparse.NewCategory("Np", map[string]string{"num": "sing"})
	unconstrained := chartparse.NewCategory("Np", nil)
	pl := chartparse.NewCategory("Np", map[string]string{"num": "pl"})

	require.True(t, sing.Compatible(unconstrained))
	require.True(t, unconstrained.Compatible(sing))
	require.False(t, sing.Compatible(pl))
}

func TestCategoryExtend(t *testing.T) {
	base := chartparse.NewCategory("Np", map[string]string{"case": "subj"})
	extended := base.Extend("num", "sing")

	v, ok := extended.Binding("num")
	require.True(t, ok)
	require.Equal(t, "sing", v)

	_, ok = base.Binding("num")
	require.False(t, ok, "Extend must not mutate the receiver")
}

func TestCategoryExtendFrom(t *testing.T) {
	mother := chartparse.NewCategory("S", nil)
	daughter := chartparse.NewCategory("Np", map[string]string{"num": "pl", "case": "subj"})

	extended := mother.ExtendFrom([]string{"num", "missing"}, daughter)

	v, ok := extended.Binding("num")
	require.True(t, ok)
	require.Equal(t, "pl", v)

	_, ok = extended.Binding("missing")
	require.False(t, ok)
	_, ok = extended.Binding("case")
	require.False(t, ok, "ExtendFrom only copies the requested keys")
}

func TestCategoryString(t *testing.T) {
	c := chartparse.NewCategory("Np", map[string]string{"num": "sing", "case": "subj"})
	require.Equal(t, "Np(case:subj,num:sing)", c.String(), "bindings render in sorted key order")

	bare := chartparse.NewCategory("det", nil)
	require.Equal(t, "det", bare.String())
}
