package rational

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/rationalfe/element"
)

func TestDispatch(t *testing.T) {
	for _, dim := range []int{1, 3} {
		engine, err := New(dim, RationalBernstein)
		assert.NoError(t, err)
		assert.NotNil(t, engine)
		// Every engine rejects kind-only queries for all derivative orders
		var p element.Point
		_, err = engine.RefValue(element.KindLine, 1, 0, p)
		assert.ErrorIs(t, err, ErrMissingGeometry)
		_, err = engine.RefFirstDeriv(element.KindLine, 1, 0, element.Xi, p)
		assert.ErrorIs(t, err, ErrMissingGeometry)
		_, err = engine.RefSecondDeriv(element.KindLine, 1, 0, XiXi, p)
		assert.ErrorIs(t, err, ErrMissingGeometry)
	}
	_, err := New(2, RationalBernstein)
	assert.Error(t, err)
	_, err = New(1, Family(42))
	assert.Error(t, err)
}

func TestDeriv2Axes(t *testing.T) {
	expected := map[Deriv2][2]int{
		XiXi:     {element.Xi, element.Xi},
		XiEta:    {element.Xi, element.Eta},
		EtaEta:   {element.Eta, element.Eta},
		XiZeta:   {element.Xi, element.Zeta},
		EtaZeta:  {element.Eta, element.Zeta},
		ZetaZeta: {element.Zeta, element.Zeta},
	}
	for d2, pair := range expected {
		j1, j2, ok := d2.Axes()
		assert.True(t, ok)
		assert.Equal(t, pair[0], j1, d2.String())
		assert.Equal(t, pair[1], j2, d2.String())
	}
	_, _, ok := Deriv2(6).Axes()
	assert.False(t, ok)
}
