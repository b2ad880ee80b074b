package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	M := NewMatrix(2, 3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	assert.Equal(t, 6., M.SumRows().AtVec(0))
	assert.Equal(t, 15., M.SumRows().AtVec(1))
	assert.Equal(t, 5., M.SumCols().AtVec(0))
	assert.Equal(t, 9., M.SumCols().AtVec(2))
	assert.Equal(t, 4., M.Row(1).AtVec(0))
	assert.Equal(t, 6., M.Col(2).AtVec(1))

	MT := M.Transpose()
	nr, nc := MT.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 2, nc)
	assert.Equal(t, 2., MT.At(1, 0))

	A := NewMatrix(2, 2, []float64{
		2, 0,
		0, 4,
	})
	Ainv := A.InverseWithCheck()
	assert.InDeltaf(t, 0.5, Ainv.At(0, 0), 1.e-14, "")
	assert.InDeltaf(t, 0.25, Ainv.At(1, 1), 1.e-14, "")
	I := A.Mul(Ainv)
	assert.InDeltaf(t, 1., I.At(0, 0), 1.e-14, "")
	assert.InDeltaf(t, 0., I.At(0, 1), 1.e-14, "")
}

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{1, 2, 3})
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 6., v.Sum())
	assert.Equal(t, 1., v.Min())
	assert.Equal(t, 3., v.Max())

	w := v.Copy().Scale(2)
	assert.Equal(t, 12., w.Sum())
	assert.Equal(t, 6., v.Sum()) // Copy did not alias

	u := NewVector(3).Set(1).Add(v)
	assert.Equal(t, 9., u.Sum())
	assert.Equal(t, 16., u.POW(2).Sum())
}

func TestLinspace(t *testing.T) {
	x := Linspace(-1, 1, 5)
	assert.Equal(t, 5, len(x))
	assert.InDeltaf(t, -1, x[0], 1.e-15, "")
	assert.InDeltaf(t, 0, x[2], 1.e-15, "")
	assert.InDeltaf(t, 1, x[4], 1.e-15, "")

	assert.Equal(t, 8., POW(2, 3))
	assert.Equal(t, 0.125, POW(2, -3))
}
