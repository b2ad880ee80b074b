package bernstein

import (
	"github.com/notargets/rationalfe/utils"
)

// Vandermonde1D tabulates the order-N Bernstein basis at the points in R,
// one row per point, one column per basis function
func Vandermonde1D(N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	p := make([]float64, R.Len())
	for j := 0; j < N+1; j++ {
		for i, xi := range R.DataP {
			p[i] = Shape(N, j, xi)
		}
		V.SetCol(j, p)
	}
	return
}

// GradVandermonde1D tabulates the first derivatives of the order-N
// Bernstein basis at the points in R
func GradVandermonde1D(N int, R utils.Vector) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(R.Len(), N+1)
	p := make([]float64, R.Len())
	for j := 0; j < N+1; j++ {
		for i, xi := range R.DataP {
			p[i] = ShapeDeriv(N, j, xi)
		}
		Vr.SetCol(j, p)
	}
	return
}
