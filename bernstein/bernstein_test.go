package bernstein

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/rationalfe/element"
	"github.com/notargets/rationalfe/utils"
)

func TestBernstein1D(t *testing.T) {
	// Partition of unity for each order over the reference line
	for N := 0; N <= 4; N++ {
		for _, xi := range utils.Linspace(-1, 1, 21) {
			var sum float64
			for sf := 0; sf <= N; sf++ {
				sum += Shape(N, sf, xi)
			}
			assert.InDeltaf(t, 1., sum, 1.e-12, "order %d, xi %f", N, xi)
		}
	}
	// Known quadratic values at the midpoint
	assert.InDeltaf(t, 0.25, Shape(2, 0, 0), 1.e-14, "")
	assert.InDeltaf(t, 0.50, Shape(2, 1, 0), 1.e-14, "")
	assert.InDeltaf(t, 0.25, Shape(2, 2, 0), 1.e-14, "")
	// Endpoint interpolation
	assert.InDeltaf(t, 1., Shape(3, 0, -1), 1.e-14, "")
	assert.InDeltaf(t, 1., Shape(3, 3, 1), 1.e-14, "")
	assert.InDeltaf(t, 0., Shape(3, 1, -1), 1.e-14, "")
}

func TestBernstein1DDerivatives(t *testing.T) {
	var (
		h = 1.e-6
	)
	for N := 1; N <= 4; N++ {
		for sf := 0; sf <= N; sf++ {
			for _, xi := range utils.Linspace(-0.9, 0.9, 7) {
				fd := (Shape(N, sf, xi+h) - Shape(N, sf, xi-h)) / (2 * h)
				assert.InDeltaf(t, fd, ShapeDeriv(N, sf, xi), 1.e-7,
					"order %d, sf %d, xi %f", N, sf, xi)
				fd2 := (ShapeDeriv(N, sf, xi+h) - ShapeDeriv(N, sf, xi-h)) / (2 * h)
				assert.InDeltaf(t, fd2, ShapeSecondDeriv(N, sf, xi), 1.e-6,
					"order %d, sf %d, xi %f", N, sf, xi)
			}
		}
	}
	// Derivatives of a partition of unity sum to zero
	var dsum float64
	for sf := 0; sf <= 3; sf++ {
		dsum += ShapeDeriv(3, sf, 0.3)
	}
	assert.InDeltaf(t, 0., dsum, 1.e-12, "")
}

func TestBernstein3D(t *testing.T) {
	var (
		b3    = Basis3D{}
		order = 2
		nSF   = b3.NShapeFunctions(order, nil)
		p     = element.Point{0.3, -0.2, 0.55}
		h     = 1.e-6
	)
	assert.Equal(t, 27, nSF)
	var sum float64
	for sf := 0; sf < nSF; sf++ {
		sum += b3.Value(order, nil, sf, p)
	}
	assert.InDeltaf(t, 1., sum, 1.e-12, "")
	// First derivatives against central differences along each axis
	for dir := element.Xi; dir <= element.Zeta; dir++ {
		for sf := 0; sf < nSF; sf++ {
			pp, pm := p, p
			pp[dir] += h
			pm[dir] -= h
			fd := (b3.Value(order, nil, sf, pp) - b3.Value(order, nil, sf, pm)) / (2 * h)
			assert.InDeltaf(t, fd, b3.FirstDeriv(order, nil, sf, dir, p), 1.e-7,
				"dir %d, sf %d", dir, sf)
		}
	}
}

func TestBernstein3DSecondDerivs(t *testing.T) {
	var (
		b3    = Basis3D{}
		order = 2
		nSF   = b3.NShapeFunctions(order, nil)
		p     = element.Point{0.1, 0.4, -0.3}
		h     = 1.e-6
	)
	axisPairs := [6][2]int{
		{element.Xi, element.Xi}, {element.Xi, element.Eta},
		{element.Eta, element.Eta}, {element.Xi, element.Zeta},
		{element.Eta, element.Zeta}, {element.Zeta, element.Zeta},
	}
	for d2, pair := range axisPairs {
		j1, j2 := pair[0], pair[1]
		for sf := 0; sf < nSF; sf++ {
			pp, pm := p, p
			pp[j2] += h
			pm[j2] -= h
			fd := (b3.FirstDeriv(order, nil, sf, j1, pp) -
				b3.FirstDeriv(order, nil, sf, j1, pm)) / (2 * h)
			assert.InDeltaf(t, fd, b3.SecondDeriv(order, nil, sf, d2, p), 1.e-6,
				"mixed %d, sf %d", d2, sf)
		}
	}
}

func TestVandermonde1D(t *testing.T) {
	var (
		N = 3
		R = utils.NewVector(9, utils.Linspace(-1, 1, 9))
		V = Vandermonde1D(N, R)
	)
	// Each row sums to one, partition of unity at every sample point
	for i, rowSum := range V.SumRows().DataP {
		assert.InDeltaf(t, 1., rowSum, 1.e-12, "row %d", i)
	}
	// Collocation at distinct points is invertible, giving the nodal basis
	Rn := utils.NewVector(N+1, utils.Linspace(-1, 1, N+1))
	Vn := Vandermonde1D(N, Rn)
	Vinv := Vn.InverseWithCheck()
	I := Vn.Mul(Vinv)
	for i := 0; i < N+1; i++ {
		for j := 0; j < N+1; j++ {
			expected := 0.
			if i == j {
				expected = 1.
			}
			assert.InDeltaf(t, expected, I.At(i, j), 1.e-10, "")
		}
	}
	fmt.Printf("V =\n")
	V.Print()
	// Gradient rows sum to zero, the constant is reproduced exactly
	Vr := GradVandermonde1D(N, R)
	for i, rowSum := range Vr.SumRows().DataP {
		assert.InDeltaf(t, 0., rowSum, 1.e-12, "row %d", i)
	}
}
