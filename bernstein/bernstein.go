// Package bernstein evaluates the Bernstein polynomial basis on the
// reference line [-1,1] and the reference brick [-1,1]^3. It is the
// underlying non-rational basis the rational engine reweights.
package bernstein

import (
	"github.com/notargets/rationalfe/element"
	"github.com/notargets/rationalfe/utils"
)

// Shape returns B(order,sf) at xi in [-1,1]. The Bernstein polynomials are
// defined on t in [0,1]; xi maps by t = (1+xi)/2.
func Shape(order, sf int, xi float64) (b float64) {
	if sf < 0 || sf > order {
		return 0
	}
	t := 0.5 * (1. + xi)
	b = binomial(order, sf) * utils.POW(t, sf) * utils.POW(1.-t, order-sf)
	return
}

// ShapeDeriv returns dB(order,sf)/dxi. The chain rule factor dt/dxi = 1/2
// applies on top of the degree-lowering identity
// dB(n,k)/dt = n*(B(n-1,k-1) - B(n-1,k)).
func ShapeDeriv(order, sf int, xi float64) (db float64) {
	if order == 0 {
		return 0
	}
	db = 0.5 * float64(order) * (Shape(order-1, sf-1, xi) - Shape(order-1, sf, xi))
	return
}

// ShapeSecondDeriv returns d^2 B(order,sf)/dxi^2
func ShapeSecondDeriv(order, sf int, xi float64) (d2b float64) {
	if order < 2 {
		return 0
	}
	d2b = 0.25 * float64(order) * float64(order-1) *
		(Shape(order-2, sf-2, xi) - 2.*Shape(order-2, sf-1, xi) + Shape(order-2, sf, xi))
	return
}

func binomial(n, k int) (c float64) {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c = 1.
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return
}

// Basis1D is the non-rational basis delegate for 1D line elements. Shape
// index sf runs 0..order along xi, matching the lexicographic node
// ordering of element.Line.
type Basis1D struct{}

func (b Basis1D) NShapeFunctions(order int, e element.Element) int {
	return order + 1
}

func (b Basis1D) Value(order int, e element.Element, sf int, p element.Point) float64 {
	return Shape(order, sf, p[element.Xi])
}

func (b Basis1D) FirstDeriv(order int, e element.Element, sf, dir int, p element.Point) float64 {
	return ShapeDeriv(order, sf, p[element.Xi])
}

func (b Basis1D) SecondDeriv(order int, e element.Element, sf, d2 int, p element.Point) float64 {
	return ShapeSecondDeriv(order, sf, p[element.Xi])
}

// Basis3D is the tensor-product delegate for brick elements. Shape index
// sf decodes lexicographically: sf = i + (order+1)*(j + (order+1)*k) for
// the factor polynomials B(order,i)(xi)*B(order,j)(eta)*B(order,k)(zeta),
// matching element.Brick node ordering.
type Basis3D struct{}

func (b Basis3D) NShapeFunctions(order int, e element.Element) int {
	np1 := order + 1
	return np1 * np1 * np1
}

func decode3D(order, sf int) (i, j, k int) {
	np1 := order + 1
	i = sf % np1
	j = (sf / np1) % np1
	k = sf / (np1 * np1)
	return
}

func (b Basis3D) Value(order int, e element.Element, sf int, p element.Point) float64 {
	i, j, k := decode3D(order, sf)
	return Shape(order, i, p[element.Xi]) *
		Shape(order, j, p[element.Eta]) *
		Shape(order, k, p[element.Zeta])
}

func (b Basis3D) FirstDeriv(order int, e element.Element, sf, dir int, p element.Point) float64 {
	var (
		i, j, k = decode3D(order, sf)
		f       = [3]float64{
			Shape(order, i, p[element.Xi]),
			Shape(order, j, p[element.Eta]),
			Shape(order, k, p[element.Zeta]),
		}
	)
	switch dir {
	case element.Xi:
		f[element.Xi] = ShapeDeriv(order, i, p[element.Xi])
	case element.Eta:
		f[element.Eta] = ShapeDeriv(order, j, p[element.Eta])
	case element.Zeta:
		f[element.Zeta] = ShapeDeriv(order, k, p[element.Zeta])
	default:
		panic("invalid axis for 3D basis derivative")
	}
	return f[0] * f[1] * f[2]
}

// SecondDeriv takes the linear mixed-direction index 0..5 covering the six
// distinct entries of the symmetric Hessian:
// 0 = xi,xi; 1 = xi,eta; 2 = eta,eta; 3 = xi,zeta; 4 = eta,zeta; 5 = zeta,zeta
func (b Basis3D) SecondDeriv(order int, e element.Element, sf, d2 int, p element.Point) float64 {
	var (
		i, j, k = decode3D(order, sf)
		ks      = [3]int{i, j, k}
		f       [3]float64
		a1, a2  int
	)
	switch d2 {
	case 0:
		a1, a2 = element.Xi, element.Xi
	case 1:
		a1, a2 = element.Xi, element.Eta
	case 2:
		a1, a2 = element.Eta, element.Eta
	case 3:
		a1, a2 = element.Xi, element.Zeta
	case 4:
		a1, a2 = element.Eta, element.Zeta
	case 5:
		a1, a2 = element.Zeta, element.Zeta
	default:
		panic("invalid mixed-direction index for 3D basis second derivative")
	}
	for axis := 0; axis < 3; axis++ {
		switch {
		case axis == a1 && axis == a2:
			f[axis] = ShapeSecondDeriv(order, ks[axis], p[axis])
		case axis == a1 || axis == a2:
			f[axis] = ShapeDeriv(order, ks[axis], p[axis])
		default:
			f[axis] = Shape(order, ks[axis], p[axis])
		}
	}
	return f[0] * f[1] * f[2]
}
