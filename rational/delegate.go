package rational

import (
	"fmt"

	"github.com/notargets/rationalfe/element"
)

// Delegate evaluates the underlying non-rational polynomial basis the
// engine reweights. Implementations must be deterministic, side-effect
// free, and safe for concurrent use; the engine issues one call per node
// per requested derivative order. The order passed in already includes
// any p-refinement increment.
type Delegate interface {
	NShapeFunctions(order int, e element.Element) int
	Value(order int, e element.Element, sf int, p element.Point) float64
	FirstDeriv(order int, e element.Element, sf, dir int, p element.Point) float64
}

// SecondDerivDelegate is the optional capability needed for rational
// second derivatives. d2 is the linear mixed-direction index (always 0 in
// 1D, 0..5 in 3D per Deriv2).
type SecondDerivDelegate interface {
	Delegate
	SecondDeriv(order int, e element.Element, sf, d2 int, p element.Point) float64
}

// Family identifies a rational basis family by its underlying polynomial
// basis
type Family uint8

const (
	RationalBernstein Family = iota
)

func (f Family) String() string {
	switch f {
	case RationalBernstein:
		return "RationalBernstein"
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}
