package rational

import (
	"fmt"

	"github.com/notargets/rationalfe/bernstein"
	"github.com/notargets/rationalfe/element"
)

// Evaluator is the operation set the assembly layer invokes per
// quadrature point. The Ref variants take only an element kind and always
// fail with ErrMissingGeometry.
type Evaluator interface {
	Value(e element.Element, order, i int, p element.Point, addPLevel bool) (float64, error)
	FirstDeriv(e element.Element, order, i, dir int, p element.Point, addPLevel bool) (float64, error)
	SecondDeriv(e element.Element, order, i int, d2 Deriv2, p element.Point, addPLevel bool) (float64, error)
	RefValue(k element.Kind, order, i int, p element.Point) (float64, error)
	RefFirstDeriv(k element.Kind, order, i, dir int, p element.Point) (float64, error)
	RefSecondDeriv(k element.Kind, order, i int, d2 Deriv2, p element.Point) (float64, error)
}

// New selects the engine for a parametric dimension and family. Supported
// combinations are (1, RationalBernstein) and (3, RationalBernstein); a
// 2D engine would follow the 3D pattern restricted to two axes.
func New(dim int, family Family) (Evaluator, error) {
	switch {
	case dim == 1 && family == RationalBernstein:
		return NewBasis1D(bernstein.Basis1D{}), nil
	case dim == 3 && family == RationalBernstein:
		return NewBasis3D(bernstein.Basis3D{}), nil
	}
	return nil, fmt.Errorf("no rational basis engine for dimension %d, family %v", dim, family)
}
