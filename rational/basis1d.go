package rational

import (
	"fmt"

	"github.com/notargets/rationalfe/element"
)

// Basis1D evaluates the rational basis on 1D line elements. Each rational
// shape function is the node's weighted underlying shape function
// normalized by the weighted sum over all nodes, so the set is a
// partition of unity and reduces to the underlying basis when every
// weight is 1. Derivatives follow from the quotient rule.
//
// Basis1D holds no state between calls and is safe for concurrent use
// when its delegate and the elements are.
type Basis1D struct {
	delegate Delegate
}

func NewBasis1D(d Delegate) *Basis1D {
	return &Basis1D{delegate: d}
}

func (rb *Basis1D) Value(e element.Element, order, i int, p element.Point, addPLevel bool) (float64, error) {
	eff, w, err := prep(rb.delegate, e, order, i, addPLevel)
	if err != nil {
		return 0, err
	}
	var (
		shapeI, sum float64
	)
	for sf := range w {
		ws := w[sf] * rb.delegate.Value(eff, e, sf, p)
		sum += ws
		if sf == i {
			shapeI = ws
		}
	}
	if sum == 0 {
		return 0, fmt.Errorf("%w: at xi = %v", ErrZeroDenominator, p[element.Xi])
	}
	return shapeI / sum, nil
}

func (rb *Basis1D) FirstDeriv(e element.Element, order, i, dir int, p element.Point, addPLevel bool) (float64, error) {
	// 1D shape functions depend on xi only
	if dir != element.Xi {
		return 0, fmt.Errorf("%w: direction %d in 1D", ErrInvalidDirection, dir)
	}
	eff, w, err := prep(rb.delegate, e, order, i, addPLevel)
	if err != nil {
		return 0, err
	}
	var (
		shapeI, sum    float64
		gradI, gradSum float64
	)
	for sf := range w {
		ws := w[sf] * rb.delegate.Value(eff, e, sf, p)
		wg := w[sf] * rb.delegate.FirstDeriv(eff, e, sf, dir, p)
		sum += ws
		gradSum += wg
		if sf == i {
			shapeI = ws
			gradI = wg
		}
	}
	if sum == 0 {
		return 0, fmt.Errorf("%w: at xi = %v", ErrZeroDenominator, p[element.Xi])
	}
	return (sum*gradI - shapeI*gradSum) / (sum * sum), nil
}

func (rb *Basis1D) SecondDeriv(e element.Element, order, i int, d2 Deriv2, p element.Point, addPLevel bool) (float64, error) {
	sd, ok := rb.delegate.(SecondDerivDelegate)
	if !ok {
		return 0, ErrNoSecondDerivs
	}
	// Only d^2/dxi^2 exists in 1D
	if d2 != XiXi {
		return 0, fmt.Errorf("%w: mixed direction %v in 1D", ErrInvalidDirection, d2)
	}
	eff, w, err := prep(rb.delegate, e, order, i, addPLevel)
	if err != nil {
		return 0, err
	}
	var (
		shapeI, sum    float64
		gradI, gradSum float64
		hessI, hessSum float64
	)
	for sf := range w {
		ws := w[sf] * sd.Value(eff, e, sf, p)
		wg := w[sf] * sd.FirstDeriv(eff, e, sf, element.Xi, p)
		wh := w[sf] * sd.SecondDeriv(eff, e, sf, int(XiXi), p)
		sum += ws
		gradSum += wg
		hessSum += wh
		if sf == i {
			shapeI = ws
			gradI = wg
			hessI = wh
		}
	}
	if sum == 0 {
		return 0, fmt.Errorf("%w: at xi = %v", ErrZeroDenominator, p[element.Xi])
	}
	// Differentiating the first-derivative quotient a second time
	return (sum*sum*(sum*hessI-shapeI*hessSum) -
		(sum*gradI-shapeI*gradSum)*2*sum*gradSum) /
		(sum * sum * sum * sum), nil
}

// Kind-only variants: without a concrete element there are no nodal
// weights, so these always fail with ErrMissingGeometry.

func (rb *Basis1D) RefValue(k element.Kind, order, i int, p element.Point) (float64, error) {
	return 0, fmt.Errorf("%w: got element kind %v", ErrMissingGeometry, k)
}

func (rb *Basis1D) RefFirstDeriv(k element.Kind, order, i, dir int, p element.Point) (float64, error) {
	return 0, fmt.Errorf("%w: got element kind %v", ErrMissingGeometry, k)
}

func (rb *Basis1D) RefSecondDeriv(k element.Kind, order, i int, d2 Deriv2, p element.Point) (float64, error) {
	return 0, fmt.Errorf("%w: got element kind %v", ErrMissingGeometry, k)
}
