package rational

import (
	"fmt"

	"github.com/notargets/rationalfe/element"
)

// Basis3D evaluates the rational basis on 3D brick elements. Same algebra
// as Basis1D with three first-derivative directions and six distinct
// mixed second partials.
type Basis3D struct {
	delegate Delegate
}

func NewBasis3D(d Delegate) *Basis3D {
	return &Basis3D{delegate: d}
}

func (rb *Basis3D) Value(e element.Element, order, i int, p element.Point, addPLevel bool) (float64, error) {
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
		return 0, fmt.Errorf("%w: at point %v", ErrZeroDenominator, p)
	}
	return shapeI / sum, nil
}

func (rb *Basis3D) FirstDeriv(e element.Element, order, i, dir int, p element.Point, addPLevel bool) (float64, error) {
	if dir != element.Xi && dir != element.Eta && dir != element.Zeta {
		return 0, fmt.Errorf("%w: direction %d in 3D", ErrInvalidDirection, dir)
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
		return 0, fmt.Errorf("%w: at point %v", ErrZeroDenominator, p)
	}
	return (sum*gradI - shapeI*gradSum) / (sum * sum), nil
}

// SecondDeriv evaluates the mixed second partial selected by d2. For the
// ratio n/d of weighted sums the mixed partial over axes (a,b) is
//
//	(d*n_ab - n_a*d_b - n*d_ab - n_b*d_a + 2*d_a*n*d_b/d) / d^2
//
// which is symmetric in (a,b), so the six Deriv2 entries cover the full
// Hessian.
func (rb *Basis3D) SecondDeriv(e element.Element, order, i int, d2 Deriv2, p element.Point, addPLevel bool) (float64, error) {
	sd, ok := rb.delegate.(SecondDerivDelegate)
	if !ok {
		return 0, ErrNoSecondDerivs
	}
	j1, j2, valid := d2.Axes()
	if !valid {
		return 0, fmt.Errorf("%w: mixed direction %d in 3D", ErrInvalidDirection, int(d2))
	}
	eff, w, err := prep(rb.delegate, e, order, i, addPLevel)
	if err != nil {
		return 0, err
	}
	var (
		shapeI, sum      float64
		gradaI, gradaSum float64
		gradbI, gradbSum float64
		hessI, hessSum   float64
	)
	for sf := range w {
		ws := w[sf] * sd.Value(eff, e, sf, p)
		ga := w[sf] * sd.FirstDeriv(eff, e, sf, j1, p)
		gb := ga
		if j1 != j2 {
			gb = w[sf] * sd.FirstDeriv(eff, e, sf, j2, p)
		}
		wh := w[sf] * sd.SecondDeriv(eff, e, sf, int(d2), p)
		sum += ws
		gradaSum += ga
		gradbSum += gb
		hessSum += wh
		if sf == i {
			shapeI = ws
			gradaI = ga
			gradbI = gb
			hessI = wh
		}
	}
	if sum == 0 {
		return 0, fmt.Errorf("%w: at point %v", ErrZeroDenominator, p)
	}
	return (sum*hessI - gradaI*gradbSum - shapeI*hessSum - gradbI*gradaSum +
		2*gradaSum*shapeI*gradbSum/sum) / (sum * sum), nil
}

func (rb *Basis3D) RefValue(k element.Kind, order, i int, p element.Point) (float64, error) {
	return 0, fmt.Errorf("%w: got element kind %v", ErrMissingGeometry, k)
}

func (rb *Basis3D) RefFirstDeriv(k element.Kind, order, i, dir int, p element.Point) (float64, error) {
	return 0, fmt.Errorf("%w: got element kind %v", ErrMissingGeometry, k)
}

func (rb *Basis3D) RefSecondDeriv(k element.Kind, order, i int, d2 Deriv2, p element.Point) (float64, error) {
	return 0, fmt.Errorf("%w: got element kind %v", ErrMissingGeometry, k)
}
