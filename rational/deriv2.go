package rational

import (
	"fmt"

	"github.com/notargets/rationalfe/element"
)

// Deriv2 selects one of the six distinct entries of the symmetric 3x3
// Hessian in the reference domain. The linear values match the
// mixed-direction index convention of SecondDerivDelegate.
type Deriv2 uint8

const (
	XiXi Deriv2 = iota // d^2/dxi^2
	XiEta
	EtaEta
	XiZeta
	EtaZeta
	ZetaZeta
)

// Axes decodes the entry into its ordered axis pair (j1 <= j2). ok is
// false for values past ZetaZeta.
func (d Deriv2) Axes() (j1, j2 int, ok bool) {
	switch d {
	case XiXi:
		return element.Xi, element.Xi, true
	case XiEta:
		return element.Xi, element.Eta, true
	case EtaEta:
		return element.Eta, element.Eta, true
	case XiZeta:
		return element.Xi, element.Zeta, true
	case EtaZeta:
		return element.Eta, element.Zeta, true
	case ZetaZeta:
		return element.Zeta, element.Zeta, true
	}
	return 0, 0, false
}

func (d Deriv2) String() string {
	switch d {
	case XiXi:
		return "XiXi"
	case XiEta:
		return "XiEta"
	case EtaEta:
		return "EtaEta"
	case XiZeta:
		return "XiZeta"
	case EtaZeta:
		return "EtaZeta"
	case ZetaZeta:
		return "ZetaZeta"
	}
	return fmt.Sprintf("Deriv2(%d)", uint8(d))
}
