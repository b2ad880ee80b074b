package rational

import (
	"fmt"

	"github.com/notargets/rationalfe/element"
)

// prep runs the shared entry validation for every engine operation: the
// element must be concrete, the effective order (nominal plus optional
// p-level increment) must give a shape count matching the element's node
// count, and the shape index must be in range. It returns the effective
// order and the gathered per-node weights.
func prep(d Delegate, e element.Element, order, i int, addPLevel bool) (eff int, w []float64, err error) {
	if e == nil {
		return 0, nil, fmt.Errorf("%w: nil element", ErrMissingGeometry)
	}
	eff = order
	if addPLevel {
		eff += e.PLevel()
	}
	var (
		nSF    = d.NShapeFunctions(eff, e)
		nNodes = e.NodeCount()
	)
	if nSF != nNodes {
		return 0, nil, fmt.Errorf("%w: order %d gives %d shape functions for %d nodes",
			ErrShapeCountMismatch, eff, nSF, nNodes)
	}
	if i < 0 || i >= nSF {
		return 0, nil, fmt.Errorf("shape index %d out of range [0,%d)", i, nSF)
	}
	w = make([]float64, nNodes)
	for n := 0; n < nNodes; n++ {
		w[n] = e.Weight(n)
	}
	return
}
