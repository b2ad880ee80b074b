package element

import (
	"fmt"
	"math"
)

// Point is a location in an element's reference (parametric) domain,
// [-1,1] per axis. 1D elements use only the Xi component.
type Point [3]float64

// Axis labels the parametric directions of the reference domain
const (
	Xi = iota
	Eta
	Zeta
)

// Element is the geometry collaborator the rational basis engine reads:
// per-node rational weights plus the element's p-refinement level. The
// engine never writes to an Element, so implementations are free to share
// one instance across goroutines.
type Element interface {
	NodeCount() int
	Weight(n int) float64
	PLevel() int
}

// Kind describes an element's topology without any concrete geometry
// attached. A Kind carries no nodal weights, so the rational basis is
// undefined on it; the engine's kind-only methods exist to reject such
// calls explicitly.
type Kind uint8

const (
	KindLine Kind = iota
	KindBrick
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindBrick:
		return "Brick"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func validateWeights(w []float64) error {
	if len(w) == 0 {
		return fmt.Errorf("element requires at least one node weight")
	}
	allZero := true
	for n, val := range w {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("node %d weight is not finite: %v", n, val)
		}
		if val != 0 {
			allZero = false
		}
	}
	if allZero {
		return fmt.Errorf("all %d node weights are zero, weighted sum would vanish everywhere", len(w))
	}
	return nil
}

// Line is a 1D reference element on xi in [-1,1] with nodes ordered along
// xi, one rational weight per node.
type Line struct {
	weights []float64
	pLevel  int
}

func NewLine(weights []float64, pLevel int) (e *Line, err error) {
	if err = validateWeights(weights); err != nil {
		return nil, fmt.Errorf("line element: %w", err)
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	e = &Line{
		weights: w,
		pLevel:  pLevel,
	}
	return
}

func (e *Line) NodeCount() int       { return len(e.weights) }
func (e *Line) Weight(n int) float64 { return e.weights[n] }
func (e *Line) PLevel() int          { return e.pLevel }

// Brick is a 3D reference element on [-1,1]^3 with m^3 nodes in
// lexicographic order: node index n = i + m*(j + m*k) for node (i,j,k)
// along (xi,eta,zeta).
type Brick struct {
	weights []float64
	edge    int // nodes per edge, m
	pLevel  int
}

func NewBrick(weights []float64, pLevel int) (e *Brick, err error) {
	if err = validateWeights(weights); err != nil {
		return nil, fmt.Errorf("brick element: %w", err)
	}
	m := int(math.Round(math.Cbrt(float64(len(weights)))))
	if m*m*m != len(weights) {
		return nil, fmt.Errorf("brick element: %d weights is not a cube", len(weights))
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	e = &Brick{
		weights: w,
		edge:    m,
		pLevel:  pLevel,
	}
	return
}

func (e *Brick) NodeCount() int       { return len(e.weights) }
func (e *Brick) Weight(n int) float64 { return e.weights[n] }
func (e *Brick) PLevel() int          { return e.pLevel }

// EdgeNodeCount is the node count along one edge, m for an m^3 brick
func (e *Brick) EdgeNodeCount() int { return e.edge }
