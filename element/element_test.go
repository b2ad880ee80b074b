package element

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLine(t *testing.T) {
	e, err := NewLine([]float64{1, 2, 1}, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3, e.NodeCount())
	assert.Equal(t, 2., e.Weight(1))
	assert.Equal(t, 1, e.PLevel())

	_, err = NewLine(nil, 0)
	assert.Error(t, err)
	_, err = NewLine([]float64{1, math.NaN()}, 0)
	assert.Error(t, err)
	_, err = NewLine([]float64{1, math.Inf(1)}, 0)
	assert.Error(t, err)
	_, err = NewLine([]float64{0, 0, 0}, 0)
	assert.Error(t, err)

	// A single zero weight is legal, the node just contributes nothing
	_, err = NewLine([]float64{0, 1}, 0)
	assert.NoError(t, err)
}

func TestNewBrick(t *testing.T) {
	w := make([]float64, 27)
	for i := range w {
		w[i] = 1
	}
	e, err := NewBrick(w, 0)
	assert.NoError(t, err)
	assert.Equal(t, 27, e.NodeCount())
	assert.Equal(t, 3, e.EdgeNodeCount())

	// Node count must be a perfect cube
	_, err = NewBrick(w[:12], 0)
	assert.Error(t, err)
}

func TestElementIsolation(t *testing.T) {
	// The element copies its weights, later caller mutation does not
	// leak in
	w := []float64{1, 2}
	e, err := NewLine(w, 0)
	assert.NoError(t, err)
	w[1] = 99
	assert.Equal(t, 2., e.Weight(1))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Line", KindLine.String())
	assert.Equal(t, "Brick", KindBrick.String())
}
