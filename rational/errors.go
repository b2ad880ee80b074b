package rational

import "errors"

// The engine surfaces precondition and configuration failures as wrapped
// sentinel errors so the assembly layer hosting it can distinguish them.
// None are recoverable inside the engine itself.
var (
	// ErrMissingGeometry - a rational basis needs nodal weights, which only
	// exist on a concrete element, never on a bare element kind
	ErrMissingGeometry = errors.New("rational bases require the real element to query nodal weighting")

	// ErrInvalidDirection - derivative direction or mixed-direction index
	// outside the valid range for the parametric dimension
	ErrInvalidDirection = errors.New("invalid derivative direction index")

	// ErrShapeCountMismatch - the underlying basis disagrees with the
	// element on the number of shape functions, the element and the
	// polynomial order are inconsistent
	ErrShapeCountMismatch = errors.New("shape function count does not match element node count")

	// ErrZeroDenominator - the weighted basis sum vanished at the query
	// point, the rational basis is undefined there
	ErrZeroDenominator = errors.New("weighted shape function sum is zero")

	// ErrNoSecondDerivs - the configured delegate does not provide second
	// derivatives
	ErrNoSecondDerivs = errors.New("underlying basis does not support second derivatives")
)
