package core

import "github.com/pkg/errors"

// Error kinds reported by the grid and the controller. Callers match them with
// errors.Is; the returned errors carry the offending values as context.
var (
	// ErrInvalidDimensions reports a non-positive column or row count.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrOutOfBounds reports a coordinate outside the current grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrIndexOutOfBounds reports a row-major index outside the current grid.
	ErrIndexOutOfBounds = errors.Wrap(ErrOutOfBounds, "index")
	// ErrInvalidConfiguration reports an interval, radius or cell size the
	// controller refuses to apply.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
