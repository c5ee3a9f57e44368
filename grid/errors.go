package grid

import "errors"

// Sentinel errors returned by the grid package.
var (
	// ErrOutOfBounds indicates a coordinate outside [0,FieldResR)x[0,FieldResC).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrBadDims indicates grid dimensions did not match the package's
	// compile-time FieldResR/FieldResC constants.
	ErrBadDims = errors.New("grid: dimensions must equal FieldResR x FieldResC")
)
