package array

import "errors"

// Sentinel error kinds shared by the pipeline packages. Callers match
// them with errors.Is; the concrete messages carry call-site context.
var (
	// ErrShapeMismatch reports an array, kernel or channel-count
	// incompatibility detected before any work is done.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIndexOutOfBounds reports a direct element access outside
	// [0,rows) x [0,cols) x [0,channels).
	ErrIndexOutOfBounds = errors.New("index out of bounds")
)
