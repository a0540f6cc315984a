package filter

import "errors"

var (
	// ErrKernelTooLarge reports a reflected border access that cannot be
	// resolved within a single mirror pass. Keep the kernel radius below
	// min(rows, cols) to stay clear of it.
	ErrKernelTooLarge = errors.New("kernel too large for array extent")

	// ErrInvalidThreshold reports hysteresis thresholds violating
	// 0 <= low < high.
	ErrInvalidThreshold = errors.New("invalid threshold")
)
