package filter

import "fmt"

// Border selects how out-of-bounds samples are resolved during
// filtering. It is applied independently to the row and column axes.
type Border int

const (
	// BorderZero treats any out-of-range sample as 0.
	BorderZero Border = iota

	// BorderReplicate clamps out-of-range indices to the nearest edge:
	// aaaa|abcdefgh|hhhh.
	BorderReplicate

	// BorderReflect mirrors indices across the boundary, duplicating the
	// edge sample: index -1 maps to 0, -2 to 1, extent to extent-1.
	// Only a single mirror pass is supported; accesses that would
	// reflect past the far edge fail with ErrKernelTooLarge.
	BorderReflect
)

// String implements fmt.Stringer.
func (b Border) String() string {
	switch b {
	case BorderZero:
		return "zero"
	case BorderReplicate:
		return "replicate"
	case BorderReflect:
		return "reflect"
	}
	return fmt.Sprintf("border(%d)", int(b))
}

// Resolve maps a possibly out-of-range index onto the valid range
// [0, extent). It returns the resolved index, or zero=true when the
// policy dictates a zero-valued sample instead of a source read.
func (b Border) Resolve(idx, extent int) (resolved int, zero bool, err error) {
	if idx >= 0 && idx < extent {
		return idx, false, nil
	}
	switch b {
	case BorderZero:
		return 0, true, nil
	case BorderReplicate:
		if idx < 0 {
			return 0, false, nil
		}
		return extent - 1, false, nil
	case BorderReflect:
		if idx < 0 {
			idx = -idx - 1
		} else {
			idx = 2*extent - 1 - idx
		}
		if idx < 0 || idx >= extent {
			return 0, false, fmt.Errorf("%w: reflected index escapes extent %d",
				ErrKernelTooLarge, extent)
		}
		return idx, false, nil
	}
	return 0, false, fmt.Errorf("unknown border policy %d", int(b))
}

// borderMap precomputes the resolution of every source index a kernel of
// the given radius can request along one axis. Entry i corresponds to
// index i-radius; -1 marks a zero-fill. Hoisting this out of the pixel
// loop keeps the hot path branch-predictable.
func borderMap(b Border, extent, radius int) ([]int, error) {
	m := make([]int, extent+2*radius)
	for p := -radius; p < extent+radius; p++ {
		resolved, zero, err := b.Resolve(p, extent)
		if err != nil {
			return nil, err
		}
		if zero {
			m[p+radius] = -1
		} else {
			m[p+radius] = resolved
		}
	}
	return m, nil
}
