package filter

import (
	"fmt"
	"math"

	"github.com/klawthorne/edgecv/array"
)

// Axis selects the derivative direction of a Sobel operator.
type Axis int

const (
	// AxisX is the horizontal derivative (responds to vertical edges).
	AxisX Axis = iota

	// AxisY is the vertical derivative (responds to horizontal edges).
	AxisY
)

// Norms accepted by SobelNorm.
const (
	NormL1  = 1  // |gx| + |gy|
	NormL2  = 2  // sqrt(gx^2 + gy^2)
	NormInf = -1 // max(|gx|, |gy|)
)

// SobelKernel returns the classical 3x3 Sobel kernel for the given axis:
//
//	X: -1  0  1        Y: -1 -2 -1
//	   -2  0  2            0  0  0
//	   -1  0  1            1  2  1
func SobelKernel(axis Axis) *array.Dense {
	var buf []float64
	if axis == AxisX {
		buf = []float64{
			-1, 0, 1,
			-2, 0, 2,
			-1, 0, 1,
		}
	} else {
		buf = []float64{
			-1, -2, -1,
			0, 0, 0,
			1, 2, 1,
		}
	}
	k, _ := array.FromBuffer(3, 3, 1, buf)
	return k
}

// Sobel computes the first-order derivative of a single-channel array
// along the given axis.
func Sobel(src *array.Dense, axis Axis, border Border) (*array.Dense, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: sobel input has %d channels, want 1",
			array.ErrShapeMismatch, src.Channels())
	}
	return Convolve(src, SobelKernel(axis), border)
}

// SobelNorm combines the two Sobel derivatives of a single-channel array
// into a single gradient-strength array under the given norm (NormL1,
// NormL2 or NormInf). It is a convenient way to get a raw edge response
// without running the full Canny pipeline.
func SobelNorm(src *array.Dense, norm int, border Border) (*array.Dense, error) {
	gx, err := Sobel(src, AxisX, border)
	if err != nil {
		return nil, err
	}
	gy, err := Sobel(src, AxisY, border)
	if err != nil {
		return nil, err
	}

	out := array.New(src.Rows(), src.Cols(), 1, 0)
	xd, yd, od := gx.Data(), gy.Data(), out.Data()
	switch norm {
	case NormL2:
		for i := range od {
			od[i] = math.Hypot(xd[i], yd[i])
		}
	case NormL1:
		for i := range od {
			od[i] = math.Abs(xd[i]) + math.Abs(yd[i])
		}
	case NormInf:
		for i := range od {
			od[i] = math.Max(math.Abs(xd[i]), math.Abs(yd[i]))
		}
	default:
		return nil, fmt.Errorf("unsupported norm %d (want 1, 2 or -1)", norm)
	}
	return out, nil
}
