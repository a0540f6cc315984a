package filter

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/klawthorne/edgecv/array"
)

// Suppress thins a gradient-magnitude ridge to its local maxima along
// the gradient direction (non-maximum suppression).
//
// The direction at each pixel is quantized to the nearest of the four
// principal axes (0, 45, 90, 135 degrees, modulo sign) and the magnitude
// is compared against the two discrete neighbors on that axis. This is
// the exact-axis policy: no interpolation between the bracketing
// neighbors is performed. A pixel survives when its magnitude is at
// least the trailing neighbor's and strictly greater than the leading
// neighbor's (leading = larger row, or larger column on the horizontal
// axis); on a flat two-pixel plateau the leading pixel survives, which
// keeps maxima one pixel wide.
//
// Border pixels have no full neighbor set and are always 0; border
// policies are never consulted here.
func Suppress(field *GradientField) *array.Dense {
	mag := field.Magnitude
	rows, cols := mag.Rows(), mag.Cols()
	out := array.New(rows, cols, 1, 0)
	md := mag.Data()
	dd := field.Direction.Data()
	od := out.Data()

	if rows < 3 || cols < 3 {
		return out
	}

	parallel.Line(rows-2, func(start, end int) {
		for i := start + 1; i < end+1; i++ {
			for j := 1; j < cols-1; j++ {
				p := i*cols + j
				v := md[p]
				angle := dd[p]

				// Trailing and leading neighbors along the quantized
				// gradient axis.
				var n1, n2 float64
				switch {
				case angle >= -math.Pi/8 && angle < math.Pi/8,
					angle >= 7*math.Pi/8, angle < -7*math.Pi/8:
					// Horizontal gradient: compare left/right.
					n1, n2 = md[p-1], md[p+1]
				case angle >= math.Pi/8 && angle < 3*math.Pi/8,
					angle >= -7*math.Pi/8 && angle < -5*math.Pi/8:
					// 45 degrees: up-right / down-left.
					n1, n2 = md[p-cols+1], md[p+cols-1]
				case angle >= 3*math.Pi/8 && angle < 5*math.Pi/8,
					angle >= -5*math.Pi/8 && angle < -3*math.Pi/8:
					// Vertical gradient: compare up/down.
					n1, n2 = md[p-cols], md[p+cols]
				default:
					// 135 degrees: up-left / down-right.
					n1, n2 = md[p-cols-1], md[p+cols+1]
				}

				if v >= n1 && v > n2 {
					od[p] = v
				}
			}
		}
	})

	return out
}
