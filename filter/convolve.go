package filter

import (
	"fmt"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/klawthorne/edgecv/array"
)

// Convolve applies a 2D kernel to src and returns a result of identical
// shape. The kernel is applied in its given orientation (correlation, no
// flip; see the package documentation). Out-of-bounds source samples are
// resolved by border.
//
// The kernel must be single-channel with odd extents in both dimensions;
// even extents have no center and fail with array.ErrShapeMismatch.
// Multi-channel sources are convolved per channel independently.
//
// Rows of the output are computed in parallel; each output sample
// depends only on the fully-formed input, so no synchronization is
// needed.
func Convolve(src, kernel *array.Dense, border Border) (*array.Dense, error) {
	if kernel.Channels() != 1 {
		return nil, fmt.Errorf("%w: kernel has %d channels, want 1",
			array.ErrShapeMismatch, kernel.Channels())
	}
	kh, kw := kernel.Rows(), kernel.Cols()
	if kh%2 == 0 || kw%2 == 0 {
		return nil, fmt.Errorf("%w: kernel extents %dx%d must be odd",
			array.ErrShapeMismatch, kh, kw)
	}

	rows, cols, channels := src.Shape()
	rowMap, err := borderMap(border, rows, kh/2)
	if err != nil {
		return nil, err
	}
	colMap, err := borderMap(border, cols, kw/2)
	if err != nil {
		return nil, err
	}

	out := array.New(rows, cols, channels, 0)
	sdata := src.Data()
	kdata := kernel.Data()
	odata := out.Data()

	parallel.Line(rows, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < cols; j++ {
				for c := 0; c < channels; c++ {
					var sum float64
					for ki := 0; ki < kh; ki++ {
						si := rowMap[i+ki]
						if si < 0 {
							continue
						}
						srow := si * cols
						krow := ki * kw
						for kj := 0; kj < kw; kj++ {
							sj := colMap[j+kj]
							if sj < 0 {
								continue
							}
							sum += sdata[(srow+sj)*channels+c] * kdata[krow+kj]
						}
					}
					odata[(i*cols+j)*channels+c] = sum
				}
			}
		}
	})

	return out, nil
}
