package filter

import (
	"fmt"
	"math"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/klawthorne/edgecv/array"
)

// GradientField pairs the gradient magnitude and direction of an image.
// Both arrays share the source's shape. Direction is in radians in
// (-pi, pi] and is only meaningful where the magnitude is nonzero.
type GradientField struct {
	Magnitude *array.Dense
	Direction *array.Dense
}

// Gradient computes the Sobel gradient field of a single-channel array:
// magnitude = sqrt(gx^2+gy^2), direction = atan2(gy, gx).
func Gradient(src *array.Dense, border Border) (*GradientField, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: gradient input has %d channels, want 1",
			array.ErrShapeMismatch, src.Channels())
	}
	gx, err := Convolve(src, SobelKernel(AxisX), border)
	if err != nil {
		return nil, err
	}
	gy, err := Convolve(src, SobelKernel(AxisY), border)
	if err != nil {
		return nil, err
	}

	rows, cols := src.Rows(), src.Cols()
	mag := array.New(rows, cols, 1, 0)
	dir := array.New(rows, cols, 1, 0)
	xd, yd := gx.Data(), gy.Data()
	md, dd := mag.Data(), dir.Data()

	parallel.Line(rows, func(start, end int) {
		for i := start * cols; i < end*cols; i++ {
			md[i] = math.Hypot(xd[i], yd[i])
			dd[i] = math.Atan2(yd[i], xd[i])
		}
	})

	return &GradientField{Magnitude: mag, Direction: dir}, nil
}
