package filter

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/klawthorne/edgecv/array"
	"github.com/klawthorne/edgecv/color"
)

// cannyKernel is the fixed 5x5 Gaussian (sigma ~1.4, sum 159) applied
// before the gradient stage to knock down noise.
func cannyKernel() *array.Dense {
	buf := []float64{
		2, 4, 5, 4, 2,
		4, 9, 12, 9, 4,
		5, 12, 15, 12, 5,
		4, 9, 12, 9, 4,
		2, 4, 5, 4, 2,
	}
	for i := range buf {
		buf[i] /= 159
	}
	k, _ := array.FromBuffer(5, 5, 1, buf)
	return k
}

// CannyEdge runs the full edge detection pipeline on an image and
// returns a binary edge map (1 at edges, 0 elsewhere) of the same
// rows/cols as the input.
//
// The stages are: grayscale conversion (3-channel input only), 5x5
// Gaussian smoothing, Sobel gradient, non-maximum suppression and
// hysteresis thresholding. highRatio and lowRatio are fractions of the
// maximum observed gradient magnitude; the derived absolute thresholds
// must satisfy 0 <= low < high, so 0 <= lowRatio < highRatio is
// required. The border policy is used by the smoothing and gradient
// convolutions.
//
// Inputs must be 1- or 3-channel; anything else fails with
// array.ErrShapeMismatch. A perfectly flat image has no gradient to
// threshold against and yields an all-zero map. Errors from any stage
// propagate unchanged.
func CannyEdge(img *array.Dense, highRatio, lowRatio float64, border Border) (*array.Dense, error) {
	if lowRatio < 0 || lowRatio >= highRatio {
		return nil, fmt.Errorf("%w: low ratio %v, high ratio %v (want 0 <= low < high)",
			ErrInvalidThreshold, lowRatio, highRatio)
	}

	gray := img
	switch img.Channels() {
	case 1:
	case 3:
		var err error
		gray, err = color.RGBToGray(img)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: input has %d channels, want 1 or 3",
			array.ErrShapeMismatch, img.Channels())
	}

	smoothed, err := Convolve(gray, cannyKernel(), border)
	if err != nil {
		return nil, err
	}
	field, err := Gradient(smoothed, border)
	if err != nil {
		return nil, err
	}
	thinned := Suppress(field)

	maxMag := floats.Max(field.Magnitude.Data())
	if maxMag == 0 {
		return array.New(img.Rows(), img.Cols(), 1, 0), nil
	}
	return Hysteresis(thinned, lowRatio*maxMag, highRatio*maxMag)
}
