package color

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/klawthorne/edgecv/array"
)

// HistEq applies histogram equalization to a single-channel array whose
// samples lie in [0,1], spreading the cumulative intensity distribution
// across the full range. Samples are binned into 256 levels; the output
// sample is the normalized CDF value of the input's bin.
//
// Inputs with more than one channel fail with array.ErrShapeMismatch;
// samples outside [0,1] are rejected with an error, since the binning
// has no meaning for them.
func HistEq(src *array.Dense) (*array.Dense, error) {
	if src.Channels() != 1 {
		return nil, fmt.Errorf("%w: input has %d channels, want 1",
			array.ErrShapeMismatch, src.Channels())
	}
	sd := src.Data()
	if floats.Min(sd) < 0 || floats.Max(sd) > 1 {
		return nil, fmt.Errorf("histeq: samples outside [0,1] (min %v, max %v)",
			floats.Min(sd), floats.Max(sd))
	}

	cdf := make([]float64, 256)
	for _, v := range sd {
		cdf[level(v)]++
	}
	for i := 1; i < len(cdf); i++ {
		cdf[i] += cdf[i-1]
	}
	floats.Scale(1/cdf[255], cdf)

	out := array.New(src.Rows(), src.Cols(), 1, 0)
	od := out.Data()
	for p, v := range sd {
		od[p] = cdf[level(v)]
	}
	return out, nil
}

// level quantizes a [0,1] sample to its 8-bit bin, rounding to nearest.
func level(v float64) int {
	return int(v*255 + 0.5)
}
