package color

import (
	"fmt"

	"github.com/klawthorne/edgecv/array"
)

// ITU-R BT.601 luminance weights.
const (
	weightR = 0.299
	weightG = 0.587
	weightB = 0.114
)

// RGBToGray reduces a 3-channel array to a single channel using the
// BT.601 luminance weighting 0.299*R + 0.587*G + 0.114*B. The input
// value domain carries through unchanged: feed it [0,1] samples and the
// output stays in [0,1]. Inputs without exactly 3 channels fail with
// array.ErrShapeMismatch.
func RGBToGray(src *array.Dense) (*array.Dense, error) {
	if src.Channels() != 3 {
		return nil, fmt.Errorf("%w: input has %d channels, want 3",
			array.ErrShapeMismatch, src.Channels())
	}

	rows, cols := src.Rows(), src.Cols()
	out := array.New(rows, cols, 1, 0)
	sd, od := src.Data(), out.Data()
	for p := range od {
		od[p] = weightR*sd[3*p] + weightG*sd[3*p+1] + weightB*sd[3*p+2]
	}
	return out, nil
}
