package filter

import (
	"fmt"
	"math"

	"github.com/klawthorne/edgecv/array"
)

// GaussianKernel builds a size x size Gaussian kernel with unit weight
// at distance scale 1 (w = exp(-d^2/2) around the center), normalized to
// sum to 1. The size must be odd and positive.
func GaussianKernel(size int) (*array.Dense, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: kernel size %d must be odd and positive",
			array.ErrShapeMismatch, size)
	}
	k := array.New(size, size, 1, 0)
	data := k.Data()
	center := size / 2
	var sum float64
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			di := float64(i - center)
			dj := float64(j - center)
			w := math.Exp(-(di*di + dj*dj) / 2)
			data[i*size+j] = w
			sum += w
		}
	}
	for i := range data {
		data[i] /= sum
	}
	return k, nil
}

// MeanKernel builds a size x size box kernel normalized to sum to 1.
// The size must be odd and positive.
func MeanKernel(size int) (*array.Dense, error) {
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("%w: kernel size %d must be odd and positive",
			array.ErrShapeMismatch, size)
	}
	return array.New(size, size, 1, 1/float64(size*size)), nil
}

// GaussianSmooth convolves src with a GaussianKernel of the given size.
func GaussianSmooth(src *array.Dense, size int, border Border) (*array.Dense, error) {
	k, err := GaussianKernel(size)
	if err != nil {
		return nil, err
	}
	return Convolve(src, k, border)
}

// MeanSmooth convolves src with a MeanKernel of the given size.
func MeanSmooth(src *array.Dense, size int, border Border) (*array.Dense, error) {
	k, err := MeanKernel(size)
	if err != nil {
		return nil, err
	}
	return Convolve(src, k, border)
}
