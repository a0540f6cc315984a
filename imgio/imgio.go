// Package imgio converts between image files and array.Dense sample
// buffers. It is the pipeline's I/O boundary: decoding maps 8-bit
// samples into [0,1] floats, encoding clamps and maps back with
// round-to-nearest. The numeric core itself never touches files or
// performs normalization.
//
// Format support (PNG, JPEG, GIF, TIFF, BMP) and extension-based format
// selection come from github.com/disintegration/imaging.
package imgio

import (
	"fmt"
	"image"
	stdcolor "image/color"

	"github.com/disintegration/imaging"

	"github.com/klawthorne/edgecv/array"
)

// Load decodes the image file at path into a 3-channel array with
// samples in [0,1].
func Load(path string) (*array.Dense, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return FromImage(img), nil
}

// Save encodes a 1- or 3-channel array to the file at path, with the
// format chosen by the file extension. Samples are clamped to [0,1] and
// quantized to 8 bits; arrays with any other channel count fail with
// array.ErrShapeMismatch.
func Save(path string, src *array.Dense) error {
	img, err := ToImage(src)
	if err != nil {
		return err
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// FromImage converts a decoded image into a 3-channel array with
// samples in [0,1]. The alpha channel, if any, is dropped.
func FromImage(img image.Image) *array.Dense {
	n := imaging.Clone(img)
	rows := n.Bounds().Dy()
	cols := n.Bounds().Dx()
	out := array.New(rows, cols, 3, 0)
	od := out.Data()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			s := n.PixOffset(x, y)
			p := 3 * (y*cols + x)
			od[p] = float64(n.Pix[s]) / 255
			od[p+1] = float64(n.Pix[s+1]) / 255
			od[p+2] = float64(n.Pix[s+2]) / 255
		}
	}
	return out
}

// ToImage converts a 1-channel array to a grayscale image or a
// 3-channel array to an NRGBA image. Samples are clamped to [0,1] and
// scaled to 8 bits with round-to-nearest.
func ToImage(src *array.Dense) (image.Image, error) {
	rows, cols, channels := src.Shape()
	sd := src.Data()

	switch channels {
	case 1:
		img := image.NewGray(image.Rect(0, 0, cols, rows))
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				img.SetGray(x, y, stdcolor.Gray{Y: quantize(sd[y*cols+x])})
			}
		}
		return img, nil
	case 3:
		img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				p := 3 * (y*cols + x)
				img.SetNRGBA(x, y, stdcolor.NRGBA{
					R: quantize(sd[p]),
					G: quantize(sd[p+1]),
					B: quantize(sd[p+2]),
					A: 255,
				})
			}
		}
		return img, nil
	}
	return nil, fmt.Errorf("%w: array has %d channels, want 1 or 3",
		array.ErrShapeMismatch, channels)
}

// quantize maps a [0,1] sample to 8 bits, clamping out-of-range values.
func quantize(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
