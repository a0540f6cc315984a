package filter

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"github.com/klawthorne/edgecv/array"
)

// OrientationImage renders a gradient field as a 3-channel false-color
// array for inspection: the gradient direction maps to hue (0 degrees at
// -pi, wrapping once around the circle) and the magnitude, normalized by
// its maximum, maps to value. Flat regions come out black.
//
// Samples are in [0,1], ready for imgio.Save.
func OrientationImage(field *GradientField) *array.Dense {
	mag, dir := field.Magnitude, field.Direction
	rows, cols := mag.Rows(), mag.Cols()
	out := array.New(rows, cols, 3, 0)

	maxMag := floats.Max(mag.Data())
	if maxMag == 0 {
		return out
	}

	md, dd, od := mag.Data(), dir.Data(), out.Data()
	parallel.Line(rows, func(start, end int) {
		for p := start * cols; p < end*cols; p++ {
			hue := (dd[p] + math.Pi) / (2 * math.Pi) * 360
			if hue >= 360 {
				hue = 0
			}
			c := colorful.Hsv(hue, 1, md[p]/maxMag)
			od[3*p] = c.R
			od[3*p+1] = c.G
			od[3*p+2] = c.B
		}
	})

	return out
}
