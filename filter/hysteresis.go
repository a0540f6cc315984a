package filter

import (
	"fmt"

	"github.com/klawthorne/edgecv/array"
)

// Hysteresis classifies a thinned gradient-magnitude array into a binary
// edge map using double thresholding, requiring 0 <= low < high.
//
// Pixels with magnitude >= high are strong and always edges. Pixels in
// [low, high) are weak and become edges only when 8-connected, directly
// or through other weak pixels, to a strong pixel. Everything below low
// is suppressed and never crossed during linking.
//
// Linking runs as a breadth-first traversal over an explicit frontier
// queue seeded with every strong pixel, marking a visited bitmap so each
// pixel is expanded at most once; cost is linear in the pixel count.
// The result holds 1 at edge pixels and 0 elsewhere.
func Hysteresis(thinned *array.Dense, low, high float64) (*array.Dense, error) {
	if thinned.Channels() != 1 {
		return nil, fmt.Errorf("%w: hysteresis input has %d channels, want 1",
			array.ErrShapeMismatch, thinned.Channels())
	}
	if low < 0 || low >= high {
		return nil, fmt.Errorf("%w: low %v, high %v (want 0 <= low < high)",
			ErrInvalidThreshold, low, high)
	}

	rows, cols := thinned.Rows(), thinned.Cols()
	data := thinned.Data()
	visited := make([]bool, rows*cols)
	queue := make([]int, 0, rows*cols/4)

	for p, v := range data {
		if v >= high {
			visited[p] = true
			queue = append(queue, p)
		}
	}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		i, j := p/cols, p%cols
		for di := -1; di <= 1; di++ {
			for dj := -1; dj <= 1; dj++ {
				ni, nj := i+di, j+dj
				if ni < 0 || ni >= rows || nj < 0 || nj >= cols {
					continue
				}
				n := ni*cols + nj
				if !visited[n] && data[n] >= low {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
	}

	out := array.New(rows, cols, 1, 0)
	od := out.Data()
	for p, ok := range visited {
		if ok {
			od[p] = 1
		}
	}
	return out, nil
}
