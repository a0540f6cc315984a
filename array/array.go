package array

import "fmt"

// Dense is a dense 2D sample array with an explicit channel count.
//
// The zero value is not usable; construct instances with New or
// FromBuffer. A Dense is not safe for concurrent mutation, but any
// number of goroutines may read it concurrently.
type Dense struct {
	rows     int
	cols     int
	channels int
	data     []float64
}

// New allocates a rows x cols array with the given channel count, every
// sample set to fill. All extents must be positive; New panics
// otherwise. Use FromBuffer when an error return is needed instead.
func New(rows, cols, channels int, fill float64) *Dense {
	if rows <= 0 || cols <= 0 || channels <= 0 {
		panic(fmt.Sprintf("array: non-positive dimensions %dx%dx%d", rows, cols, channels))
	}
	d := &Dense{
		rows:     rows,
		cols:     cols,
		channels: channels,
		data:     make([]float64, rows*cols*channels),
	}
	if fill != 0 {
		for i := range d.data {
			d.data[i] = fill
		}
	}
	return d
}

// FromBuffer wraps an existing row-major buffer as a Dense without
// copying. The buffer length must equal rows*cols*channels and all
// dimensions must be positive; otherwise FromBuffer fails with
// ErrShapeMismatch.
func FromBuffer(rows, cols, channels int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: non-positive dimensions %dx%dx%d",
			ErrShapeMismatch, rows, cols, channels)
	}
	if len(data) != rows*cols*channels {
		return nil, fmt.Errorf("%w: buffer length %d, want %d for %dx%dx%d",
			ErrShapeMismatch, len(data), rows*cols*channels, rows, cols, channels)
	}
	return &Dense{rows: rows, cols: cols, channels: channels, data: data}, nil
}

// Rows returns the number of rows.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d *Dense) Cols() int { return d.cols }

// Channels returns the number of channels per pixel.
func (d *Dense) Channels() int { return d.channels }

// Shape returns all three extents at once.
func (d *Dense) Shape() (rows, cols, channels int) {
	return d.rows, d.cols, d.channels
}

// SameShape reports whether d and o have identical extents.
func (d *Dense) SameShape(o *Dense) bool {
	return d.rows == o.rows && d.cols == o.cols && d.channels == o.channels
}

// Data returns the raw row-major sample buffer. The slice aliases the
// array's storage: writes through it are visible to every reader.
func (d *Dense) Data() []float64 { return d.data }

// Index returns the flat buffer offset of (row, col, channel) without
// bounds checking. It exists for bulk operations iterating over Data.
func (d *Dense) Index(row, col, channel int) int {
	return (row*d.cols+col)*d.channels + channel
}

// At reads the channel-0 sample at (row, col). It fails with
// ErrIndexOutOfBounds outside the array.
func (d *Dense) At(row, col int) (float64, error) {
	return d.AtChannel(row, col, 0)
}

// AtChannel reads the sample at (row, col, channel). It fails with
// ErrIndexOutOfBounds outside the array.
func (d *Dense) AtChannel(row, col, channel int) (float64, error) {
	if err := d.check(row, col, channel); err != nil {
		return 0, err
	}
	return d.data[d.Index(row, col, channel)], nil
}

// Set writes the channel-0 sample at (row, col). It fails with
// ErrIndexOutOfBounds outside the array.
func (d *Dense) Set(row, col int, v float64) error {
	return d.SetChannel(row, col, 0, v)
}

// SetChannel writes the sample at (row, col, channel). It fails with
// ErrIndexOutOfBounds outside the array.
func (d *Dense) SetChannel(row, col, channel int, v float64) error {
	if err := d.check(row, col, channel); err != nil {
		return err
	}
	d.data[d.Index(row, col, channel)] = v
	return nil
}

// Clone returns a deep copy with its own buffer.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)
	return &Dense{rows: d.rows, cols: d.cols, channels: d.channels, data: data}
}

func (d *Dense) check(row, col, channel int) error {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols ||
		channel < 0 || channel >= d.channels {
		return fmt.Errorf("%w: (%d,%d,%d) outside %dx%dx%d",
			ErrIndexOutOfBounds, row, col, channel, d.rows, d.cols, d.channels)
	}
	return nil
}
