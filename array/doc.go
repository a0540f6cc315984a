// Package array provides the dense 2D sample buffer shared by every stage
// of the processing pipeline.
//
// A Dense holds floating-point samples in a single contiguous buffer in
// row-major order, with an explicit channel count (1 for grayscale, 3 for
// RGB). The value domain is unconstrained: callers decide whether samples
// live in [0,1], [0,255] or anywhere else, and the pipeline never
// normalizes on their behalf.
//
// # Coordinate System
//
// All indices are 0-based. Row 0 is the top of the image, column 0 the
// left edge. The flat buffer index of (row, col, channel) is
// (row*cols+col)*channels + channel.
//
// # Access Paths
//
// At/Set and their channel variants are bounds-checked and return errors
// instead of panicking. Bulk operations (convolution loops and the like)
// use Data together with Index, which skip the checks; callers on that
// path are responsible for staying in bounds.
package array
