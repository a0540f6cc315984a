// Package filter implements 2D linear filtering and the Canny edge
// detection pipeline on array.Dense inputs.
//
// The building blocks are a border policy (Border), a correlation engine
// (Convolve), kernel constructors (GaussianKernel, MeanKernel,
// SobelKernel) and the edge stages (Gradient, Suppress, Hysteresis),
// composed by CannyEdge.
//
// # Correlation, Not Convolution
//
// Convolve applies kernels in their given orientation without flipping,
// i.e. it computes correlation. Symmetric kernels (Gaussian, mean) are
// unaffected; callers who need true convolution with an asymmetric
// kernel must pre-flip it themselves. The Sobel kernels here are the
// standard correlation form.
//
// # Ownership
//
// Every stage allocates a fresh output and never mutates its input, so
// intermediate results can be retained or dropped freely and stages can
// parallelize per output pixel without synchronization.
package filter
