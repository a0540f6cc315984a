// Package color provides color transformations on array.Dense images:
// RGB to grayscale reduction and histogram equalization.
package color
