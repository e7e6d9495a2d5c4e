// Package imaging implements the raster operations the segmentation
// pipeline is built from: Gaussian smoothing, adaptive binarization,
// binary morphology, contour tracing, polygon approximation, and the
// tight text crop applied to cell images before OCR.
//
// All operations work on *image.Gray with ink as foreground (255) and
// paper as background (0) once binarized. Every function returns a new
// image; inputs are never mutated, so each stage's output can be
// inspected and tested independently.
//
// # Coordinate conventions
//
// Images produced by this package always have a zero-origin bounds
// rectangle. Structuring elements and blur kernels are anchored at
// (w/2, h/2), matching the usual convention for morphological
// operations.
package imaging
