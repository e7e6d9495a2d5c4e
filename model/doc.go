// Package model defines the geometric value types shared by the
// segmentation pipeline.
//
// All coordinates are integer pixel coordinates with the origin at the
// top-left corner of the image, X increasing rightward and Y increasing
// downward. Rectangles are axis-aligned and never degenerate once
// produced by the pipeline (Width > 0, Height > 0).
//
// A [Grid] is the final output of cell extraction: rows ordered top to
// bottom, cells within a row ordered left to right.
package model
