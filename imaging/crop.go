package imaging

import (
	"image"

	"github.com/tsawler/gridscan/model"
)

// CropToText crops a cell image tightly around its ink region and pads
// it with a white border, the margin the downstream OCR engine needs
// around glyphs.
//
// The ink region is found on an inverted copy of the cell opened with a
// small cross-shaped element, which drops the thin fragments of ruling
// lines that bleed into cell crops. The largest bounding rectangle among
// the remaining contours is taken as the text blob, and the original
// (unopened) cell is cropped to it.
//
// A blank cell produces no contours; in that case the input image is
// returned unmodified.
func CropToText(cell *image.Gray, kernelSize, border int) *image.Gray {
	opened := Open(Invert(cell), CrossKernel(kernelSize, kernelSize))

	contours := FindContours(opened, RetrieveAll)
	ink, ok := model.MaxByArea(BoundingRects(contours))
	if !ok {
		return Clone(cell)
	}

	cropped := SubImage(cell, ink)
	if cropped == nil {
		return Clone(cell)
	}
	return AddBorder(cropped, border, 255)
}
