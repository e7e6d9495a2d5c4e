package tables

import (
	"image"

	"github.com/tsawler/gridscan/imaging"
	"github.com/tsawler/gridscan/model"
)

// Extractor segments a single table image into an ordered grid of cell
// images.
type Extractor struct {
	config Config
}

// NewExtractor creates a cell extractor with the default configuration.
func NewExtractor() *Extractor {
	return &Extractor{config: DefaultConfig()}
}

// Configure sets the extractor configuration.
func (e *Extractor) Configure(config Config) {
	e.config = config
}

// CellRects segments a table image into cell rectangles ordered into a
// grid: rows top to bottom, cells left to right within a row. A table
// whose rulings produce no cell candidates yields an empty grid.
func (e *Extractor) CellRects(table *image.Gray) model.Grid {
	cfg := e.config

	binary := imaging.Preprocess(table, cfg.BlurKernelSize, cfg.ThresholdBlockSize, cfg.ThresholdOffset)
	mask := imaging.BuildLineMask(binary, cfg.LineScale, cfg.HorizontalDilation, cfg.VerticalDilation)

	contours := imaging.FindContours(mask, imaging.RetrieveAll)
	cells := filterCells(contours, cfg)

	return OrderIntoGrid(cells)
}

// ExtractCells slices the table image by each cell rectangle, preserving
// the grid shape.
func (e *Extractor) ExtractCells(table *image.Gray) [][]*image.Gray {
	grid := e.CellRects(table)

	out := make([][]*image.Gray, 0, len(grid))
	for _, row := range grid {
		images := make([]*image.Gray, 0, len(row))
		for _, r := range row {
			if img := imaging.SubImage(table, r); img != nil {
				images = append(images, img)
			}
		}
		out = append(out, images)
	}
	return out
}

// CropCell tightens a cell image around its ink region and pads it with
// the white margin the OCR engine needs. Blank cells come back unchanged.
func (e *Extractor) CropCell(cell *image.Gray) *image.Gray {
	return imaging.CropToText(cell, e.config.CropKernelSize, e.config.CropBorder)
}

// filterCells reduces a table's contours to cell candidate rectangles:
// polygon approximation with a tight epsilon, sliver removal, and
// removal of the largest rectangle, which is the outer table boundary
// rather than a cell.
//
// The vertex count of the approximated polygon is deliberately not a
// gate: bounding rectangles are taken from every approximated contour,
// not just the four-sided ones. Sliver filtering and boundary removal
// alone decide membership.
func filterCells(contours []imaging.Contour, cfg Config) []model.Rect {
	rects := make([]model.Rect, 0, len(contours))
	for _, c := range contours {
		approx := imaging.ApproxPolyDP(c, cfg.CellEpsilon*c.Perimeter())
		rects = append(rects, approx.BoundingRect())
	}

	kept := rects[:0]
	for _, r := range rects {
		if r.Width <= cfg.MinCellWidth || r.Height <= cfg.MinCellHeight {
			continue
		}
		kept = append(kept, r)
	}

	// The largest rectangle is the table's own boundary; it must never
	// be treated as a cell.
	largest, ok := model.MaxByArea(kept)
	if !ok {
		return nil
	}
	cells := make([]model.Rect, 0, len(kept)-1)
	removed := false
	for _, r := range kept {
		if !removed && r == largest {
			removed = true
			continue
		}
		cells = append(cells, r)
	}
	return cells
}
