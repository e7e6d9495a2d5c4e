// Package gridscan provides a fluent API for locating ruled tables on
// scanned pages and segmenting them into cell images.
//
// Basic usage:
//
//	grids, err := gridscan.Open("scan.png").Grids()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	cells, err := gridscan.Open("scan.pdf").
//	    CorrectOrientation().
//	    Config(cfg).
//	    Cells()
//
// For advanced use cases, the lower-level tables and imaging packages
// are also available.
package gridscan

import (
	"context"
	"fmt"
	"image"

	"github.com/tsawler/gridscan/imaging"
	"github.com/tsawler/gridscan/model"
	"github.com/tsawler/gridscan/ocr"
	"github.com/tsawler/gridscan/raster"
	"github.com/tsawler/gridscan/tables"
)

// Scan provides a fluent interface for running the segmentation
// pipeline over a page image or a multi-page input file. Each
// configuration method returns a new Scan instance, making it safe for
// concurrent use and allowing method chaining.
type Scan struct {
	// Source: a file path or an in-memory page.
	filename string
	page     *image.Gray

	// Configuration
	options ScanOptions

	// Accumulated error (fail-fast)
	err error
}

// Open prepares a scan of a page-image or PDF file. Terminal operations
// like Tables() run the pipeline.
//
// Example:
//
//	tables, err := gridscan.Open("scan.png").Tables()
func Open(filename string) *Scan {
	return &Scan{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromImage prepares a scan of an already-decoded page image. This is
// useful when pages arrive from a custom rasterizer.
func FromImage(img image.Image) *Scan {
	return &Scan{
		page:    imaging.ToGray(img),
		options: defaultOptions(),
	}
}

// clone creates a shallow copy of the Scan with a copy of its options.
// This ensures immutability; each chain method returns a new instance.
func (s *Scan) clone() *Scan {
	return &Scan{
		filename: s.filename,
		page:     s.page,
		options:  s.options.clone(),
		err:      s.err,
	}
}

// Config replaces the pipeline configuration.
func (s *Scan) Config(cfg tables.Config) *Scan {
	c := s.clone()
	c.options.config = cfg
	return c
}

// CorrectOrientation runs orientation and script detection on each page
// and rotates it upright before segmentation. Requires a tesseract
// binary on the path.
func (s *Scan) CorrectOrientation() *Scan {
	c := s.clone()
	c.options.correctOrientation = true
	return c
}

// Language sets the OCR language for the Text terminal operation.
func (s *Scan) Language(lang string) *Scan {
	c := s.clone()
	c.options.language = lang
	return c
}

// PageSegMode sets the OCR page segmentation mode for the Text terminal
// operation.
func (s *Scan) PageSegMode(mode ocr.PageSegMode) *Scan {
	c := s.clone()
	c.options.pageSegMode = int(mode)
	c.options.psmSet = true
	return c
}

// Context sets the context used for rasterization and external
// collaborators.
func (s *Scan) Context(ctx context.Context) *Scan {
	c := s.clone()
	c.options.ctx = ctx
	return c
}

// pages resolves the input into page images.
func (s *Scan) pages() ([]*image.Gray, error) {
	if s.err != nil {
		return nil, s.err
	}

	var pages []*image.Gray
	switch {
	case s.page != nil:
		pages = []*image.Gray{s.page}
	case s.filename != "":
		var err error
		pages, err = raster.Auto{}.Rasterize(s.options.ctx, s.filename)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("no input specified")
	}

	if s.options.correctOrientation {
		detector := raster.OrientationDetector{}
		for i, page := range pages {
			corrected, err := detector.CorrectOrientation(s.options.ctx, page)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", i+1, err)
			}
			pages[i] = corrected
		}
	}
	return pages, nil
}

// Regions returns the bounding rectangle of each detected table across
// all pages, in page then contour scan order. A scan without tables
// yields an empty slice.
func (s *Scan) Regions() ([]model.Rect, error) {
	pages, err := s.pages()
	if err != nil {
		return nil, err
	}

	locator := tables.NewLocator()
	locator.Configure(s.options.config)

	var regions []model.Rect
	for _, page := range pages {
		regions = append(regions, locator.FindTableRegions(page)...)
	}
	return regions, nil
}

// Tables returns the detected table sub-images across all pages.
func (s *Scan) Tables() ([]*image.Gray, error) {
	pages, err := s.pages()
	if err != nil {
		return nil, err
	}

	locator := tables.NewLocator()
	locator.Configure(s.options.config)

	var out []*image.Gray
	for _, page := range pages {
		out = append(out, locator.FindTables(page)...)
	}
	return out, nil
}

// Grids segments every detected table into an ordered grid of cell
// rectangles, one grid per table.
func (s *Scan) Grids() ([]model.Grid, error) {
	tbls, err := s.Tables()
	if err != nil {
		return nil, err
	}

	extractor := tables.NewExtractor()
	extractor.Configure(s.options.config)

	grids := make([]model.Grid, 0, len(tbls))
	for _, t := range tbls {
		grids = append(grids, extractor.CellRects(t))
	}
	return grids, nil
}

// Cells segments every detected table and returns its cropped cell
// images, one grid of images per table.
func (s *Scan) Cells() ([][][]*image.Gray, error) {
	tbls, err := s.Tables()
	if err != nil {
		return nil, err
	}

	extractor := tables.NewExtractor()
	extractor.Configure(s.options.config)

	out := make([][][]*image.Gray, 0, len(tbls))
	for _, t := range tbls {
		grid := extractor.ExtractCells(t)
		for r, row := range grid {
			for c, cell := range row {
				grid[r][c] = extractor.CropCell(cell)
			}
		}
		out = append(out, grid)
	}
	return out, nil
}

// Text runs OCR over every cell of every detected table. Requires a
// build with the ocr tag; otherwise it returns ocr.ErrOCRNotEnabled.
// Per-cell recognition failures are recorded in the result instead of
// aborting the scan.
func (s *Scan) Text() ([][][]ocr.CellText, error) {
	cells, err := s.Cells()
	if err != nil {
		return nil, err
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()

	if s.options.language != "" {
		if err := client.SetLanguage(s.options.language); err != nil {
			return nil, err
		}
	}
	if s.options.psmSet {
		if err := client.SetPageSegMode(ocr.PageSegMode(s.options.pageSegMode)); err != nil {
			return nil, err
		}
	}

	out := make([][][]ocr.CellText, 0, len(cells))
	for _, table := range cells {
		grid, err := client.RecognizeGrid(table)
		if err != nil {
			return nil, err
		}
		out = append(out, grid)
	}
	return out, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	grids := gridscan.Must(gridscan.Open("scan.png").Grids())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
