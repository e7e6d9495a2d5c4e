// Package raster turns input files into grayscale page images. Plain
// image files pass straight through; PDFs go through embedded-image
// extraction or a ghostscript render. The package also hosts the
// orientation corrector, which consults tesseract's orientation and
// script detection before the segmentation pipeline runs.
package raster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/tsawler/gridscan/internal/imgio"
)

// ErrNoPages is returned when an input file yields no page images.
var ErrNoPages = errors.New("input produced no page images")

// Rasterizer produces the ordered page images of an input file.
type Rasterizer interface {
	Rasterize(ctx context.Context, path string) ([]*image.Gray, error)
}

// ImageFileRasterizer treats the input file as a single page image.
// PNG, JPEG, TIFF and BMP are supported.
type ImageFileRasterizer struct{}

func (ImageFileRasterizer) Rasterize(ctx context.Context, path string) ([]*image.Gray, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	page, err := imgio.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return []*image.Gray{page}, nil
}

// Auto routes an input file to the right rasterizer by extension:
// PDFs are tried via embedded-image extraction first, falling back to
// ghostscript; anything else is decoded as a single page image.
type Auto struct {
	PDF PDFRasterizer
	GS  Ghostscript
	Img ImageFileRasterizer
}

func (a Auto) Rasterize(ctx context.Context, path string) ([]*image.Gray, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		pages, err := a.PDF.Rasterize(ctx, path)
		if err == nil {
			return pages, nil
		}
		// Vector or mixed-content PDFs carry no extractable page
		// images; render them instead.
		pages, gsErr := a.GS.Rasterize(ctx, path)
		if gsErr != nil {
			return nil, fmt.Errorf("rasterize %s: extract: %v; ghostscript: %w", path, err, gsErr)
		}
		return pages, nil
	}
	return a.Img.Rasterize(ctx, path)
}
