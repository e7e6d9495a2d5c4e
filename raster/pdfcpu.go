package raster

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"

	"github.com/tsawler/gridscan/internal/imgio"
)

// PDFRasterizer extracts the embedded page images of an image-only PDF,
// the common shape of scanned documents. Each page contributes its
// largest embedded image; pages without images fail the extraction so
// the caller can fall back to a full render.
type PDFRasterizer struct{}

func (PDFRasterizer) Rasterize(ctx context.Context, path string) ([]*image.Gray, error) {
	pageCount, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("page count %s: %w", path, err)
	}
	if pageCount == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPages)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]*image.Gray, 0, pageCount)
	for pageNr := 1; pageNr <= pageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := extractPageImage(f, pageNr)
		if err != nil {
			return nil, fmt.Errorf("%s page %d: %w", path, pageNr, err)
		}
		pages = append(pages, page)
	}

	log.Debug().Str("component", "RASTER_PDF").Str("file", path).
		Int("pages", len(pages)).Msg("extracted embedded page images")
	return pages, nil
}

// extractPageImage pulls the largest embedded image of one page. Scans
// carry exactly one image per page; the area comparison guards against
// logos or stamps stored alongside it.
func extractPageImage(rs io.ReadSeeker, pageNr int) (*image.Gray, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	imgs, err := api.ExtractImagesRaw(rs, []string{strconv.Itoa(pageNr)}, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("extract images: %w", err)
	}

	var best *image.Gray
	for _, pageImgs := range imgs {
		for _, pdfImg := range pageImgs {
			data, err := io.ReadAll(pdfImg)
			if err != nil {
				return nil, fmt.Errorf("read image %s: %w", pdfImg.Name, err)
			}
			decoded, err := imgio.DecodeBytes(data)
			if err != nil {
				// Unsupported inline encodings are skipped; the page
				// fails only if nothing decodes.
				continue
			}
			if best == nil || area(decoded) > area(best) {
				best = decoded
			}
		}
	}
	if best == nil {
		return nil, ErrNoPages
	}
	return best, nil
}

func area(img *image.Gray) int {
	return img.Bounds().Dx() * img.Bounds().Dy()
}
