package raster

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/ksuid"

	"github.com/tsawler/gridscan/internal/imgio"
)

// Ghostscript renders PDF pages through the gs binary, one bilevel
// TIFF per page. It covers vector and mixed-content PDFs that carry no
// extractable page images.
type Ghostscript struct {
	// Binary overrides the gs executable name.
	Binary string
	// DPI is the render resolution. Zero means 300, the resolution the
	// default segmentation constants are tuned for.
	DPI int
}

func (g Ghostscript) Rasterize(ctx context.Context, path string) ([]*image.Gray, error) {
	binary := g.Binary
	if binary == "" {
		binary = "gs"
	}
	dpi := g.DPI
	if dpi == 0 {
		dpi = 300
	}

	tmpDir, err := os.MkdirTemp("", "gridscan-gs-"+ksuid.New().String())
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			log.Warn().Err(err).Str("component", "RASTER_GS").Msg(tmpDir + " could not be removed")
		}
	}()

	outPattern := filepath.Join(tmpDir, "page-%04d.tif")
	gsArgs := []string{
		"-dQUIET",
		"-dNOPAUSE",
		"-dBATCH",
		"-sDEVICE=tiffg4",
		fmt.Sprintf("-r%d", dpi),
		"-sOutputFile=" + outPattern,
		path,
	}

	log.Debug().Str("component", "RASTER_GS").Str("file", path).
		Interface("gsArgs", gsArgs).Msg("rendering PDF")

	out, err := exec.CommandContext(ctx, binary, gsArgs...).CombinedOutput()
	if err != nil {
		log.Error().Err(err).Str("component", "RASTER_GS").Msg(string(out))
		return nil, fmt.Errorf("ghostscript %s: %w", path, err)
	}

	matches, err := filepath.Glob(filepath.Join(tmpDir, "page-*.tif"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPages)
	}
	sort.Strings(matches)

	pages := make([]*image.Gray, 0, len(matches))
	for _, m := range matches {
		page, err := imgio.DecodeFile(m)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
