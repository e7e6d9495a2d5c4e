// Package batch runs the segmentation pipeline over many input files
// with a fixed worker pool. Files are independent, so a failing file
// never stops the batch; each file carries its own result and error.
package batch

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/ksuid"

	"github.com/tsawler/gridscan/imaging"
	"github.com/tsawler/gridscan/internal/imgio"
	"github.com/tsawler/gridscan/raster"
	"github.com/tsawler/gridscan/tables"
)

// Mode selects what the batch writes for each detected table.
type Mode int

const (
	// ModeTables writes one artifact per detected table region.
	ModeTables Mode = iota
	// ModeCells segments each table further and writes one artifact per
	// cropped cell.
	ModeCells
)

// FileResult is the outcome for a single input file.
type FileResult struct {
	// Path is the input file path.
	Path string
	// JobID identifies this file's run in logs and temp names.
	JobID string
	// Artifacts lists the paths written for this file, in page, table,
	// row, column order.
	Artifacts []string
	// Err is set when the file failed; the rest of the batch still runs.
	Err error
}

// Processor fans input files out over a worker pool and writes table or
// cell artifacts for each.
type Processor struct {
	// Workers is the pool size. Zero means one worker per CPU.
	Workers int
	// OutputDir receives the artifacts.
	OutputDir string
	// Mode selects table or cell artifacts.
	Mode Mode
	// Config tunes the segmentation pipeline.
	Config tables.Config
	// Rasterizer turns input files into page images.
	Rasterizer raster.Rasterizer
	// Orienter, when set, corrects page rotation before segmentation.
	Orienter *raster.OrientationDetector
}

// NewProcessor creates a processor with the default pipeline
// configuration, cell mode and an extension-routing rasterizer.
func NewProcessor(outputDir string) *Processor {
	return &Processor{
		Workers:    runtime.NumCPU(),
		OutputDir:  outputDir,
		Mode:       ModeCells,
		Config:     tables.DefaultConfig(),
		Rasterizer: raster.Auto{},
	}
}

// Process runs the batch and returns one result per input file, in
// input order. Per-file failures are recorded in the results; the
// returned error is reserved for context cancellation.
func (p *Processor) Process(ctx context.Context, paths []string) ([]FileResult, error) {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	results := make([]FileResult, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.processFile(ctx, paths[i])
			}
		}()
	}

	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return results, ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()
	return results, nil
}

func (p *Processor) processFile(ctx context.Context, path string) FileResult {
	jobID := ksuid.New().String()
	result := FileResult{Path: path, JobID: jobID}

	logger := log.With().Str("component", "BATCH").Str("jobID", jobID).Str("file", path).Logger()

	inFlightFiles.Inc()
	defer inFlightFiles.Dec()

	rasterizer := p.Rasterizer
	if rasterizer == nil {
		rasterizer = raster.Auto{}
	}

	pages, err := rasterizer.Rasterize(ctx, path)
	if err != nil {
		logger.Error().Err(err).Msg("rasterization failed")
		filesProcessed.WithLabelValues("error").Inc()
		result.Err = fmt.Errorf("rasterize %s: %w", path, err)
		return result
	}

	locator := tables.NewLocator()
	locator.Configure(p.Config)
	extractor := tables.NewExtractor()
	extractor.Configure(p.Config)

	tableNr := 0
	for pageNr, page := range pages {
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}

		if p.Orienter != nil {
			corrected, err := p.Orienter.CorrectOrientation(ctx, page)
			if err != nil {
				// Orientation detection is advisory; segment the page
				// as scanned.
				logger.Warn().Err(err).Int("page", pageNr+1).Msg("orientation detection failed")
			} else {
				page = corrected
			}
		}

		pagesProcessed.Inc()

		for _, region := range locator.FindTableRegions(page) {
			table := imaging.SubImage(page, region)
			if table == nil {
				continue
			}
			tableNr++
			tablesFound.Inc()

			artifacts, err := p.writeTable(path, table, extractor, tableNr)
			if err != nil {
				logger.Error().Err(err).Int("table", tableNr).Msg("artifact write failed")
				filesProcessed.WithLabelValues("error").Inc()
				result.Err = err
				return result
			}
			result.Artifacts = append(result.Artifacts, artifacts...)
		}
	}

	logger.Info().Int("tables", tableNr).Int("artifacts", len(result.Artifacts)).Msg("file processed")
	filesProcessed.WithLabelValues("ok").Inc()
	return result
}

// writeTable writes either the table image itself or its cropped cells,
// depending on the processor mode.
func (p *Processor) writeTable(source string, table *image.Gray, extractor *tables.Extractor, tableNr int) ([]string, error) {
	if p.Mode == ModeTables {
		path := imgio.TablePath(p.OutputDir, source, tableNr)
		if err := imgio.WritePNG(path, table); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	var artifacts []string
	for r, row := range extractor.ExtractCells(table) {
		for c, cell := range row {
			cellsExtracted.Inc()
			path := imgio.CellPath(p.OutputDir, source, tableNr, r+1, c+1)
			if err := imgio.WritePNG(path, extractor.CropCell(cell)); err != nil {
				return nil, err
			}
			artifacts = append(artifacts, path)
		}
	}
	return artifacts, nil
}
