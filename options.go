package gridscan

import (
	"context"

	"github.com/tsawler/gridscan/tables"
)

// ScanOptions holds configuration for a segmentation run.
type ScanOptions struct {
	// Pipeline tunables.
	config tables.Config

	// Orientation correction before segmentation.
	correctOrientation bool

	// OCR settings, applied when Text() is the terminal operation.
	language    string
	pageSegMode int
	psmSet      bool

	// Context for rasterization and external collaborators.
	ctx context.Context
}

// defaultOptions returns the default scan options.
func defaultOptions() ScanOptions {
	return ScanOptions{
		config:             tables.DefaultConfig(),
		correctOrientation: false,
		language:           "",
		ctx:                context.Background(),
	}
}

// clone creates a copy of ScanOptions.
func (o ScanOptions) clone() ScanOptions {
	return ScanOptions{
		config:             o.config,
		correctOrientation: o.correctOrientation,
		language:           o.language,
		pageSegMode:        o.pageSegMode,
		psmSet:             o.psmSet,
		ctx:                o.ctx,
	}
}
