// Package tables segments scanned page images into tables and table
// cells using the structure of their ruling lines.
//
// # Pipeline
//
// Table location and cell extraction share the same front end:
//
//  1. Preprocessing: Gaussian blur and adaptive binarization
//     (ink becomes foreground)
//  2. Line mask: morphological isolation of long horizontal and
//     vertical ruling lines
//  3. Contour extraction over the mask
//  4. Rectangle filtering and polygon approximation
//
// [Locator.FindTables] keeps only external contours above an area
// threshold and slices the page by their bounding rectangles.
// [Extractor.ExtractCells] works inside a single table image: every
// contour including hole boundaries is considered, slivers and the outer
// table boundary are filtered out, and the surviving cell rectangles are
// ordered into a [model.Grid] by [OrderIntoGrid].
//
// # Configuration
//
// Every tunable constant (kernel sizes, thresholds, approximation
// epsilons) lives in [Config]; the defaults are calibrated for scanned
// pages in the 150-300 DPI range. Lower-resolution input needs smaller
// blur and dilation settings:
//
//	cfg := tables.DefaultConfig()
//	cfg.BlurKernelSize = 5
//	loc := tables.NewLocator()
//	loc.Configure(cfg)
//
// The pipeline is purely functional: no state is shared between calls,
// so pages and tables can be processed concurrently.
package tables
