package tables

// Config holds every tunable constant of the segmentation pipeline.
// The defaults match scanned pages in the usual 150-300 DPI range;
// inputs far outside that range need re-tuned values, particularly the
// blur kernel and the fixed dilation lengths.
type Config struct {
	// Gaussian blur kernel size applied before binarization (odd)
	BlurKernelSize int

	// Neighborhood size for adaptive mean thresholding (odd)
	ThresholdBlockSize int

	// Offset subtracted from the local mean to form the threshold;
	// negative values place the threshold above the mean
	ThresholdOffset int

	// Ruling-line structuring elements are image_extent/LineScale long
	LineScale int

	// Fixed dilation lengths that reconnect broken line segments
	HorizontalDilation int
	VerticalDilation   int

	// Minimum enclosed contour area for a table candidate (px²)
	MinTableArea float64

	// Polygon approximation epsilon as a fraction of contour perimeter
	TableEpsilon float64 // table candidates
	CellEpsilon  float64 // cell candidates, tighter

	// Cell rectangles at or below these dimensions are discarded as
	// anti-aliasing slivers
	MinCellWidth  int
	MinCellHeight int

	// Cross-kernel size for the pre-OCR text crop
	CropKernelSize int

	// White margin added around the detected ink region of a cell
	CropBorder int
}

// DefaultConfig returns the default configuration, tuned for pages
// scanned at 150-300 DPI.
func DefaultConfig() Config {
	return Config{
		BlurKernelSize:     17,
		ThresholdBlockSize: 15,
		ThresholdOffset:    -2,
		LineScale:          5,
		HorizontalDilation: 40,
		VerticalDilation:   60,
		MinTableArea:       1e5,
		TableEpsilon:       0.10,
		CellEpsilon:        0.05,
		MinCellWidth:       40,
		MinCellHeight:      10,
		CropKernelSize:     4,
		CropBorder:         5,
	}
}
