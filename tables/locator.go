package tables

import (
	"image"

	"github.com/tsawler/gridscan/imaging"
	"github.com/tsawler/gridscan/model"
)

// Locator finds table regions on a page image by isolating its ruling
// lines and keeping large, roughly quadrilateral line structures.
type Locator struct {
	config Config
}

// NewLocator creates a table locator with the default configuration.
func NewLocator() *Locator {
	return &Locator{config: DefaultConfig()}
}

// Configure sets the locator configuration.
func (l *Locator) Configure(config Config) {
	l.config = config
}

// FindTableRegions returns the bounding rectangle of each detected table
// on the page, in contour scan order. The order is not spatially
// meaningful. A page without rulings yields an empty slice.
func (l *Locator) FindTableRegions(page *image.Gray) []model.Rect {
	cfg := l.config

	binary := imaging.Preprocess(page, cfg.BlurKernelSize, cfg.ThresholdBlockSize, cfg.ThresholdOffset)
	mask := imaging.BuildLineMask(binary, cfg.LineScale, cfg.HorizontalDilation, cfg.VerticalDilation)

	bounds := imaging.Bounds(page)

	var regions []model.Rect
	for _, c := range imaging.FindContours(mask, imaging.RetrieveExternal) {
		if c.Area() < cfg.MinTableArea {
			continue
		}
		// A coarse epsilon collapses true quadrilaterals to their four
		// corners while leaving noisier many-sided shapes intact.
		approx := imaging.ApproxPolyDP(c, cfg.TableEpsilon*c.Perimeter())

		r := approx.BoundingRect().Clip(bounds)
		if r.Empty() {
			continue
		}
		regions = append(regions, r)
	}
	return regions
}

// FindTables slices the page by each detected table region and returns
// the table sub-images. See FindTableRegions for ordering.
func (l *Locator) FindTables(page *image.Gray) []*image.Gray {
	regions := l.FindTableRegions(page)

	out := make([]*image.Gray, 0, len(regions))
	for _, r := range regions {
		if img := imaging.SubImage(page, r); img != nil {
			out = append(out, img)
		}
	}
	return out
}
