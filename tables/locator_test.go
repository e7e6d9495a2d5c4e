package tables

import (
	"testing"

	"github.com/tsawler/gridscan/imaging"
	"github.com/tsawler/gridscan/model"
)

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestFindTablesSyntheticPage(t *testing.T) {
	loc := NewLocator()
	loc.Configure(lowResConfig())

	regions := loc.FindTableRegions(drawRuledPage())
	if len(regions) != 1 {
		t.Fatalf("Expected exactly 1 table region, got %d: %+v", len(regions), regions)
	}

	// The drawn table spans (50,50)-(550,350). Binarization and the
	// reconnection dilation thicken the rules slightly, so each edge
	// may sit a few pixels outside the drawn bounds.
	got := regions[0]
	want := model.NewRect(50, 50, 500, 300)
	const tolerance = 3

	if absInt(got.Left()-want.Left()) > tolerance ||
		absInt(got.Top()-want.Top()) > tolerance ||
		absInt(got.Right()-want.Right()) > tolerance ||
		absInt(got.Bottom()-want.Bottom()) > tolerance {
		t.Errorf("Region %+v deviates more than %dpx from %+v", got, tolerance, want)
	}

	tables := loc.FindTables(drawRuledPage())
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table image, got %d", len(tables))
	}
	if tables[0].Bounds().Dx() != got.Width || tables[0].Bounds().Dy() != got.Height {
		t.Errorf("Table slice size %v does not match region %+v", tables[0].Bounds(), got)
	}
}

func TestFindTablesBlankPage(t *testing.T) {
	loc := NewLocator()
	loc.Configure(lowResConfig())

	if regions := loc.FindTableRegions(imaging.NewUniform(600, 400, 255)); len(regions) != 0 {
		t.Errorf("Blank page should yield no tables, got %+v", regions)
	}
}

func TestFindTablesIgnoresSmallStructures(t *testing.T) {
	page := imaging.NewUniform(600, 400, 255)

	// A tiny ruled box: well-formed but far below the area threshold.
	for _, y := range []int{40, 100} {
		fillRect(page, model.NewRect(40, y, 180, 2), 0)
	}
	for _, x := range []int{40, 218} {
		fillRect(page, model.NewRect(x, 40, 2, 62), 0)
	}

	loc := NewLocator()
	loc.Configure(lowResConfig())

	if regions := loc.FindTableRegions(page); len(regions) != 0 {
		t.Errorf("Sub-threshold structure should be ignored, got %+v", regions)
	}
}
