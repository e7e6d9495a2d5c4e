//go:build ocr

package ocr

import (
	"image"
	"testing"

	"github.com/tsawler/gridscan/imaging"
	"github.com/tsawler/gridscan/internal/imgio"
)

// testCellPNG renders a white cell with a block of ink, the kind of
// input the pipeline hands to OCR.
func testCellPNG(t *testing.T) []byte {
	t.Helper()

	img := imaging.NewUniform(100, 50, 255)
	for y := 10; y < 30; y++ {
		for x := 10; x < 50; x++ {
			img.Pix[y*img.Stride+x] = 0
		}
	}
	data, err := imgio.EncodePNG(img)
	if err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return data
}

func TestNew(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if client == nil {
		t.Error("Expected non-nil client")
	}
}

func TestRecognizeImage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	// The test image holds no real glyphs; this only verifies the
	// engine round trip does not fail.
	if _, err := client.RecognizeImage(testCellPNG(t)); err != nil {
		t.Errorf("RecognizeImage failed: %v", err)
	}
}

func TestSetLanguage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	// English should always be available.
	if err := client.SetLanguage("eng"); err != nil {
		t.Errorf("SetLanguage failed: %v", err)
	}
}

func TestRecognizeGridShape(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	cells := [][]*image.Gray{
		{imaging.NewUniform(60, 30, 255), imaging.NewUniform(60, 30, 255)},
		{imaging.NewUniform(60, 30, 255)},
	}

	grid, err := client.RecognizeGrid(cells)
	if err != nil {
		t.Fatalf("RecognizeGrid failed: %v", err)
	}
	if len(grid) != 2 || len(grid[0]) != 2 || len(grid[1]) != 1 {
		t.Errorf("Grid shape not preserved: %+v", grid)
	}
}
