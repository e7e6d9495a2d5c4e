//go:build !ocr

package ocr

import (
	"errors"
	"image"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if err == nil {
		t.Error("Expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when OCR is disabled")
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestStubOperationsReturnError(t *testing.T) {
	client := &Client{}

	if err := client.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage: expected ErrOCRNotEnabled, got %v", err)
	}
	if err := client.SetPageSegMode(PSMSingleBlock); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetPageSegMode: expected ErrOCRNotEnabled, got %v", err)
	}
	if _, err := client.RecognizeImage(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage: expected ErrOCRNotEnabled, got %v", err)
	}
}

func TestRecognizeGridCapturesPerCellErrors(t *testing.T) {
	client := &Client{}

	cells := [][]*image.Gray{
		{image.NewGray(image.Rect(0, 0, 10, 10)), nil},
		{image.NewGray(image.Rect(0, 0, 10, 10))},
	}

	grid, err := client.RecognizeGrid(cells)
	if err != nil {
		t.Fatalf("RecognizeGrid should not fail as a whole: %v", err)
	}
	if len(grid) != 2 || len(grid[0]) != 2 || len(grid[1]) != 1 {
		t.Fatalf("Grid shape not preserved: %+v", grid)
	}
	for r, row := range grid {
		for c, cell := range row {
			if cell.Err == nil {
				t.Errorf("Cell (%d,%d): expected per-cell error from stub", r, c)
			}
		}
	}
}
