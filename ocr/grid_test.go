package ocr

import (
	"errors"
	"testing"
)

func TestGridText(t *testing.T) {
	grid := [][]CellText{
		{{Text: "Name"}, {Text: "Qty"}, {Text: "Price"}},
		{{Text: "Bolt"}, {Err: errors.New("engine failure")}, {Text: "0.40"}},
	}

	got := GridText(grid)
	want := "Name\tQty\tPrice\nBolt\t\t0.40"
	if got != want {
		t.Errorf("GridText = %q, want %q", got, want)
	}
}

func TestGridTextEmpty(t *testing.T) {
	if got := GridText(nil); got != "" {
		t.Errorf("Expected empty string for nil grid, got %q", got)
	}
}

func TestGridTextRaggedRows(t *testing.T) {
	grid := [][]CellText{
		{{Text: "a"}, {Text: "b"}},
		{{Text: "c"}},
	}

	if got := GridText(grid); got != "a\tb\nc" {
		t.Errorf("GridText = %q", got)
	}
}
