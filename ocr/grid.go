package ocr

import (
	"fmt"
	"image"
	"strings"
)

// CellText is the recognition result for a single table cell. A cell
// failure is recorded here instead of aborting the rest of the grid.
type CellText struct {
	Text string
	Err  error
}

// GridText flattens a recognized grid into plain text: cells joined by
// tabs, rows by newlines. Failed cells contribute an empty field.
func GridText(grid [][]CellText) string {
	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, cell := range row {
			if c > 0 {
				b.WriteByte('\t')
			}
			if cell.Err == nil {
				b.WriteString(cell.Text)
			}
		}
	}
	return b.String()
}

// RecognizeGrid runs OCR over a grid of cell images, preserving the
// grid shape. Recognition failures are captured per cell; the error
// return is reserved for failures that make the whole grid unusable
// (currently none).
func (c *Client) RecognizeGrid(cells [][]*image.Gray) ([][]CellText, error) {
	out := make([][]CellText, len(cells))
	for r, row := range cells {
		out[r] = make([]CellText, len(row))
		for col, cell := range row {
			if cell == nil {
				out[r][col] = CellText{Err: fmt.Errorf("cell (%d,%d): empty image", r, col)}
				continue
			}
			text, err := c.RecognizeGray(cell)
			if err != nil {
				out[r][col] = CellText{Err: fmt.Errorf("cell (%d,%d): %w", r, col, err)}
				continue
			}
			out[r][col] = CellText{Text: text}
		}
	}
	return out, nil
}
