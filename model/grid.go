package model

// Row is an ordered sequence of rectangles sharing a vertical band,
// ordered left to right.
type Row []Rect

// MeanCenterY returns the mean vertical center of the row's members.
// Returns 0 for an empty row.
func (row Row) MeanCenterY() int {
	if len(row) == 0 {
		return 0
	}
	sum := 0
	for _, r := range row {
		sum += r.CenterY()
	}
	return sum / len(row)
}

// Grid is an ordered sequence of rows, ordered top to bottom by mean
// vertical center. It is immutable once produced.
type Grid []Row

// RowCount returns the number of rows
func (g Grid) RowCount() int {
	return len(g)
}

// CellCount returns the total number of cells across all rows
func (g Grid) CellCount() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	return n
}

// Flatten returns all rectangles in reading order (row by row,
// left to right within each row).
func (g Grid) Flatten() []Rect {
	out := make([]Rect, 0, g.CellCount())
	for _, row := range g {
		out = append(out, row...)
	}
	return out
}
