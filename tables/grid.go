package tables

import (
	"sort"

	"github.com/tsawler/gridscan/model"
)

// OrderIntoGrid arranges an unordered set of cell rectangles into a grid:
// rows are formed by repeatedly seeding with the first unassigned
// rectangle and collecting every rectangle in the same vertical band,
// each row is sorted left to right, and the rows are sorted top to
// bottom by mean vertical center.
//
// Every input rectangle appears in exactly one row. The result is stable
// under re-sorting: feeding a grid's flattened rectangles back in
// reproduces the same grid.
func OrderIntoGrid(cells []model.Rect) model.Grid {
	if len(cells) == 0 {
		return nil
	}

	// Arena of rectangles with a shrinking set of unassigned indices,
	// so row formation never copies the candidate list.
	remaining := make([]int, len(cells))
	for i := range remaining {
		remaining[i] = i
	}

	var grid model.Grid
	for len(remaining) > 0 {
		seed := cells[remaining[0]]

		row := model.Row{seed}
		rest := remaining[:0]
		for _, idx := range remaining[1:] {
			if sameRow(seed, cells[idx]) {
				row = append(row, cells[idx])
			} else {
				rest = append(rest, idx)
			}
		}
		remaining = rest

		sort.SliceStable(row, func(i, j int) bool {
			return row[i].X < row[j].X
		})
		grid = append(grid, row)
	}

	sort.SliceStable(grid, func(i, j int) bool {
		return grid[i].MeanCenterY() < grid[j].MeanCenterY()
	})
	return grid
}

// sameRow reports whether other belongs to the row seeded by seed: the
// seed's vertical center must lie strictly between other's top and
// bottom bounds. The test is deliberately asymmetric - it checks
// containment of the seed's center within other's vertical span, not
// mutual overlap - which is what groups rows correctly on real tables
// with slightly uneven cell heights.
func sameRow(seed, other model.Rect) bool {
	c := seed.CenterY()
	return c > other.Top() && c < other.Bottom()
}
