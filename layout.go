/* file solves the best-fit grid geometry for a cell count & viewport.
 */
package wang

// Layout is a solved grid geometry.
type Layout struct {
	Columns  int
	Rows     int
	TileSize int // in pixels, square
}

// SolveLayout finds the rows/columns split of `cellCount` cells that yields
// the largest square tile fitting the given viewport (pixels), accounting
// for `gap` pixels between adjacent tiles.
//
// This is a brute force search over columns 1..cellCount; exact pixel fit
// matters downstream so no approximation is acceptable. Ties keep the
// earliest (fewest columns) candidate.
func SolveLayout(cellCount, availableWidth, availableHeight, gap int) Layout {
	if cellCount <= 0 {
		return Layout{Columns: 1, Rows: 0, TileSize: 0}
	}

	best := Layout{Columns: 1, Rows: cellCount}
	for columns := 1; columns <= cellCount; columns++ {
		rows := (cellCount + columns - 1) / columns

		w := (availableWidth - gap*(columns-1)) / columns
		h := (availableHeight - gap*(rows-1)) / rows

		size := w
		if h < size {
			size = h
		}

		if size > best.TileSize {
			best = Layout{Columns: columns, Rows: rows, TileSize: size}
		}
	}
	return best
}
