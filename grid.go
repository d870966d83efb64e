/* file adds the grid itself: a flat row-major arena of placements plus the
normalizer that keeps it sized to rows*columns across resizes.
*/
package wang

import (
	"fmt"
	"math/rand"
)

// Grid is a rectangular arrangement of placements, stored row-major
// (index = row*columns + col). Cells always holds exactly rows*columns
// entries; every resize re-derives it through the normalizer.
type Grid struct {
	Rows     int
	Columns  int
	TileSize int // in pixels
	Gap      int // in pixels
	Cells    []Placement
}

// New returns a grid for an editing session, sized by solving the best
// layout for the config's cell count & viewport. Cells are populated fresh
// against the given catalog; randomness comes from the caller's rng so runs
// can be replayed.
func New(cfg *Config, c Catalog, rng *rand.Rand) *Grid {
	l := SolveLayout(int(cfg.CellCount), int(cfg.ViewWidth), int(cfg.ViewHeight), int(cfg.Gap))
	return &Grid{
		Rows:     l.Rows,
		Columns:  l.Columns,
		TileSize: l.TileSize,
		Gap:      int(cfg.Gap),
		Cells:    normalizeCells(nil, l.Rows*l.Columns, len(c), rng),
	}
}

// At returns the placement at the given row-major index.
func (g *Grid) At(index int) (Placement, error) {
	if index < 0 || index >= len(g.Cells) {
		return Placement{}, fmt.Errorf("index %d is out of bounds for this grid", index)
	}
	return g.Cells[index], nil
}

// Set writes the placement at the given row-major index.
func (g *Grid) Set(index int, p Placement) error {
	if index < 0 || index >= len(g.Cells) {
		return fmt.Errorf("index %d is out of bounds for this grid", index)
	}
	g.Cells[index] = p
	return nil
}

// Resize re-solves the grid geometry for a new cell count & viewport,
// then re-derives the cell arena so existing authoring work is kept
// wherever possible.
func (g *Grid) Resize(cellCount, viewWidth, viewHeight, catalogSize int, rng *rand.Rand) {
	l := SolveLayout(cellCount, viewWidth, viewHeight, g.Gap)
	g.Rows = l.Rows
	g.Columns = l.Columns
	g.TileSize = l.TileSize
	g.Cells = normalizeCells(g.Cells, l.Rows*l.Columns, catalogSize, rng)
}

// normalizeCells restores the rows*columns invariant for a cell arena.
//
// Fresh build (no current cells): the first min(target, catalogSize) cells
// get sequential source indices, anything after draws a source uniformly
// from the catalog; every cell gets an independently drawn rotation. An
// empty catalog yields empty cells.
// Shrinking truncates; growing cyclically repeats the existing entries,
// transforms preserved.
func normalizeCells(current []Placement, target, catalogSize int, rng *rand.Rand) []Placement {
	if target <= 0 {
		return []Placement{}
	}

	out := make([]Placement, target)

	if len(current) == 0 {
		for i := range out {
			switch {
			case catalogSize <= 0:
				out[i] = Empty()
			case i < catalogSize:
				out[i] = Placement{Source: i, Rotation: rng.Intn(4)}
			default:
				out[i] = Placement{Source: rng.Intn(catalogSize), Rotation: rng.Intn(4)}
			}
		}
		return out
	}

	for i := range out {
		out[i] = current[i%len(current)]
	}
	return out
}

// Region is an axis-aligned rectangular subset of grid cells, inclusive on
// all sides & always clamped to the grid bounds.
type Region struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// RegionBetween derives the canonical region spanned by two arbitrary corner
// cell indices (row-major), clamping out of range corners to the grid rather
// than failing.
func (g *Grid) RegionBetween(a, b int) Region {
	ra, ca := g.clampCell(a)
	rb, cb := g.clampCell(b)

	r := Region{MinRow: ra, MaxRow: rb, MinCol: ca, MaxCol: cb}
	if r.MinRow > r.MaxRow {
		r.MinRow, r.MaxRow = r.MaxRow, r.MinRow
	}
	if r.MinCol > r.MaxCol {
		r.MinCol, r.MaxCol = r.MaxCol, r.MinCol
	}
	return r
}

// Contains reports whether the given cell (row, col) lies inside the region.
func (r Region) Contains(row, col int) bool {
	return row >= r.MinRow && row <= r.MaxRow && col >= r.MinCol && col <= r.MaxCol
}

// clampCell splits a row-major index into (row, col) clamped to the grid.
func (g *Grid) clampCell(index int) (int, int) {
	if g.Rows*g.Columns <= 0 {
		return 0, 0
	}
	if index < 0 {
		index = 0
	}
	if index >= g.Rows*g.Columns {
		index = g.Rows*g.Columns - 1
	}
	return index / g.Columns, index % g.Columns
}
