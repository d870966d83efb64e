/* file implements single-cell & region-bounded bulk edits: the only paths
that mutate a grid's cells (the remapper aside).
*/
package wang

import (
	"math/rand"
)

// Brush decides what a painted cell becomes. Variants carry only the fields
// valid for them; see RandomBrush, EraseBrush & FixedBrush.
type Brush interface {
	// apply returns the placement the brushed cell should now hold.
	apply(previous Placement, catalogSize int, rng *rand.Rand) Placement
}

// RandomBrush places a randomly chosen tile guaranteed to differ from
// whatever the cell held before. With one or fewer tiles to choose from
// there's nothing different to pick, so it's a no-op.
type RandomBrush struct{}

func (RandomBrush) apply(previous Placement, catalogSize int, rng *rand.Rand) Placement {
	if catalogSize <= 1 {
		return previous
	}

	src := rng.Intn(catalogSize)
	if previous.Source >= 0 && previous.Source < catalogSize {
		// draw from the other catalogSize-1 entries
		src = rng.Intn(catalogSize - 1)
		if src >= previous.Source {
			src++
		}
	}
	return Placement{Source: src, Rotation: rng.Intn(4)}
}

// EraseBrush empties the cell.
type EraseBrush struct{}

func (EraseBrush) apply(Placement, int, *rand.Rand) Placement {
	return Empty()
}

// FixedBrush stamps one exact placement regardless of what was there.
type FixedBrush struct {
	Source   int
	Rotation int
	MirrorX  bool
	MirrorY  bool
}

func (b FixedBrush) apply(Placement, int, *rand.Rand) Placement {
	return Placement{Source: b.Source, Rotation: b.Rotation, MirrorX: b.MirrorX, MirrorY: b.MirrorY}
}

// FillMode selects which cells inside a filled region are eligible.
type FillMode int

const (
	// FillEmpty mutates only cells currently holding a sentinel
	// (empty or errored); populated cells are left alone.
	FillEmpty FillMode = iota

	// FillAll mutates every cell in the region.
	FillAll
)

// PaintCell applies the brush to exactly one cell.
func (g *Grid) PaintCell(index int, b Brush, catalogSize int, rng *rand.Rand) error {
	prev, err := g.At(index)
	if err != nil {
		return err
	}
	return g.Set(index, b.apply(prev, catalogSize, rng))
}

// FillRegion applies the brush to the cells of `region`, visiting them in a
// fixed clockwise spiral from the region's top-left corner inward. Cells
// covered by any locked region are skipped, even when the lock only partly
// overlaps the target. Cells outside `region` are never read or written.
//
// Returns the row-major indices of the cells mutated, in visit order.
func (g *Grid) FillRegion(region Region, b Brush, mode FillMode, locked []Region, catalogSize int, rng *rand.Rand) []int {
	changed := []int{}

	for _, cell := range spiralOrder(region) {
		if lockedAt(locked, cell.row, cell.col) {
			continue
		}

		index := cell.row*g.Columns + cell.col
		prev := g.Cells[index]

		if mode == FillEmpty && !prev.IsEmpty() && !prev.IsError() {
			continue
		}

		next := b.apply(prev, catalogSize, rng)
		if next == prev {
			continue
		}

		g.Cells[index] = next
		changed = append(changed, index)
	}
	return changed
}

// lockedAt reports whether any locked region covers the cell.
func lockedAt(locked []Region, row, col int) bool {
	for _, l := range locked {
		if l.Contains(row, col) {
			return true
		}
	}
	return false
}

type gridCell struct {
	row int
	col int
}

// spiralOrder lists the region's cells in a deterministic clockwise inward
// spiral anchored at (MinRow, MinCol). The order is purely a function of the
// region rectangle, never of grid contents, so repeated fills with a fixed
// brush are reproducible.
func spiralOrder(r Region) []gridCell {
	top, bottom := r.MinRow, r.MaxRow
	left, right := r.MinCol, r.MaxCol

	cells := []gridCell{}
	for top <= bottom && left <= right {
		for col := left; col <= right; col++ {
			cells = append(cells, gridCell{top, col})
		}
		top++

		for row := top; row <= bottom; row++ {
			cells = append(cells, gridCell{row, right})
		}
		right--

		if top <= bottom {
			for col := right; col >= left; col-- {
				cells = append(cells, gridCell{bottom, col})
			}
			bottom--
		}

		if left <= right {
			for row := bottom; row >= top; row-- {
				cells = append(cells, gridCell{row, left})
			}
			left++
		}
	}
	return cells
}
