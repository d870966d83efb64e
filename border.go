/* file derives the outward-facing signature of a composite tile: a sub-grid
of cells exported as one macro tile. Used for deterministic export names &
the correctness overlay.
*/
package wang

import (
	"fmt"
)

// DeriveBorder aggregates the rendered signatures of the cells inside
// `region` into the 8-bit connectivity of the composite as a whole.
//
// Diagonals read straight off the matching corner cell. Straight edges read
// the middle cell's slot when the crossing dimension is odd; when it is even
// they OR the two cells straddling the midpoint, each read from the slot
// facing the seam (eg. an even-width north edge ORs the left-middle cell's
// NE with the right-middle cell's NW).
func (g *Grid) DeriveBorder(region Region, c Catalog) Signature {
	rows := region.MaxRow - region.MinRow + 1
	cols := region.MaxCol - region.MinCol + 1

	at := func(row, col int) Signature {
		s, _ := g.Cells[row*g.Columns+col].Rendered(c)
		return s
	}

	var out Signature
	out[NorthWest] = at(region.MinRow, region.MinCol)[NorthWest]
	out[NorthEast] = at(region.MinRow, region.MaxCol)[NorthEast]
	out[SouthEast] = at(region.MaxRow, region.MaxCol)[SouthEast]
	out[SouthWest] = at(region.MaxRow, region.MinCol)[SouthWest]

	midCol := region.MinCol + cols/2
	if cols%2 == 1 {
		out[North] = at(region.MinRow, midCol)[North]
		out[South] = at(region.MaxRow, midCol)[South]
	} else {
		out[North] = at(region.MinRow, midCol-1)[NorthEast] || at(region.MinRow, midCol)[NorthWest]
		out[South] = at(region.MaxRow, midCol-1)[SouthEast] || at(region.MaxRow, midCol)[SouthWest]
	}

	midRow := region.MinRow + rows/2
	if rows%2 == 1 {
		out[East] = at(midRow, region.MaxCol)[East]
		out[West] = at(midRow, region.MinCol)[West]
	} else {
		out[East] = at(midRow-1, region.MaxCol)[SouthEast] || at(midRow, region.MaxCol)[NorthEast]
		out[West] = at(midRow-1, region.MinCol)[SouthWest] || at(midRow, region.MinCol)[NorthWest]
	}

	return out
}

// ExportName builds the deterministic export filename for a composite tile.
// Ordinal 0 means the signature is unique in its batch; composites sharing
// a signature get 2-digit ordinals so the signature suffix itself is never
// altered.
func ExportName(setName string, s Signature, ordinal int) string {
	if ordinal > 0 {
		return fmt.Sprintf("%s_%02d_%s.svg", setName, ordinal, s)
	}
	return fmt.Sprintf("%s_%s.svg", setName, s)
}

// ExportNames assigns filenames to a batch of derived signatures. Unique
// signatures get no ordinal; every member of a clashing group is numbered
// 01, 02, ... in batch order.
func ExportNames(setName string, sigs []Signature) []string {
	total := map[string]int{}
	for _, s := range sigs {
		total[s.String()]++
	}

	seen := map[string]int{}
	names := make([]string, len(sigs))
	for i, s := range sigs {
		key := s.String()
		if total[key] > 1 {
			seen[key]++
			names[i] = ExportName(setName, s, seen[key])
		} else {
			names[i] = ExportName(setName, s, 0)
		}
	}
	return names
}
