/* file rewrites placements when the active artwork catalog is swapped out.
Placements address a catalog by index, so a swap invalidates every cell; the
remapper rebuilds them so each cell keeps rendering the connectivity it
rendered before.
*/
package wang

// Candidate is one way a catalog can render a particular signature:
// entry `Source` drawn under the given transform.
type Candidate struct {
	Source   int
	Rotation int
	MirrorX  bool
	MirrorY  bool
}

// ReverseIndex maps rendered signature strings to every (entry, transform)
// combination in a catalog producing them.
type ReverseIndex map[string][]Candidate

// mirror combos in preference order: unmirrored renderings index first, so
// a remap favours a pure rotation over a mirrored equivalent.
var mirrorCombos = [4][2]bool{{false, false}, {true, false}, {false, true}, {true, true}}

// BuildReverseIndex computes all 16 renderings (4 rotations x 4 mirror
// combinations) of every parseable entry in the catalog & indexes each
// resulting signature back to its candidates.
func BuildReverseIndex(c Catalog) ReverseIndex {
	idx := ReverseIndex{}
	for src, e := range c {
		if !e.HasSignature {
			continue
		}
		for _, m := range mirrorCombos {
			for r := 0; r < 4; r++ {
				key := Transform(e.Signature, r, m[0], m[1]).String()
				idx[key] = append(idx[key], Candidate{Source: src, Rotation: r, MirrorX: m[0], MirrorY: m[1]})
			}
		}
	}
	return idx
}

// RemapPlacement rewrites one placement from catalog `from` to catalog `to`.
//
// If the same artwork (by name) still exists in `to` the placement keeps its
// transform & just takes the new index. Otherwise we look up the placement's
// rendered signature in `to`'s reverse index & take the first candidate:
// same rendered connectivity through a different entry/transform native to
// `to`. With no candidate at all the cell degrades to the error sentinel;
// neighbouring cells remap independently.
func RemapPlacement(p Placement, from, to Catalog, idx ReverseIndex) Placement {
	if p.IsEmpty() {
		return p
	}
	if p.Source < 0 || p.Source >= len(from) {
		return Errored()
	}

	if i := to.Find(from[p.Source].Name); i >= 0 {
		p.Source = i
		return p
	}

	rendered, ok := p.Rendered(from)
	if !ok {
		return Errored()
	}

	candidates := idx[rendered.String()]
	if len(candidates) == 0 {
		return Errored()
	}

	c := candidates[0]
	return Placement{Source: c.Source, Rotation: c.Rotation, MirrorX: c.MirrorX, MirrorY: c.MirrorY}
}

// Remap rewrites every cell of the grid from catalog `from` to catalog `to`,
// preserving each cell's rendered connectivity wherever `to` can produce it.
func (g *Grid) Remap(from, to Catalog) {
	idx := BuildReverseIndex(to)
	for i, p := range g.Cells {
		g.Cells[i] = RemapPlacement(p, from, to, idx)
	}
}
