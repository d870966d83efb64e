/* file defines what a single grid cell holds.
 */
package wang

// Sentinel source indices. Anything >= 0 addresses a catalog entry.
const (
	// EmptySource marks a cell with nothing placed in it.
	EmptySource = -1

	// ErrorSource marks a cell whose catalog reference could not be
	// resolved (eg. after a catalog swap with no matching artwork).
	// Rendered distinctly rather than failing the whole grid.
	ErrorSource = -2
)

// Placement is one grid cell's reference into a catalog plus the transform
// it is rendered under. Owned exclusively by the cell it occupies.
type Placement struct {
	Source   int  // catalog index, or EmptySource / ErrorSource
	Rotation int  // clockwise 90 degree steps, 0..3
	MirrorX  bool // mirrored across the vertical axis
	MirrorY  bool // mirrored across the horizontal axis
}

// Empty returns the nothing-placed placement.
func Empty() Placement {
	return Placement{Source: EmptySource}
}

// Errored returns the unresolvable-reference placement.
func Errored() Placement {
	return Placement{Source: ErrorSource}
}

// IsEmpty reports whether nothing is placed in this cell.
func (p Placement) IsEmpty() bool {
	return p.Source == EmptySource
}

// IsError reports whether this cell holds an unresolvable reference.
func (p Placement) IsError() bool {
	return p.Source == ErrorSource
}

// Rendered returns the signature this placement draws with, ie. the catalog
// entry's base signature pushed through the placement's transform.
// ok=false for sentinel placements, out of range sources & artwork whose
// name carries no signature.
func (p Placement) Rendered(c Catalog) (Signature, bool) {
	if p.Source < 0 || p.Source >= len(c) {
		return Signature{}, false
	}
	e := c[p.Source]
	if !e.HasSignature {
		return Signature{}, false
	}
	return Transform(e.Signature, p.Rotation, p.MirrorX, p.MirrorY), true
}
