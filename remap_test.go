package wang

import (
	"github.com/stretchr/testify/assert"

	"testing"
)

func TestBuildReverseIndex(t *testing.T) {
	cat := NewCatalog([]string{"y_00100000.svg", "plain.svg"})

	idx := BuildReverseIndex(cat)

	// east-only renders north-only under some rotation/mirror
	candidates := idx["10000000"]
	assert.True(t, len(candidates) > 0)
	for _, c := range candidates {
		assert.Equal(t, 0, c.Source)
		got := Transform(cat[c.Source].Signature, c.Rotation, c.MirrorX, c.MirrorY)
		assert.Equal(t, "10000000", got.String())
	}
}

func TestRemapPreservesRenderedSignature(t *testing.T) {
	// catalog A holds a north-only tile, catalog B only an east-only one;
	// the remap must find the transform of B's tile that still renders
	// north-only
	from := NewCatalog([]string{"x_10000000.svg"})
	to := NewCatalog([]string{"y_00100000.svg"})
	idx := BuildReverseIndex(to)

	p := Placement{Source: 0}
	before, ok := p.Rendered(from)
	assert.True(t, ok)

	out := RemapPlacement(p, from, to, idx)

	assert.False(t, out.IsError())
	after, ok := out.Rendered(to)
	assert.True(t, ok)
	assert.Equal(t, before, after)
	assert.Equal(t, "10000000", after.String())
}

func TestRemapPrefersNameIdentity(t *testing.T) {
	from := NewCatalog([]string{"a_10000000.svg", "b_00100000.svg"})
	to := NewCatalog([]string{"c_10001000.svg", "b_00100000.svg", "a_10000000.svg"})
	idx := BuildReverseIndex(to)

	// same artwork still exists in B at a different index: keep the
	// transform, just re-address
	p := Placement{Source: 0, Rotation: 2, MirrorX: true}
	out := RemapPlacement(p, from, to, idx)

	assert.Equal(t, Placement{Source: 2, Rotation: 2, MirrorX: true}, out)
}

func TestRemapDegradesToError(t *testing.T) {
	from := NewCatalog([]string{"x_11000000.svg"})
	to := NewCatalog([]string{"y_10101010.svg"})
	idx := BuildReverseIndex(to)

	out := RemapPlacement(Placement{Source: 0}, from, to, idx)

	assert.True(t, out.IsError())
}

func TestRemapEmptyStaysEmpty(t *testing.T) {
	from := NewCatalog([]string{"x_10000000.svg"})
	to := NewCatalog([]string{"y_00100000.svg"})
	idx := BuildReverseIndex(to)

	assert.True(t, RemapPlacement(Empty(), from, to, idx).IsEmpty())
}

func TestRemapBadSourceErrors(t *testing.T) {
	from := NewCatalog([]string{"x_10000000.svg"})
	to := NewCatalog([]string{"y_00100000.svg"})
	idx := BuildReverseIndex(to)

	assert.True(t, RemapPlacement(Placement{Source: 9}, from, to, idx).IsError())
	assert.True(t, RemapPlacement(Errored(), from, to, idx).IsError())
}

func TestRemapGridCellsFailIndependently(t *testing.T) {
	from := NewCatalog([]string{"x_10000000.svg", "odd_11100111.svg"})
	to := NewCatalog([]string{"y_00100000.svg"})

	g := &Grid{Rows: 1, Columns: 3, Cells: []Placement{
		{Source: 0}, // remappable via rotation
		{Source: 1}, // no candidate in `to`
		Empty(),
	}}

	g.Remap(from, to)

	assert.False(t, g.Cells[0].IsError())
	assert.True(t, g.Cells[1].IsError())
	assert.True(t, g.Cells[2].IsEmpty())
}
