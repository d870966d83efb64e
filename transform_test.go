package wang

import (
	"github.com/stretchr/testify/assert"

	"testing"
)

var northOnly = Signature{true, false, false, false, false, false, false, false}

func TestTransformIdentity(t *testing.T) {
	for _, s := range []Signature{
		{},
		northOnly,
		{true, true, false, true, false, false, false, false},
		{true, true, true, true, true, true, true, true},
	} {
		assert.Equal(t, s, Transform(s, 0, false, false))
	}
}

func TestTransformRotationShiftsClockwise(t *testing.T) {
	eastOnly := Signature{false, false, true, false, false, false, false, false}

	assert.Equal(t, eastOnly, Transform(northOnly, 1, false, false))
}

func TestTransformFourRotationsReturnOriginal(t *testing.T) {
	s := Signature{true, true, false, true, false, false, true, false}

	out := s
	for i := 0; i < 4; i++ {
		out = Transform(out, 1, false, false)
	}
	assert.Equal(t, s, out)
}

func TestTransformMirrorsAreInvolutions(t *testing.T) {
	s := Signature{true, true, false, true, false, false, true, false}

	assert.Equal(t, s, Transform(Transform(s, 0, true, false), 0, true, false))
	assert.Equal(t, s, Transform(Transform(s, 0, false, true), 0, false, true))
}

func TestTransformMirrorX(t *testing.T) {
	// north-east swings to north-west across the vertical axis
	s := Signature{false, true, false, false, false, false, false, false}
	want := Signature{false, false, false, false, false, false, false, true}

	assert.Equal(t, want, Transform(s, 0, true, false))
}

func TestTransformMirrorY(t *testing.T) {
	// north drops to south across the horizontal axis
	want := Signature{false, false, false, false, true, false, false, false}

	assert.Equal(t, want, Transform(northOnly, 0, false, true))
}

func TestTransformGeneratesDihedralGroupOfEight(t *testing.T) {
	// a signature with no symmetry of its own, so every distinct group
	// element renders it differently
	s := Signature{true, true, false, true, false, false, false, false}

	seen := map[string]bool{}
	for r := 0; r < 4; r++ {
		for _, mx := range []bool{false, true} {
			for _, my := range []bool{false, true} {
				seen[Transform(s, r, mx, my).String()] = true
			}
		}
	}

	// 16 parameter combinations collapse onto exactly 8 group elements
	assert.Equal(t, 8, len(seen))
}
