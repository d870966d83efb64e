/* file computes how a signature reads once a tile is mirrored & rotated.
 */
package wang

// Transform returns the signature as rendered after mirroring across the
// vertical axis (mirrorX), then the horizontal axis (mirrorY), then rotating
// clockwise by `rotation` * 90 degrees. The composition order is fixed so
// repeated application composes predictably.
//
// Each step permutes the 8 compass slots:
//   mirrorX    i -> (8 - i) % 8
//   mirrorY    i -> (4 - i) % 8
//   rotation   i -> (i + 2*rotation) % 8   (90 degrees = 2 of the 8 slots)
//
// Output slot j takes the value of the input slot the composed permutation
// maps onto j, so we walk the inverse here.
func Transform(s Signature, rotation int, mirrorX, mirrorY bool) Signature {
	var out Signature
	for j := 0; j < 8; j++ {
		i := mod8(j - 2*rotation)
		if mirrorY {
			i = mod8(4 - i)
		}
		if mirrorX {
			i = mod8(8 - i)
		}
		out[j] = s[i]
	}
	return out
}

// mod8 wraps an index onto the 8 compass slots, handling negatives.
func mod8(i int) int {
	return (i%8 + 8) % 8
}
