/* file handles encoding / decoding connectivity signatures from tile image names.
 */
package wang

import (
	"strings"
)

// Compass slot indices into a Signature, clockwise from north.
const (
	North = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Signature encodes which of a tile's 8 compass-ordered edges & corners
// connect to a neighbouring tile. Slot 0 is north, slots run clockwise.
type Signature [8]bool

// ParseSignature reads a connectivity signature out of a tile image name.
// A name carries a signature iff it looks like <anything>_<8 binary digits>.<ext>
// eg. "path.dirt_10110000.svg".
// Names of any other shape return ok=false; that's not an error, it just
// means the tile has no connectivity data.
func ParseSignature(name string) (Signature, bool) {
	var s Signature

	dot := strings.LastIndex(name, ".")
	if dot <= 0 || dot == len(name)-1 {
		return s, false
	}

	base := name[:dot]
	under := strings.LastIndex(base, "_")
	if under < 0 || len(base)-under-1 != 8 {
		return s, false
	}

	for i, r := range base[under+1:] {
		switch r {
		case '1':
			s[i] = true
		case '0':
			// unset
		default:
			return Signature{}, false
		}
	}
	return s, true
}

// String renders the signature back to its 8 digit form, in compass order.
// This is the suffix used to build deterministic export names.
func (s Signature) String() string {
	out := make([]byte, 8)
	for i, set := range s {
		if set {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
