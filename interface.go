package wang

// Editable represents a grid whose cells we can read & write by row-major
// index, whether it lives in memory or in a store.
type Editable interface {
	// At returns the placement at the given cell index
	At(index int) (Placement, error)

	// Set writes the placement at the given cell index
	Set(index int, p Placement) error
}

var (
	_ Editable = (*Grid)(nil)
	_ Editable = (*StoredGrid)(nil)
)
