package wang

import (
	"github.com/stretchr/testify/assert"

	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) (*GridStore, func()) {
	dir, err := ioutil.TempDir("", "wang-store")
	assert.Nil(t, err)

	st, err := OpenGridStore(filepath.Join(dir, "store.sqlite"))
	assert.Nil(t, err)

	return st, func() { os.RemoveAll(dir) }
}

func TestStoreGridRoundTrip(t *testing.T) {
	st, done := testStore(t)
	defer done()

	g := &Grid{Rows: 2, Columns: 3, TileSize: 32, Gap: 2, Cells: []Placement{
		{Source: 0, Rotation: 1},
		{Source: 2, MirrorX: true},
		Empty(),
		Errored(),
		{Source: 1, Rotation: 3, MirrorY: true},
		{Source: 0},
	}}

	err := st.SaveGrid("main", g)
	assert.Nil(t, err)

	loaded, err := st.LoadGrid("main")
	assert.Nil(t, err)
	assert.Equal(t, g, loaded)
}

func TestStoreSaveGridShrinksCleanly(t *testing.T) {
	st, done := testStore(t)
	defer done()

	big := &Grid{Rows: 2, Columns: 2, TileSize: 16, Gap: 0, Cells: []Placement{
		{Source: 0}, {Source: 1}, {Source: 2}, {Source: 3},
	}}
	assert.Nil(t, st.SaveGrid("g", big))

	small := &Grid{Rows: 1, Columns: 2, TileSize: 16, Gap: 0, Cells: []Placement{
		{Source: 3}, {Source: 2},
	}}
	assert.Nil(t, st.SaveGrid("g", small))

	loaded, err := st.LoadGrid("g")
	assert.Nil(t, err)
	assert.Equal(t, small, loaded)
}

func TestStoreLoadMissingGrid(t *testing.T) {
	st, done := testStore(t)
	defer done()

	_, err := st.LoadGrid("nope")
	assert.NotNil(t, err)
}

func TestStoreCatalogRoundTrip(t *testing.T) {
	st, done := testStore(t)
	defer done()

	c := NewCatalog([]string{"a_10000000.svg", "b_00100000.svg"})
	assert.Nil(t, st.SaveCatalog("roads", c))

	loaded, err := st.LoadCatalog("roads")
	assert.Nil(t, err)
	assert.Equal(t, c, loaded)
}

func TestStoredGridCells(t *testing.T) {
	st, done := testStore(t)
	defer done()

	g := &Grid{Rows: 1, Columns: 2, TileSize: 16, Gap: 0, Cells: []Placement{Empty(), Empty()}}
	assert.Nil(t, st.SaveGrid("g", g))

	sg := st.Grid("g")
	err := sg.Set(1, Placement{Source: 4, Rotation: 2})
	assert.Nil(t, err)

	p, err := sg.At(1)
	assert.Nil(t, err)
	assert.Equal(t, Placement{Source: 4, Rotation: 2}, p)

	p, err = sg.At(0)
	assert.Nil(t, err)
	assert.True(t, p.IsEmpty())
}
