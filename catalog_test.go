package wang

import (
	"github.com/stretchr/testify/assert"

	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestNewCatalogParsesSignatures(t *testing.T) {
	c := NewCatalog([]string{"a_10000000.svg", "plain.svg"})

	assert.Equal(t, 2, len(c))
	assert.True(t, c[0].HasSignature)
	assert.Equal(t, "10000000", c[0].Signature.String())
	assert.False(t, c[1].HasSignature)
}

func TestCatalogFind(t *testing.T) {
	c := NewCatalog([]string{"a_10000000.svg", "b_00100000.svg"})

	assert.Equal(t, 1, c.Find("b_00100000.svg"))
	assert.Equal(t, -1, c.Find("missing.svg"))
}

func TestCatalogFileRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "wang-catalog")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	fname := filepath.Join(dir, "roads.yaml")
	c := NewCatalog([]string{"a_10000000.svg", "b_00100000.svg", "plain.svg"})

	err = WriteCatalogFile(fname, "roads", c)
	assert.Nil(t, err)

	setName, loaded, err := LoadCatalogFile(fname)
	assert.Nil(t, err)
	assert.Equal(t, "roads", setName)
	assert.Equal(t, c, loaded)
}

func TestLoadCatalogFileEmpty(t *testing.T) {
	dir, err := ioutil.TempDir("", "wang-catalog")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	fname := filepath.Join(dir, "empty.yaml")
	err = ioutil.WriteFile(fname, []byte("name: nothing\ntiles: []\n"), 0644)
	assert.Nil(t, err)

	_, _, err = LoadCatalogFile(fname)
	assert.NotNil(t, err)
}
