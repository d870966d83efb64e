/* file holds the artwork catalog: the ordered set of named tiles a grid
places. Catalogs are supplied externally & read-only to the engine; the index
position of an entry is the addressing key placements use.
*/
package wang

import (
	"fmt"
	"io/ioutil"

	"github.com/go-yaml/yaml"
)

// CatalogEntry is one named tile artwork plus its parsed signature (if the
// name carries one).
type CatalogEntry struct {
	Name         string
	Signature    Signature
	HasSignature bool
}

// Catalog is an ordered collection of tile artworks.
type Catalog []CatalogEntry

// NewCatalog builds a catalog from an ordered list of artwork names,
// parsing each name for a connectivity signature.
func NewCatalog(names []string) Catalog {
	c := make(Catalog, len(names))
	for i, n := range names {
		sig, ok := ParseSignature(n)
		c[i] = CatalogEntry{Name: n, Signature: sig, HasSignature: ok}
	}
	return c
}

// Find returns the index of the entry with the given name, or -1.
// Identity is the name string itself; object identity doesn't survive
// catalog swaps.
func (c Catalog) Find(name string) int {
	for i, e := range c {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// catalogManifest is the on-disk YAML shape of a catalog.
type catalogManifest struct {
	Name  string   `yaml:"name"`
	Tiles []string `yaml:"tiles"`
}

// LoadCatalogFile reads a catalog manifest (YAML: a set name plus an ordered
// tile name list) & returns the set name and parsed catalog.
func LoadCatalogFile(fname string) (string, Catalog, error) {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		return "", nil, err
	}

	m := catalogManifest{}
	err = yaml.Unmarshal(data, &m)
	if err != nil {
		return "", nil, err
	}
	if len(m.Tiles) == 0 {
		return "", nil, fmt.Errorf("catalog %s lists no tiles", fname)
	}

	return m.Name, NewCatalog(m.Tiles), nil
}

// WriteCatalogFile writes a catalog manifest to disk.
func WriteCatalogFile(fname, setName string, c Catalog) error {
	m := catalogManifest{Name: setName, Tiles: make([]string, len(c))}
	for i, e := range c {
		m.Tiles[i] = e.Name
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fname, data, 0644)
}
