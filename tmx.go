/* this file writes a composed grid out as a simplified TMX map
(doc.mapeditor.org/en/stable/) so finished grids can be opened in standard
tile tooling.

We only emit the small part of TMX we need:
- one tileset, built from the catalog (one tile per entry, in order)
- one tile layer, CSV encoded, no compression
- the 'orthogonal' orientation
Placement rotation/mirror is carried in the gid flip bits, so the exported
map renders each cell exactly as the editor did.
*/
package wang

import (
	"bytes"
	"encoding/xml"
	"io"
	"io/ioutil"
	"strconv"
	"strings"
)

// TMX gid flip flags, per the TMX global-tile-id spec.
const (
	flipHorizontal = uint32(0x80000000)
	flipVertical   = uint32(0x40000000)
	flipDiagonal   = uint32(0x20000000)
)

// TMXMap is a TMX file structure representing the map as a whole.
type TMXMap struct {
	XMLName        xml.Name       `xml:"map"`
	Orientation    string         `xml:"orientation,attr"`
	Width          int            `xml:"width,attr"`      // in tiles
	Height         int            `xml:"height,attr"`     // in tiles
	TileWidth      int            `xml:"tilewidth,attr"`  // in pixels
	TileHeight     int            `xml:"tileheight,attr"` // in pixels
	RootProperties []*TMXProperty `xml:"properties>property"`
	Tilesets       []*TMXTileset  `xml:"tileset"`
	TileLayers     []*TMXLayer    `xml:"layer"`
}

// TMXTileset represents a Tiled tileset.
type TMXTileset struct {
	FirstGID   uint       `xml:"firstgid,attr"`
	Name       string     `xml:"name,attr"`
	TileWidth  int        `xml:"tilewidth,attr"`
	TileHeight int        `xml:"tileheight,attr"`
	Tiles      []*TMXTile `xml:"tile"`
}

// TMXTile is a single tileset tile referencing its source image.
type TMXTile struct {
	ID    uint      `xml:"id,attr"`
	Image *TMXImage `xml:"image"`
}

// TMXImage is an image file reference in TMX.
type TMXImage struct {
	Source string `xml:"source,attr"`
	Width  int    `xml:"width,attr"`
	Height int    `xml:"height,attr"`
}

// TMXProperty holds a Tiled property.
type TMXProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Type  string `xml:"type,attr"`
}

// TMXLayer holds one tile layer.
type TMXLayer struct {
	ID     uint    `xml:"id,attr"`
	Name   string  `xml:"name,attr"`
	Width  int     `xml:"width,attr"`
	Height int     `xml:"height,attr"`
	Data   TMXData `xml:"data"`
}

// TMXData is the layer payload.
type TMXData struct {
	Encoding string `xml:"encoding,attr"`
	RawData  []byte `xml:",innerxml"`
}

// ExportTMX encodes the grid as TMX XML onto a writer. Empty & errored
// cells become the nil tile (gid 0).
func ExportTMX(g *Grid, c Catalog, setName string, w io.Writer) error {
	ts := &TMXTileset{
		FirstGID:   1,
		Name:       setName,
		TileWidth:  g.TileSize,
		TileHeight: g.TileSize,
		Tiles:      make([]*TMXTile, len(c)),
	}
	for i, e := range c {
		ts.Tiles[i] = &TMXTile{
			ID:    uint(i),
			Image: &TMXImage{Source: e.Name, Width: g.TileSize, Height: g.TileSize},
		}
	}

	gids := make([]uint32, len(g.Cells))
	for i, p := range g.Cells {
		if p.Source < 0 || p.Source >= len(c) {
			continue // nil tile
		}
		gids[i] = (uint32(p.Source) + uint32(ts.FirstGID)) | flipBits(p)
	}

	layer := &TMXLayer{
		ID:     1,
		Name:   "0",
		Width:  g.Columns,
		Height: g.Rows,
		Data:   TMXData{Encoding: "csv", RawData: encodeCSV(g.Columns, g.Rows, gids)},
	}

	m := &TMXMap{
		Orientation: "orthogonal",
		Width:       g.Columns,
		Height:      g.Rows,
		TileWidth:   g.TileSize,
		TileHeight:  g.TileSize,
		RootProperties: []*TMXProperty{
			{Name: "set", Value: setName, Type: "string"},
		},
		Tilesets:   []*TMXTileset{ts},
		TileLayers: []*TMXLayer{layer},
	}

	return xml.NewEncoder(w).Encode(m)
}

// WriteTMXFile encodes the grid as TMX & writes it to disk.
func WriteTMXFile(fname string, g *Grid, c Catalog, setName string) error {
	buff := bytes.Buffer{}
	err := ExportTMX(g, c, setName, &buff)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fname, buff.Bytes(), 0644)
}

// flipBits maps a placement's transform onto the TMX diagonal/horizontal/
// vertical flip flags. Both express the same dihedral group, they just
// factor it differently: we compose mirrorX, mirrorY then rotation; Tiled
// applies the diagonal flip first, then horizontal & vertical.
func flipBits(p Placement) uint32 {
	m := mat{1, 0, 0, 1}
	if p.MirrorX {
		m = matMul(mat{-1, 0, 0, 1}, m)
	}
	if p.MirrorY {
		m = matMul(mat{1, 0, 0, -1}, m)
	}
	rot := mat{0, -1, 1, 0} // 90 degrees clockwise, y-down coords
	for i := 0; i < mod4(p.Rotation); i++ {
		m = matMul(rot, m)
	}

	for flags, candidate := range flipTable() {
		if candidate == m {
			return flags
		}
	}
	return 0 // unreachable, the table covers the whole group
}

// flipTable enumerates the transform matrix produced by every flag combo.
func flipTable() map[uint32]mat {
	h := mat{-1, 0, 0, 1}
	v := mat{1, 0, 0, -1}
	d := mat{0, 1, 1, 0}

	table := map[uint32]mat{}
	for _, combo := range []uint32{
		0,
		flipHorizontal,
		flipVertical,
		flipDiagonal,
		flipHorizontal | flipVertical,
		flipHorizontal | flipDiagonal,
		flipVertical | flipDiagonal,
		flipHorizontal | flipVertical | flipDiagonal,
	} {
		m := mat{1, 0, 0, 1}
		if combo&flipDiagonal != 0 {
			m = matMul(d, m)
		}
		if combo&flipVertical != 0 {
			m = matMul(v, m)
		}
		if combo&flipHorizontal != 0 {
			m = matMul(h, m)
		}
		table[combo] = m
	}
	return table
}

// mat is a 2x2 integer matrix {a, b, c, d} for [[a b] [c d]].
type mat [4]int

func matMul(a, b mat) mat {
	return mat{
		a[0]*b[0] + a[1]*b[2], a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2], a[2]*b[1] + a[3]*b[3],
	}
}

func mod4(i int) int {
	return (i%4 + 4) % 4
}

// encodeCSV turns the gid list into TMX csv layer data.
func encodeCSV(width, height int, in []uint32) []byte {
	values := make([]string, height)

	for row := 0; row < height; row++ {
		csvrow := make([]string, width)
		for col := 0; col < width; col++ {
			csvrow[col] = strconv.FormatUint(uint64(in[row*width+col]), 10)
		}
		values[row] = strings.Join(csvrow, ",")
	}

	return []byte("\n" + strings.Join(values, ",\n") + "\n")
}
