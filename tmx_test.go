package wang

import (
	"github.com/stretchr/testify/assert"

	"bytes"
	"encoding/xml"
	"strings"
	"testing"
)

func TestExportTMX(t *testing.T) {
	cat := NewCatalog([]string{"grass_00000000.svg", "path.ns_10001000.svg"})
	g := &Grid{Rows: 2, Columns: 2, TileSize: 32, Gap: 0, Cells: []Placement{
		{Source: 0},
		{Source: 1},
		Empty(),
		{Source: 1, Rotation: 1},
	}}

	buf := bytes.Buffer{}
	err := ExportTMX(g, cat, "fields", &buf)

	assert.Nil(t, err)

	out := TMXMap{}
	err = xml.NewDecoder(bytes.NewBuffer(buf.Bytes())).Decode(&out)
	assert.Nil(t, err)

	assert.Equal(t, "orthogonal", out.Orientation)
	assert.Equal(t, 2, out.Width)
	assert.Equal(t, 2, out.Height)
	assert.Equal(t, 1, len(out.Tilesets))
	assert.Equal(t, 2, len(out.Tilesets[0].Tiles))
	assert.Equal(t, "grass_00000000.svg", out.Tilesets[0].Tiles[0].Image.Source)
	assert.Equal(t, 1, len(out.TileLayers))

	// empty cell becomes gid 0, rotation 1 carries diagonal+horizontal flips
	csv := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' {
			return r
		}
		return -1
	}, string(out.TileLayers[0].Data.RawData))
	gids := strings.Split(csv, ",")

	assert.Equal(t, 4, len(gids))
	assert.Equal(t, "1", gids[0])
	assert.Equal(t, "2", gids[1])
	assert.Equal(t, "0", gids[2])
	assert.Equal(t, "2684354562", gids[3]) // 2 | 0xA0000000
}

func TestFlipBits(t *testing.T) {
	cases := []struct {
		p    Placement
		want uint32
	}{
		{Placement{}, 0},
		{Placement{Rotation: 1}, flipDiagonal | flipHorizontal},
		{Placement{Rotation: 2}, flipHorizontal | flipVertical},
		{Placement{Rotation: 3}, flipDiagonal | flipVertical},
		{Placement{MirrorX: true}, flipHorizontal},
		{Placement{MirrorY: true}, flipVertical},
		{Placement{MirrorX: true, MirrorY: true}, flipHorizontal | flipVertical},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, flipBits(c.p), "%+v", c.p)
	}
}

func TestFlipBitsCoversTheWholeGroup(t *testing.T) {
	// every (rotation, mirror) combination maps to a flag combo & the
	// mapping respects the group: 8 distinct flag values over 16 inputs
	seen := map[uint32]bool{}
	for r := 0; r < 4; r++ {
		for _, mx := range []bool{false, true} {
			for _, my := range []bool{false, true} {
				seen[flipBits(Placement{Rotation: r, MirrorX: mx, MirrorY: my})] = true
			}
		}
	}
	assert.Equal(t, 8, len(seen))
}
