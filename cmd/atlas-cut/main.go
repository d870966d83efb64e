package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/ioutil"

	"github.com/alecthomas/kong"
	"github.com/nfnt/resize"

	"github.com/voidshard/wang"
)

const desc = `Cuts a tile atlas image into individual tile images.

Tiles are cut left-to-right, top-to-bottom & resized to the target size.
Given a catalog manifest the cut tiles are named after its entries in order
(so artwork names keep their _<8 binary digits> connectivity suffix);
otherwise they're named <name>.<row>.<col>.png.`

var cli struct {
	// input atlas image to cut tiles out of
	Input string `short:"i" required:"" help:"input atlas image"`

	// name prefix for output images
	Name string `short:"n" default:"out" help:"output name"`

	// how wide/high each tile is within the atlas, in pixels
	TileWidth  int `default:"32" help:"width of each atlas tile in px"`
	TileHeight int `default:"32" help:"height of each atlas tile in px"`

	// resize each cut tile to this square size (0: keep atlas size)
	Size int `default:"0" help:"resize cut tiles to this size in px"`

	// name cut tiles after a catalog manifest's entries
	Catalog string `short:"c" help:"catalog manifest (yaml) to take tile names from"`
}

func main() {
	kong.Parse(&cli, kong.Name("atlas-cut"), kong.Description(desc))

	imgdata, err := ioutil.ReadFile(cli.Input)
	if err != nil {
		panic(err)
	}

	in, err := decode(imgdata)
	if err != nil {
		panic(err)
	}

	names := []string{}
	if cli.Catalog != "" {
		_, cat, err := wang.LoadCatalogFile(cli.Catalog)
		if err != nil {
			panic(err)
		}
		for _, e := range cat {
			names = append(names, e.Name)
		}
	}

	bnds := in.Bounds()
	tilesWide := (bnds.Max.X - bnds.Min.X) / cli.TileWidth
	tilesHigh := (bnds.Max.Y - bnds.Min.Y) / cli.TileHeight

	cut := 0
	for ty := 0; ty < tilesHigh; ty++ {
		for tx := 0; tx < tilesWide; tx++ {
			if len(names) > 0 && cut >= len(names) {
				return // catalog exhausted, remaining atlas tiles are padding
			}

			tile := image.NewRGBA(image.Rect(0, 0, cli.TileWidth, cli.TileHeight))
			draw.Draw(
				tile,
				tile.Bounds(),
				in,
				image.Pt(bnds.Min.X+tx*cli.TileWidth, bnds.Min.Y+ty*cli.TileHeight),
				draw.Src,
			)

			var out image.Image = tile
			if cli.Size > 0 && cli.Size != cli.TileWidth {
				out = resize.Resize(uint(cli.Size), uint(cli.Size), tile, resize.Lanczos3)
			}

			fname := fmt.Sprintf("%s.%d.%d.png", cli.Name, ty, tx)
			if len(names) > 0 {
				fname = names[cut]
			}

			err = savePng(fname, out)
			if err != nil {
				panic(err)
			}
			cut++
		}
	}
}

func decode(data []byte) (image.Image, error) {
	decoders := []func(io.Reader) (image.Image, error){
		png.Decode,
		gif.Decode,
		jpeg.Decode,
	}

	var lastErr error
	for _, decoder := range decoders {
		im, err := decoder(bytes.NewBuffer(data))
		if err == nil {
			return im, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

// savePng to disk
func savePng(fpath string, in image.Image) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, in)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}
