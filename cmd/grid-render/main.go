package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fogleman/gg"

	"github.com/voidshard/wang"
)

const desc = `Renders a quick connectivity preview of a stored grid.

Each cell is drawn as a square with a spoke towards every compass direction
its rendered signature connects, so seams between tiles can be eyeballed
without rasterizing any artwork. Errored cells are crossed out.`

var cli struct {
	// where to find the grid store
	Store string `short:"i" required:"" help:"grid store database file"`

	Grid string `short:"g" required:"" help:"grid id to render"`
	Set  string `short:"s" required:"" help:"catalog set name"`

	Output string `short:"o" help:"output png path. Defaults to <grid id>.preview.png"`
}

// compass direction unit offsets, clockwise from north (y down).
var spokes = [8][2]float64{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

func main() {
	kong.Parse(&cli, kong.Name("grid-render"), kong.Description(desc))

	if cli.Output == "" {
		cli.Output = fmt.Sprintf("%s.preview.png", cli.Grid)
	}
	if !fileExists(cli.Store) {
		panic(fmt.Sprintf("store file not found: %s", cli.Store))
	}

	st, err := wang.OpenGridStore(cli.Store)
	if err != nil {
		panic(err)
	}

	g, err := st.LoadGrid(cli.Grid)
	if err != nil {
		panic(err)
	}

	cat, err := st.LoadCatalog(cli.Set)
	if err != nil {
		panic(err)
	}

	size := float64(g.TileSize)
	gap := float64(g.Gap)
	dc := gg.NewContext(
		g.Columns*g.TileSize+(g.Columns-1)*g.Gap,
		g.Rows*g.TileSize+(g.Rows-1)*g.Gap,
	)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for i, p := range g.Cells {
		row := i / g.Columns
		col := i % g.Columns

		x := float64(col) * (size + gap)
		y := float64(row) * (size + gap)
		cx := x + size/2
		cy := y + size/2

		dc.SetRGB(0.85, 0.85, 0.85)
		dc.DrawRectangle(x, y, size, size)
		dc.Stroke()

		if p.IsEmpty() {
			continue
		}
		if p.IsError() {
			dc.SetRGB(0.9, 0.1, 0.1)
			dc.DrawLine(x, y, x+size, y+size)
			dc.DrawLine(x+size, y, x, y+size)
			dc.Stroke()
			continue
		}

		sig, ok := p.Rendered(cat)
		if !ok {
			continue
		}

		dc.SetRGB(0.1, 0.35, 0.8)
		dc.SetLineWidth(2)
		for dir, set := range sig {
			if !set {
				continue
			}
			// reach of size/2 per axis lands on the edge midpoint for
			// cardinal spokes & exactly on the corner for diagonals
			dx, dy := spokes[dir][0], spokes[dir][1]
			dc.DrawLine(cx, cy, cx+dx*size/2, cy+dy*size/2)
		}
		dc.Stroke()
		dc.SetLineWidth(1)
	}

	err = dc.SavePNG(cli.Output)
	if err != nil {
		panic(err)
	}
	fmt.Printf("wrote %s\n", cli.Output)
}

// fileExists checks if file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}
