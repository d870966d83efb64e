package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"

	"github.com/voidshard/wang"
)

const desc = `Derives composite tile export names from a stored grid.

The grid is split into macro tiles of the given size; each macro tile's
outward facing connectivity is derived from its cells & rendered into a
deterministic export filename (<set>_<8 binary digits>.svg, with a 2-digit
ordinal inserted when multiple macro tiles share a signature).
Optionally also writes the whole grid out as a .tmx map.`

var cli struct {
	// where to find the grid store (defaults to ~/.wang/store.sqlite)
	Store string `short:"i" help:"grid store database file"`

	// which grid & catalog set to read
	Grid string `short:"g" required:"" help:"grid id to export"`
	Set  string `short:"s" required:"" help:"catalog set name"`

	// macro tile dimensions, in cells
	Rows    int `default:"2" help:"rows per composite tile"`
	Columns int `default:"2" help:"columns per composite tile"`

	// also write the composed grid as a tmx map
	Tmx string `help:"write the grid to this .tmx file as well"`
}

func main() {
	kong.Parse(&cli, kong.Name("grid-export"), kong.Description(desc))

	if cli.Store == "" {
		home, err := homedir.Dir()
		if err != nil {
			panic(err)
		}
		cli.Store = filepath.Join(home, ".wang", "store.sqlite")
	}
	if !fileExists(cli.Store) {
		panic(fmt.Sprintf("store file not found: %s", cli.Store))
	}
	if cli.Rows < 1 || cli.Columns < 1 {
		panic("composite tile dimensions must be at least 1x1")
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

	sigs := []wang.Signature{}
	for top := 0; top+cli.Rows <= g.Rows; top += cli.Rows {
		for left := 0; left+cli.Columns <= g.Columns; left += cli.Columns {
			region := g.RegionBetween(
				top*g.Columns+left,
				(top+cli.Rows-1)*g.Columns+left+cli.Columns-1,
			)
			sigs = append(sigs, g.DeriveBorder(region, cat))
		}
	}

	for _, name := range wang.ExportNames(cli.Set, sigs) {
		fmt.Println(name)
	}

	if cli.Tmx != "" {
		err = wang.WriteTMXFile(cli.Tmx, g, cat, cli.Set)
		if err != nil {
			panic(err)
		}
		fmt.Printf("wrote %s\n", cli.Tmx)
	}
}

// fileExists checks if file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return !info.IsDir()
}
