/* file persists grids & catalogs to sqlite so editing sessions survive the
process. The engine itself never touches the store; callers load a grid,
mutate it through the brush/fill/remap paths & save it back (or edit cells
in place through a StoredGrid handle).
*/
package wang

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const (
	sqlUpdateGrid = `INSERT INTO grids (id, rows, columns, tilesize, gap) VALUES (:id, :rows, :columns, :tilesize, :gap)
		ON CONFLICT (id) DO UPDATE SET rows=EXCLUDED.rows, columns=EXCLUDED.columns, tilesize=EXCLUDED.tilesize, gap=EXCLUDED.gap;`
	sqlUpdateCell = `INSERT INTO cells (id, grid_id, idx, source, rotation, mirror_x, mirror_y)
		VALUES (:id, :grid_id, :idx, :source, :rotation, :mirror_x, :mirror_y)
		ON CONFLICT (id) DO UPDATE SET source=EXCLUDED.source, rotation=EXCLUDED.rotation, mirror_x=EXCLUDED.mirror_x, mirror_y=EXCLUDED.mirror_y;`
	sqlUpdateTile = `INSERT INTO catalog_tiles (id, set_name, idx, name) VALUES (:id, :set_name, :idx, :name)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name;`
)

// NewGridStore creates a store under a random name in the os tempdir.
func NewGridStore() (*GridStore, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fname := filepath.Join(os.TempDir(), fmt.Sprintf("wangstore.%d.sqlite", rng.Intn(1000000)))
	return OpenGridStore(fname)
}

// OpenGridStore opens (or creates) a grid store database file.
func OpenGridStore(fname string) (*GridStore, error) {
	db, err := sqlx.Open("sqlite3", fname)
	if err != nil {
		return nil, err
	}

	st := &GridStore{db: db, filename: fname}
	return st, st.init()
}

// GridStore holds any number of named grids & catalog sets in one sqlite
// file, in the layout the engine works with (flat row-major cell arenas).
type GridStore struct {
	filename string
	db       *sqlx.DB
}

// Filename returns the path to the store on disk.
func (st *GridStore) Filename() string {
	return st.filename
}

// SaveGrid writes the grid (geometry & every cell) under the given id.
// Cell writes happen in one transaction so a half-saved grid is never
// visible.
func (st *GridStore) SaveGrid(id string, g *Grid) error {
	_, err := st.db.NamedExec(sqlUpdateGrid, map[string]interface{}{
		"id": id, "rows": g.Rows, "columns": g.Columns, "tilesize": g.TileSize, "gap": g.Gap,
	})
	if err != nil {
		return err
	}

	txn, err := st.db.Beginx()
	if err != nil {
		return err
	}

	_, err = txn.NamedExec(`DELETE FROM cells WHERE grid_id=:grid_id AND idx>=:count;`, map[string]interface{}{
		"grid_id": id, "count": len(g.Cells),
	})
	if err != nil {
		txn.Rollback()
		return err
	}

	for i, p := range g.Cells {
		_, err = txn.NamedExec(sqlUpdateCell, newDBCell(id, i, p))
		if err != nil {
			txn.Rollback()
			return err
		}
	}
	return txn.Commit()
}

// LoadGrid reads a grid back by id. Cells missing from the db (never saved)
// come back empty; the rows*columns invariant always holds on the result.
func (st *GridStore) LoadGrid(id string) (*Grid, error) {
	rows, err := st.db.NamedQuery(
		`SELECT rows, columns, tilesize, gap FROM grids WHERE id=:id LIMIT 1;`,
		map[string]interface{}{"id": id},
	)
	if err != nil {
		return nil, err
	}

	geo := dbGrid{}
	found := false
	for rows.Next() { // at most one due to LIMIT 1
		rows.StructScan(&geo)
		found = true
	}
	if !found {
		return nil, fmt.Errorf("no grid with id %s", id)
	}

	g := &Grid{
		Rows:     geo.Rows,
		Columns:  geo.Columns,
		TileSize: geo.TileSize,
		Gap:      geo.Gap,
		Cells:    make([]Placement, geo.Rows*geo.Columns),
	}
	for i := range g.Cells {
		g.Cells[i] = Empty()
	}

	crows, err := st.db.NamedQuery(
		`SELECT idx, source, rotation, mirror_x, mirror_y FROM cells WHERE grid_id=:grid_id;`,
		map[string]interface{}{"grid_id": id},
	)
	if err != nil {
		return nil, err
	}

	cell := dbCell{}
	for crows.Next() {
		err = crows.StructScan(&cell)
		if err != nil {
			return nil, err
		}
		if cell.Idx < 0 || cell.Idx >= len(g.Cells) {
			continue
		}
		g.Cells[cell.Idx] = Placement{
			Source:   cell.Source,
			Rotation: cell.Rotation,
			MirrorX:  cell.MirrorX,
			MirrorY:  cell.MirrorY,
		}
	}

	return g, nil
}

// SaveCatalog writes a catalog set (ordered tile names) under a set name.
func (st *GridStore) SaveCatalog(setName string, c Catalog) error {
	txn, err := st.db.Beginx()
	if err != nil {
		return err
	}

	_, err = txn.NamedExec(`DELETE FROM catalog_tiles WHERE set_name=:set_name AND idx>=:count;`, map[string]interface{}{
		"set_name": setName, "count": len(c),
	})
	if err != nil {
		txn.Rollback()
		return err
	}

	for i, e := range c {
		_, err = txn.NamedExec(sqlUpdateTile, map[string]interface{}{
			"id": fmt.Sprintf("%s-%d", setName, i), "set_name": setName, "idx": i, "name": e.Name,
		})
		if err != nil {
			txn.Rollback()
			return err
		}
	}
	return txn.Commit()
}

// LoadCatalog reads a catalog set back in index order, re-parsing each
// name's signature.
func (st *GridStore) LoadCatalog(setName string) (Catalog, error) {
	rows, err := st.db.NamedQuery(
		`SELECT idx, name FROM catalog_tiles WHERE set_name=:set_name ORDER BY idx ASC;`,
		map[string]interface{}{"set_name": setName},
	)
	if err != nil {
		return nil, err
	}

	names := []string{}
	tile := dbTile{}
	for rows.Next() {
		err = rows.StructScan(&tile)
		if err != nil {
			return nil, err
		}
		names = append(names, tile.Name)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("no catalog set named %s", setName)
	}
	return NewCatalog(names), nil
}

// Grid returns a per-cell read/write handle onto a stored grid.
func (st *GridStore) Grid(id string) *StoredGrid {
	return &StoredGrid{store: st, id: id}
}

// StoredGrid edits a stored grid's cells in place, one row at a time,
// without loading the whole arena.
type StoredGrid struct {
	store *GridStore
	id    string
}

// At returns the placement at the given row-major index (empty if the cell
// was never written).
func (sg *StoredGrid) At(index int) (Placement, error) {
	rows, err := sg.store.db.NamedQuery(
		`SELECT idx, source, rotation, mirror_x, mirror_y FROM cells WHERE grid_id=:grid_id AND idx=:idx LIMIT 1;`,
		map[string]interface{}{"grid_id": sg.id, "idx": index},
	)
	if err != nil {
		return Placement{}, err
	}

	p := Empty()
	cell := dbCell{}
	for rows.Next() { // at most one due to LIMIT 1
		err = rows.StructScan(&cell)
		if err != nil {
			return Placement{}, err
		}
		p = Placement{Source: cell.Source, Rotation: cell.Rotation, MirrorX: cell.MirrorX, MirrorY: cell.MirrorY}
	}
	return p, nil
}

// Set writes the placement at the given row-major index.
func (sg *StoredGrid) Set(index int, p Placement) error {
	_, err := sg.store.db.NamedExec(sqlUpdateCell, newDBCell(sg.id, index, p))
	return err
}

// init creates the store tables if they don't exist.
func (st *GridStore) init() error {
	for _, create := range []string{
		`CREATE TABLE IF NOT EXISTS grids(
			id TEXT PRIMARY KEY,
			rows INTEGER NOT NULL,
			columns INTEGER NOT NULL,
			tilesize INTEGER NOT NULL,
			gap INTEGER NOT NULL
		    );`,
		`CREATE TABLE IF NOT EXISTS cells(
			id TEXT PRIMARY KEY,
			grid_id TEXT NOT NULL,
			idx INTEGER NOT NULL,
			source INTEGER NOT NULL,
			rotation INTEGER NOT NULL,
			mirror_x INTEGER NOT NULL,
			mirror_y INTEGER NOT NULL
		    );`,
		`CREATE TABLE IF NOT EXISTS catalog_tiles(
			id TEXT PRIMARY KEY,
			set_name TEXT NOT NULL,
			idx INTEGER NOT NULL,
			name TEXT NOT NULL
		    );`,
	} {
		_, err := st.db.Exec(create)
		if err != nil {
			return err
		}
	}
	return nil
}

// dbGrid mirrors one row of the grids table.
type dbGrid struct {
	ID       string `db:"id"`
	Rows     int    `db:"rows"`
	Columns  int    `db:"columns"`
	TileSize int    `db:"tilesize"`
	Gap      int    `db:"gap"`
}

// dbCell mirrors one row of the cells table. The ID exists so we can
// insert/update a unique (grid, index) cell with a straight forward query.
type dbCell struct {
	ID       string `db:"id"`
	GridID   string `db:"grid_id"`
	Idx      int    `db:"idx"`
	Source   int    `db:"source"`
	Rotation int    `db:"rotation"`
	MirrorX  bool   `db:"mirror_x"`
	MirrorY  bool   `db:"mirror_y"`
}

// newDBCell crafts a dbCell struct given its inputs.
func newDBCell(gridID string, idx int, p Placement) dbCell {
	return dbCell{
		ID:       fmt.Sprintf("%s-%d", gridID, idx),
		GridID:   gridID,
		Idx:      idx,
		Source:   p.Source,
		Rotation: p.Rotation,
		MirrorX:  p.MirrorX,
		MirrorY:  p.MirrorY,
	}
}

// dbTile mirrors one row of the catalog_tiles table.
type dbTile struct {
	ID      string `db:"id"`
	SetName string `db:"set_name"`
	Idx     int    `db:"idx"`
	Name    string `db:"name"`
}
