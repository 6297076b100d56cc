package tilemap

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// TileSet is one catalog entry: the geometry a raw tile-map file needs,
// keyed by the CRC-32 of its contents. The RGBA2222 format has no
// header, so the catalog is how geometry travels with a file.
type TileSet struct {
	Name     string
	CRC      string
	Geometry Geometry
}

// TileDB is the sqlite-backed tile-set catalog.
type TileDB struct {
	db *sql.DB
}

func NewTileDB(file string) (*TileDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS tileset (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL UNIQUE, name STRING NOT NULL, cell_width INTEGER NOT NULL, cell_height INTEGER NOT NULL, rows INTEGER NOT NULL, columns INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &TileDB{
		db: db,
	}, nil
}

func (db *TileDB) Close() error {
	return db.db.Close()
}

// AddTileSet records the geometry for a tile-map file, replacing any
// previous entry with the same CRC.
func (db *TileDB) AddTileSet(ts *TileSet) error {
	if err := ts.Geometry.validate(); err != nil {
		return err
	}
	if _, err := db.db.Exec("INSERT OR REPLACE INTO tileset (crc, name, cell_width, cell_height, rows, columns) VALUES (?, ?, ?, ?, ?, ?)",
		ts.CRC, ts.Name, ts.Geometry.CellWidth, ts.Geometry.CellHeight, ts.Geometry.Rows, ts.Geometry.Columns); err != nil {
		return err
	}
	return nil
}

// FindTileSetByCRC returns the catalog entry for the given CRC, or nil
// if the file has never been catalogued.
func (db *TileDB) FindTileSetByCRC(crc string) (*TileSet, error) {
	ts := &TileSet{CRC: crc}
	switch err := db.db.QueryRow("SELECT name, cell_width, cell_height, rows, columns FROM tileset WHERE crc = ?", crc).Scan(
		&ts.Name, &ts.Geometry.CellWidth, &ts.Geometry.CellHeight, &ts.Geometry.Rows, &ts.Geometry.Columns); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return ts, nil
	default:
		return nil, err
	}
}
