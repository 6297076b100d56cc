package tilemap

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/richardturnnidge/tilemap/rgba2222"
)

// Extension is used for converted tile-map files.
const Extension = ".rgb2"

// Convert renders an image file into a raw RGBA2222 tile map alongside
// the original, using the given cell size, and records the resulting
// geometry in the catalog. The image dimensions must divide exactly
// into cells.
func (m *TileMap) Convert(file string, cellWidth, cellHeight int) (*TileSet, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("tilemap: decoding %s: %w", file, err)
	}

	b := src.Bounds()
	if cellWidth <= 0 || cellHeight <= 0 || b.Dx()%cellWidth != 0 || b.Dy()%cellHeight != 0 {
		return nil, fmt.Errorf("tilemap: %s: %dx%d image does not divide into %dx%d cells", file, b.Dx(), b.Dy(), cellWidth, cellHeight)
	}

	g := Geometry{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Rows:       b.Dy() / cellHeight,
		Columns:    b.Dx() / cellWidth,
	}

	out := strings.TrimSuffix(file, filepath.Ext(file)) + Extension

	w, err := os.Create(out)
	if err != nil {
		return nil, err
	}

	if err := rgba2222.Encode(w, src); err != nil {
		w.Close()
		return nil, fmt.Errorf("tilemap: encoding %s: %w", out, err)
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	crc, err := crcFile(out)
	if err != nil {
		return nil, err
	}

	ts := &TileSet{
		Name:     strings.TrimSuffix(filepath.Base(out), Extension),
		CRC:      crc,
		Geometry: g,
	}

	if err := m.db.AddTileSet(ts); err != nil {
		return nil, err
	}

	m.logger.Printf("Converted \"%s\" to %d %dx%d tiles, CRC \"%s\"\n", file, g.TileCount(), cellWidth, cellHeight, crc)

	return ts, nil
}

// Info looks up the catalog entry for a converted tile-map file.
func (m *TileMap) Info(file string) (*TileSet, error) {
	crc, err := crcFile(file)
	if err != nil {
		return nil, err
	}

	return m.db.FindTileSetByCRC(crc)
}
