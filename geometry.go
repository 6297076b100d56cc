package tilemap

import "fmt"

// Geometry describes the grid layout of a tile-map file: Rows by Columns
// cells of CellWidth by CellHeight pixels each. The RGBA2222 format is
// one byte per pixel, so all byte counts below follow directly from the
// pixel counts.
type Geometry struct {
	CellWidth  int
	CellHeight int
	Rows       int
	Columns    int
}

// ChunkSize returns the number of bytes occupied by one row of cells.
// It is always derived from the cell dimensions rather than supplied
// separately, so the chunk length and the split arithmetic cannot
// disagree.
func (g Geometry) ChunkSize() int {
	return g.CellWidth * g.CellHeight * g.Columns
}

// TileCount returns the total number of cells in the grid.
func (g Geometry) TileCount() int {
	return g.Rows * g.Columns
}

// PixelWidth returns the width of the whole image in pixels.
func (g Geometry) PixelWidth() int {
	return g.Columns * g.CellWidth
}

// PixelHeight returns the height of the whole image in pixels.
func (g Geometry) PixelHeight() int {
	return g.Rows * g.CellHeight
}

// FileSize returns the expected byte length of the tile-map file.
func (g Geometry) FileSize() int {
	return g.Rows * g.ChunkSize()
}

func (g Geometry) validate() error {
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return fmt.Errorf("tilemap: invalid cell size %dx%d", g.CellWidth, g.CellHeight)
	}
	if g.Rows <= 0 || g.Columns <= 0 {
		return fmt.Errorf("tilemap: invalid grid %dx%d", g.Rows, g.Columns)
	}
	return nil
}
