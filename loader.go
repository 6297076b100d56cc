package tilemap

import (
	"errors"
	"fmt"
	"io"
)

// ErrShortRead is returned when the input ends before a full row of
// cell data could be read.
var ErrShortRead = errors.New("tilemap: short read")

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

// LoadTiles reads a tile map from r one row of cells at a time and
// populates one bitmap per cell on the device. Each row is staged in
// the buffer named by stagingID, split into g.Columns equal-width
// sub-buffers and converted cell by cell into RGBA2222 bitmaps of
// g.CellWidth by g.CellHeight pixels.
//
// Bitmap IDs are assigned row-major with no gaps starting at startID;
// the full list is returned so callers never have to re-derive the
// assignment. The staging buffer is owned by the caller and is left
// holding the last row read.
//
// Any short read or device failure aborts the load before the affected
// row produces a bitmap.
func LoadTiles(d Device, r io.Reader, g Geometry, startID, stagingID int) ([]int, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	chunk := make([]byte, g.ChunkSize())
	ids := make([]int, 0, g.TileCount())

	id := startID
	for row := 0; row < g.Rows; row++ {
		if err := d.ClearBuffer(stagingID); err != nil {
			return nil, fmt.Errorf("tilemap: clearing staging buffer: %w", err)
		}

		if err := readFull(r, chunk); err != nil {
			if err == io.ErrUnexpectedEOF {
				return nil, fmt.Errorf("tilemap: row %d: %w", row, ErrShortRead)
			}
			return nil, fmt.Errorf("tilemap: row %d: %w", row, err)
		}

		if err := d.WriteBlock(stagingID, chunk); err != nil {
			return nil, fmt.Errorf("tilemap: staging row %d: %w", row, err)
		}

		if err := d.SplitByWidth(stagingID, g.CellWidth, g.Columns, id); err != nil {
			return nil, fmt.Errorf("tilemap: splitting row %d: %w", row, err)
		}

		for col := 0; col < g.Columns; col++ {
			if err := d.SelectBitmap(id); err != nil {
				return nil, fmt.Errorf("tilemap: selecting buffer %d: %w", id, err)
			}
			if err := d.BitmapFromBuffer(g.CellWidth, g.CellHeight, FormatRGBA2222); err != nil {
				return nil, fmt.Errorf("tilemap: converting buffer %d: %w", id, err)
			}
			ids = append(ids, id)
			id++
		}
	}

	return ids, nil
}
