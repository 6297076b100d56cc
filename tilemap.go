/*
Package tilemap is a library for preparing and loading tile-map images
onto the Agon VDP.

A tile map is a headerless RGBA2222 pixel stream arranged as a uniform
grid of equal-sized cells, stored row-major with each row of cells
byte-contiguous. The library converts ordinary images into this format,
keeps a catalog of the out-of-band geometry each file needs, and drives
the VDP buffer commands that split a loaded row into per-cell bitmaps.
*/
package tilemap

import "log"

// FormatRGBA2222 is the VDP pixel format identifier for one byte per
// pixel, two bits per channel, laid out %AABBGGRR.
const FormatRGBA2222 uint8 = 1

type TileMap struct {
	db     *TileDB
	logger *log.Logger
}

func New(db *TileDB, logger *log.Logger) *TileMap {
	return &TileMap{
		db:     db,
		logger: logger,
	}
}
