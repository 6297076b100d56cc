package tilemap

import "fmt"

// Layout positions a rendered grid on screen. Cell (r, c) is plotted at
// (MarginX + c*StrideX, MarginY + r*StrideY).
type Layout struct {
	MarginX int
	MarginY int
	StrideX int
	StrideY int
}

// DefaultLayout spaces 16x16 cells with a small gap between each.
var DefaultLayout = Layout{
	MarginX: 10,
	MarginY: 10,
	StrideX: 20,
	StrideY: 20,
}

// DisplayTiles plots a rows by columns grid of bitmaps in row-major
// order. Bitmap IDs are assumed contiguous from startID, matching the
// assignment LoadTiles returns; callers holding the ID slice from a
// load can pass ids[0].
func DisplayTiles(d Device, rows, columns, startID int, l Layout) error {
	id := startID
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			if err := d.SelectBitmap(id); err != nil {
				return fmt.Errorf("tilemap: selecting bitmap %d: %w", id, err)
			}
			if err := d.PlotBitmap(l.MarginX+col*l.StrideX, l.MarginY+row*l.StrideY); err != nil {
				return fmt.Errorf("tilemap: plotting bitmap %d: %w", id, err)
			}
			id++
		}
	}
	return nil
}
