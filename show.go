package tilemap

import (
	"fmt"
	"io"
	"os"

	"github.com/richardturnnidge/tilemap/vdp"
)

// ShowOptions controls how Show sets up the screen and where on the
// device the tiles land.
type ShowOptions struct {
	// Mode is the VDP screen mode to select.
	Mode uint8

	// StartID is the first bitmap ID to assign.
	StartID int

	// StagingID names the scratch buffer each row is staged in before
	// splitting. It must not collide with the bitmap ID range.
	StagingID int

	// Layout positions the rendered grid.
	Layout Layout

	// Geometry overrides the catalog lookup when non-nil. Required for
	// files that have never been catalogued.
	Geometry *Geometry
}

// Show emits a complete VDU session to out: screen setup, a title line,
// the tile load and the grid display. The session is what an eZ80
// program would send over the serial link, so out is typically the
// serial device or a file for later replay.
//
// Geometry comes from opts if set, otherwise from the catalog keyed by
// the file's CRC.
func (m *TileMap) Show(out io.Writer, file string, opts ShowOptions) error {
	g := opts.Geometry
	if g == nil {
		ts, err := m.Info(file)
		if err != nil {
			return err
		}
		if ts == nil {
			return fmt.Errorf("tilemap: no catalog entry for %s, geometry required", file)
		}
		g = &ts.Geometry
		m.logger.Printf("Using catalogued geometry for \"%s\": %dx%d cells of %dx%d\n", ts.Name, g.Rows, g.Columns, g.CellWidth, g.CellHeight)
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	s := vdp.NewStream(out)

	if err := setupScreen(s, file, opts.Mode); err != nil {
		return fmt.Errorf("tilemap: screen setup: %w", err)
	}

	ids, err := LoadTiles(s, f, *g, opts.StartID, opts.StagingID)
	if err != nil {
		return err
	}

	return DisplayTiles(s, g.Rows, g.Columns, ids[0], opts.Layout)
}

func setupScreen(s *vdp.Stream, title string, mode uint8) error {
	if err := s.Mode(mode); err != nil {
		return err
	}
	if err := s.CursorEnable(false); err != nil {
		return err
	}
	if err := s.TextBgColour(vdp.Blue); err != nil {
		return err
	}
	if err := s.ClearScreen(); err != nil {
		return err
	}
	if err := s.PixelCoordinates(); err != nil {
		return err
	}
	if err := s.CursorTab(0, 27); err != nil {
		return err
	}
	return s.Print(fmt.Sprintf("Tile map: %s", title))
}
