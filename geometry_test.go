package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometry(t *testing.T) {
	g := Geometry{CellWidth: 16, CellHeight: 16, Rows: 5, Columns: 8}

	// One row of cells is one chunk; the chunk size is always derived
	// from the cell dimensions.
	assert.Equal(t, 2048, g.ChunkSize())
	assert.Equal(t, 40, g.TileCount())
	assert.Equal(t, 128, g.PixelWidth())
	assert.Equal(t, 80, g.PixelHeight())
	assert.Equal(t, 10240, g.FileSize())
}

func TestGeometryValidate(t *testing.T) {
	tables := []struct {
		geometry Geometry
		ok       bool
	}{
		{Geometry{CellWidth: 16, CellHeight: 16, Rows: 1, Columns: 1}, true},
		{Geometry{CellWidth: 0, CellHeight: 16, Rows: 1, Columns: 1}, false},
		{Geometry{CellWidth: 16, CellHeight: -1, Rows: 1, Columns: 1}, false},
		{Geometry{CellWidth: 16, CellHeight: 16, Rows: 0, Columns: 1}, false},
		{Geometry{CellWidth: 16, CellHeight: 16, Rows: 1, Columns: 0}, false},
		{Geometry{}, false},
	}

	for _, table := range tables {
		err := table.geometry.validate()
		if table.ok {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err)
		}
	}
}
