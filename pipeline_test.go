package tilemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	m, dir := testTileMap(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".hidden"), 0o755))

	writePNG(t, filepath.Join(dir, "one.png"), 32, 16)
	writePNG(t, filepath.Join(dir, "sub", "two.png"), 16, 48)
	writePNG(t, filepath.Join(dir, ".hidden", "three.png"), 16, 16)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image"), 0o644))

	require.NoError(t, m.Scan(dir, 16, 16))

	for file, size := range map[string]int64{
		filepath.Join(dir, "one.rgb2"):        32 * 16,
		filepath.Join(dir, "sub", "two.rgb2"): 16 * 48,
	} {
		info, err := os.Stat(file)
		require.NoError(t, err, file)
		assert.Equal(t, size, info.Size(), file)
	}

	// Hidden directories are skipped entirely.
	_, err := os.Stat(filepath.Join(dir, ".hidden", "three.rgb2"))
	assert.True(t, os.IsNotExist(err))
}

func TestScanPropagatesFailure(t *testing.T) {
	m, dir := testTileMap(t)

	// Not divisible into 16x16 cells.
	writePNG(t, filepath.Join(dir, "bad.png"), 30, 16)

	assert.Error(t, m.Scan(dir, 16, 16))
}
