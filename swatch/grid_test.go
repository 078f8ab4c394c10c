package swatch

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	temps := []float64{4000, 6500, 10000}
	duvs := []float64{-0.01, 0, 0.01, 0.02}

	img, e := Grid(temps, duvs, 0.5)
	require.NoError(t, e)
	assert.Equal(t, len(duvs)*TileSize, img.Bounds().Dx())
	assert.Equal(t, len(temps)*TileSize, img.Bounds().Dy())

	// tiles are flat
	assert.Equal(t, img.At(TileSize, TileSize), img.At(2*TileSize-1, 2*TileSize-1))
	// warm tiles are redder than cool ones
	warm := img.RGBAAt(TileSize, 0)
	cool := img.RGBAAt(TileSize, 2*TileSize)
	assert.Greater(t, warm.R, cool.R)
	assert.Less(t, warm.B, cool.B)

	_, e = Grid(nil, duvs, 0.5)
	assert.Error(t, e)
}

func TestWriteGrid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGrid(&buf, []float64{5000}, []float64{0, 0.01}, 0.5))

	img, e := png.Decode(&buf)
	require.NoError(t, e)
	assert.Equal(t, 2*TileSize, img.Bounds().Dx())
	assert.Equal(t, TileSize, img.Bounds().Dy())
}

func TestRange(t *testing.T) {

	for _, tc := range []struct {
		name     string
		start    float64
		end      float64
		n        int
		expected []float64
	}{
		{name: "five", start: -0.02, end: 0.02, n: 5, expected: []float64{-0.02, -0.01, 0, 0.01, 0.02}},
		{name: "one", start: 6500, end: 9000, n: 1, expected: []float64{6500}},
		{name: "none", start: 0, end: 1, n: 0, expected: nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := Range(tc.start, tc.end, tc.n)
			require.Len(t, got, len(tc.expected))
			for i := range got {
				assert.InDelta(t, tc.expected[i], got[i], 1e-12)
			}
		})
	}
}
