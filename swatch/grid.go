package swatch

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/mmuldo/cctduv/locus"
)

// TileSize is the edge length, in pixels, of one tile in a grid.
const TileSize = 64

// Grid lays out one tile per (temperature, duv) pair: a row per temperature,
// a column per duv.
func Grid(temps, duvs []float64, lum float64) (*image.RGBA, error) {
	if len(temps) == 0 || len(duvs) == 0 {
		return nil, fmt.Errorf("grid needs at least one temperature and one duv, got %d and %d", len(temps), len(duvs))
	}

	img := image.NewRGBA(image.Rect(0, 0, len(duvs)*TileSize, len(temps)*TileSize))
	for row, t := range temps {
		for col, d := range duvs {
			c := New(locus.Convert(t, d), lum).RGB

			x, y := col*TileSize, row*TileSize
			for w := x; w-x < TileSize; w++ {
				for h := y; h-y < TileSize; h++ {
					img.Set(w, h, c)
				}
			}
		}
	}

	return img, nil
}

// WriteGrid renders a grid and encodes it as PNG to w.
func WriteGrid(w io.Writer, temps, duvs []float64, lum float64) error {
	img, e := Grid(temps, duvs, lum)
	if e != nil {
		return e
	}

	return Encode(w, img)
}

// Encode writes img to w as PNG.
func Encode(w io.Writer, img image.Image) error {
	if e := png.Encode(w, img); e != nil {
		return fmt.Errorf("encoding grid: %w", e)
	}
	return nil
}

// Range returns the values from start to end inclusive in n evenly spaced
// steps. n == 1 yields just start.
func Range(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}

	vs := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range vs {
		vs[i] = start + float64(i)*step
	}
	vs[n-1] = end
	return vs
}
