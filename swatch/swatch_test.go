package swatch

import (
	"image/color"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmuldo/cctduv/chroma"
	"github.com/mmuldo/cctduv/locus"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestNew(t *testing.T) {

	for _, tc := range []struct {
		name          string
		xy            chroma.XY
		lum           float64
		expectNeutral bool
		expectInGamut bool
	}{
		{
			name:          "D65 is neutral",
			xy:            chroma.XY{X: 0.3127, Y: 0.3290},
			lum:           0.5,
			expectNeutral: true,
			expectInGamut: true,
		},
		{
			name:          "6500K locus",
			xy:            locus.Planck(6500),
			lum:           0.5,
			expectInGamut: true,
		},
		{
			name:          "spectral green",
			xy:            chroma.XY{X: 0.08, Y: 0.85},
			lum:           0.5,
			expectInGamut: false,
		},
		{
			name:          "zero y",
			xy:            chroma.XY{X: 0.3, Y: 0},
			lum:           0.5,
			expectInGamut: false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := New(tc.xy, tc.lum)
			assert.Equal(t, tc.expectInGamut, s.InGamut)
			assert.Equal(t, uint8(255), s.RGB.A)
			assert.Regexp(t, hexPattern, s.Hex())

			if tc.expectNeutral {
				assert.LessOrEqual(t, absDiff(s.RGB.R, s.RGB.G), 2)
				assert.LessOrEqual(t, absDiff(s.RGB.G, s.RGB.B), 2)
			}
		})
	}
}

func TestNewZeroY(t *testing.T) {
	s := New(chroma.XY{X: 0.3, Y: 0}, 1)
	assert.Equal(t, color.RGBA{A: 255}, s.RGB)
	assert.Equal(t, "#000000", s.Hex())
}

func TestRGB2Hex(t *testing.T) {
	assert.Equal(t, "#ff8000", rgb2Hex(color.RGBA{255, 128, 0, 255}))
	assert.Equal(t, "#0a0b0c", rgb2Hex(color.RGBA{10, 11, 12, 255}))
}

func TestDifference(t *testing.T) {
	p := locus.Planck(6500)
	assert.InDelta(t, 0, Difference(p, p, 0.5), 1e-9)

	near := Difference(p, locus.Convert(6500, 0.005), 0.5)
	far := Difference(p, locus.Convert(6500, 0.02), 0.5)
	assert.Greater(t, near, 0.0)
	assert.Greater(t, far, near)
}
