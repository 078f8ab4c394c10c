// Package swatch turns chromaticities into displayable colors.
package swatch

import (
	"fmt"
	"image/color"
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mmuldo/cctduv/chroma"
)

var (
	// xy points are taken relative to D65, the sRGB white, so no
	// chromatic adaptation is applied.
	refIlluminant = &chromath.IlluminantRefD65
	xyz2RGB       = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		nil,
		nil,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(refIlluminant)
	klch    = &deltae.KLChDefault
)

// Swatch is a chromaticity rendered at a given luminance.
type Swatch struct {
	XY        chroma.XY
	Luminance float64
	RGB       color.RGBA
	Lab       chromath.Lab

	// InGamut is false when the color had to be clipped to fit sRGB.
	InGamut bool
}

// New renders p at luminance lum (relative, 0..1). A point with y == 0 has
// no tristimulus value and renders black, out of gamut.
func New(p chroma.XY, lum float64) Swatch {
	s := Swatch{XY: p, Luminance: lum, RGB: color.RGBA{A: 255}}
	if p.Y == 0 {
		return s
	}

	xyz := toXYZ(p, lum)
	rgb := xyz2RGB.Invert(xyz)
	s.RGB = color.RGBA{
		uint8(math.Round(rgb.R())),
		uint8(math.Round(rgb.G())),
		uint8(math.Round(rgb.B())),
		255,
	}
	s.Lab = lab2Xyz.Invert(xyz)
	s.InGamut = colorful.Xyy(p.X, p.Y, lum).IsValid()

	return s
}

// Hex returns the sRGB color as #rrggbb.
func (s Swatch) Hex() string {
	return rgb2Hex(s.RGB)
}

// Difference returns the CIEDE2000 distance between a and b, both taken at
// luminance lum.
func Difference(a, b chroma.XY, lum float64) float64 {
	return deltae.CIE2000(New(a, lum).Lab, New(b, lum).Lab, klch)
}

func toXYZ(p chroma.XY, lum float64) chromath.XYZ {
	return chromath.XYZ{
		p.X * lum / p.Y,
		lum,
		(1 - p.X - p.Y) * lum / p.Y,
	}
}

func rgb2Hex(rgb color.Color) string {
	r, g, b, _ := rgb.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", byte(r>>8), byte(g>>8), byte(b>>8))
}
