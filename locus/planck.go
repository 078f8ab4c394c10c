// Package locus places chromaticities relative to the Planckian locus: it
// approximates the locus in xy, builds the normal to it in u'v' and offsets a
// locus point along that normal by a signed Duv.
package locus

import "github.com/mmuldo/cctduv/chroma"

// The polynomial is fitted over this range. Outside it Planck extrapolates.
const (
	MinValid = 4000.0
	MaxValid = 25000.0
)

// Planck returns the Planckian locus point for temperature t in kelvin.
// t must be positive; nothing is checked.
func Planck(t float64) chroma.XY {
	inv := 1 / t
	inv2 := inv * inv
	inv3 := inv2 * inv

	x := -3.0258469e9*inv3 + 2.1070379e6*inv2 + 0.2226347e3*inv + 0.240390
	y := -3*x*x + 2.87*x - 0.275

	return chroma.XY{X: x, Y: y}
}

// InRange reports whether t lies in the fitted range of Planck.
func InRange(t float64) bool {
	return t >= MinValid && t <= MaxValid
}
