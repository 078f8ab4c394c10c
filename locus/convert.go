package locus

import "github.com/mmuldo/cctduv/chroma"

// Step is the temperature increment, in kelvin, used to sample a second locus
// point when estimating the tangent.
const Step = 0.01

// Solution is the full outcome of placing a (CCT, Duv) pair.
type Solution struct {
	Temperature float64
	Duv         float64

	// Locus is the Planckian point at Temperature, LocusUV its u'v' form.
	Locus   chroma.XY
	LocusUV chroma.UV

	XY chroma.XY
	UV chroma.UV

	// Degenerate is set when the tangent could not be estimated. XY is then
	// the locus point and Duv was not applied.
	Degenerate bool

	// Defined is false when a colorspace conversion hit a zero denominator
	// along the way. XY and UV are then (0, 0) and must not be read as a
	// chromaticity.
	Defined bool
}

// Solve computes the xy chromaticity that lies duv away from the Planckian
// locus at temperature t.
func Solve(t, duv float64) Solution {
	return solve(t, duv, Planck(t), Planck(t+Step))
}

// solve places duv away from p0, using p1 as the second tangent sample.
func solve(t, duv float64, p0, p1 chroma.XY) Solution {
	s := Solution{Temperature: t, Duv: duv, Locus: p0}

	u0, ok0 := chroma.ToUV(p0)
	u1, ok1 := chroma.ToUV(p1)
	s.LocusUV = u0

	uv, ok := Offset(u0, u1, duv)
	if !ok {
		s.Degenerate = true
		s.XY = s.Locus
		s.UV = u0
		s.Defined = true
		return s
	}
	if !ok0 || !ok1 {
		return s
	}

	s.XY, s.Defined = chroma.FromUV(uv)
	if s.Defined {
		s.UV = uv
	}
	return s
}

// Convert returns the xy chromaticity at temperature t and distance duv from
// the locus. See Solve for the degenerate cases.
func Convert(t, duv float64) chroma.XY {
	return Solve(t, duv).XY
}
