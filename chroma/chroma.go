// Package chroma converts between CIE 1931 xy and CIE 1976 u'v'
// chromaticity coordinates.
package chroma

// XY is a CIE 1931 chromaticity point.
type XY struct {
	X float64
	Y float64
}

// UV is a CIE 1976 u'v' chromaticity point.
type UV struct {
	U float64
	V float64
}

// ToUV converts p to u'v'. The second return value is false, and the point is
// (0, 0), when p.Y is zero or the projection denominator vanishes.
func ToUV(p XY) (UV, bool) {
	if p.Y == 0 {
		return UV{}, false
	}

	X := p.X / p.Y
	Z := (1 - p.X - p.Y) / p.Y
	denom := X + 15 + 3*Z
	if denom == 0 {
		return UV{}, false
	}

	return UV{U: 4 * X / denom, V: 9 / denom}, true
}

// FromUV converts p back to xy. The second return value is false, and the
// point is (0, 0), when 6u - 16v + 12 is zero.
func FromUV(p UV) (XY, bool) {
	denom := 6*p.U - 16*p.V + 12
	if denom == 0 {
		return XY{}, false
	}

	return XY{X: 9 * p.U / denom, Y: 4 * p.V / denom}, true
}
