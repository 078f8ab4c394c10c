package locus

import (
	"math"

	"github.com/mmuldo/cctduv/chroma"
)

// tangents shorter than this have no usable direction
const minTangent = 1e-15

// Normal returns the unit normal to the segment p0->p1, i.e. the tangent
// rotated by +90 degrees. ok is false when the segment is too short to have a
// direction.
func Normal(p0, p1 chroma.UV) (n chroma.UV, ok bool) {
	du := p1.U - p0.U
	dv := p1.V - p0.V
	l := math.Sqrt(du*du + dv*dv)
	if l < minTangent {
		return chroma.UV{}, false
	}

	return chroma.UV{U: -dv / l, V: du / l}, true
}

// Offset moves p0 by duv along the normal of the segment p0->p1. When the
// segment is degenerate p0 is returned unchanged with ok false.
//
// This is a first order step: it follows the tangent line, not the true
// iso-Duv curve, so the error grows with |duv| and with locus curvature.
func Offset(p0, p1 chroma.UV, duv float64) (chroma.UV, bool) {
	n, ok := Normal(p0, p1)
	if !ok {
		return p0, false
	}

	return chroma.UV{U: p0.U + duv*n.U, V: p0.V + duv*n.V}, true
}
