// Package report formats conversion results with pongo2 templates.
package report

import (
	"fmt"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/cctduv/locus"
	"github.com/mmuldo/cctduv/swatch"
)

// Default prints the chromaticity to four decimals.
const Default = "x = {{ x|floatformat:4 }}, y = {{ y|floatformat:4 }}"

// Record is what a template gets to see about one conversion.
type Record struct {
	Temperature float64
	Duv         float64
	X, Y        float64
	U, V        float64
	LocusX      float64
	LocusY      float64
	Hex         string
	InGamut     bool
	DeltaE      float64

	Degenerate   bool
	Defined      bool
	Extrapolated bool
}

// FromSolution builds a Record from a solved conversion, rendering it at
// luminance lum for the color fields.
func FromSolution(s locus.Solution, lum float64) Record {
	sw := swatch.New(s.XY, lum)

	return Record{
		Temperature:  s.Temperature,
		Duv:          s.Duv,
		X:            s.XY.X,
		Y:            s.XY.Y,
		U:            s.UV.U,
		V:            s.UV.V,
		LocusX:       s.Locus.X,
		LocusY:       s.Locus.Y,
		Hex:          sw.Hex(),
		InGamut:      sw.InGamut,
		DeltaE:       swatch.Difference(s.Locus, s.XY, lum),
		Degenerate:   s.Degenerate,
		Defined:      s.Defined,
		Extrapolated: !locus.InRange(s.Temperature),
	}
}

// Context exposes r to a template. Keys are snake_case.
func (r Record) Context() pongo2.Context {
	return pongo2.Context{
		"cct":          r.Temperature,
		"duv":          r.Duv,
		"x":            r.X,
		"y":            r.Y,
		"u":            r.U,
		"v":            r.V,
		"x0":           r.LocusX,
		"y0":           r.LocusY,
		"hex":          r.Hex,
		"in_gamut":     r.InGamut,
		"delta_e":      r.DeltaE,
		"degenerate":   r.Degenerate,
		"defined":      r.Defined,
		"extrapolated": r.Extrapolated,
	}
}

// Render executes the template source tpl against r.
func Render(tpl string, r Record) (string, error) {
	t, e := pongo2.FromString(tpl)
	if e != nil {
		return "", fmt.Errorf("parsing template: %w", e)
	}

	return execute(t, r)
}

// RenderFile executes the template stored at path against r.
func RenderFile(path string, r Record) (string, error) {
	t, e := pongo2.FromFile(path)
	if e != nil {
		return "", fmt.Errorf("loading template %s: %w", path, e)
	}

	return execute(t, r)
}

func execute(t *pongo2.Template, r Record) (string, error) {
	o, e := t.Execute(r.Context())
	if e != nil {
		return "", fmt.Errorf("rendering template: %w", e)
	}

	return o, nil
}
