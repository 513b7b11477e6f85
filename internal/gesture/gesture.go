// Package gesture generates deterministic pointer paths for driving the
// orbit engine offline, standing in for the mouse events a windowing
// library would deliver.
package gesture

import (
	"fmt"
	"math"
)

const DefaultSamples = 120

// Sample is one pointer position in screen coordinates, origin top left.
type Sample struct {
	X, Y float64
}

// Stroke is a contiguous drag between one press and one release.
type Stroke []Sample

// Path is a sequence of strokes. The orbit cache is reset once per
// stroke, on the release edge.
type Path []Stroke

// Spec selects and parameterizes a generator by name.
type Spec struct {
	Name    string
	Samples int
	FromX   float64
	FromY   float64
	ToX     float64
	ToY     float64
	Radius  float64
	Turns   float64
}

// Generate builds the pointer path for spec on a width×height screen.
func Generate(spec Spec, width, height float64) (Path, error) {
	n := spec.Samples
	if n < 2 {
		n = DefaultSamples
	}
	cx, cy := width/2, height/2

	switch spec.Name {
	case "line":
		return Path{Line(spec.FromX, spec.FromY, spec.ToX, spec.ToY, n)}, nil
	case "circle":
		r := spec.Radius
		if r <= 0 {
			r = min(cx, cy) / 2
		}
		turns := spec.Turns
		if turns == 0 {
			turns = 1
		}
		return Path{Arc(cx, cy, r, 0, turns*2*math.Pi, n)}, nil
	case "spiral":
		r := spec.Radius
		if r <= 0 {
			r = min(cx, cy)
		}
		turns := spec.Turns
		if turns == 0 {
			turns = 3
		}
		return Path{Spiral(cx, cy, r, turns, n)}, nil
	case "sweep":
		// Radial drag from center to the right edge and back, as two
		// strokes. Straight radial motion maps to constant-speed motion
		// along a great circle, the defining property of this trackball.
		out := Line(cx, cy, width, cy, n/2+1)
		back := Line(width, cy, cx, cy, n/2+1)
		return Path{out, back}, nil
	default:
		return nil, fmt.Errorf("unknown gesture %q", spec.Name)
	}
}

// Names lists the available generators.
func Names() []string {
	return []string{"line", "circle", "spiral", "sweep"}
}

// Line interpolates n samples from (x0, y0) to (x1, y1) inclusive.
func Line(x0, y0, x1, y1 float64, n int) Stroke {
	stroke := make(Stroke, n)
	for i := range stroke {
		t := float64(i) / float64(n-1)
		stroke[i] = Sample{X: x0 + (x1-x0)*t, Y: y0 + (y1-y0)*t}
	}
	return stroke
}

// Arc samples a circular arc of radius r around (cx, cy) from angle
// `from` to angle `to`.
func Arc(cx, cy, r, from, to float64, n int) Stroke {
	stroke := make(Stroke, n)
	for i := range stroke {
		t := float64(i) / float64(n-1)
		a := from + (to-from)*t
		s, c := math.Sincos(a)
		stroke[i] = Sample{X: cx + r*c, Y: cy + r*s}
	}
	return stroke
}

// Spiral winds outward from (cx, cy) to radius r over the given number
// of turns. The first sample lands exactly on the center, exercising the
// pole tie-break.
func Spiral(cx, cy, r, turns float64, n int) Stroke {
	stroke := make(Stroke, n)
	for i := range stroke {
		t := float64(i) / float64(n-1)
		a := turns * 2 * math.Pi * t
		s, c := math.Sincos(a)
		stroke[i] = Sample{X: cx + r*t*c, Y: cy + r*t*s}
	}
	return stroke
}
