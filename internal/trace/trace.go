// Package trace replays a scripted pointer path through the orbit
// engine and records the induced rotations together with summary
// statistics.
package trace

import (
	"math"

	"github.com/san-kum/trackball/internal/gesture"
	"github.com/san-kum/trackball/internal/orbit"
)

// Step is one pointer sample and the rotation it induced.
type Step struct {
	X, Y  float64
	Rot   [4]float64 // quaternion in (x, y, z, w) order
	Angle float64    // rotation angle of this step in radians
}

type Result struct {
	Gesture string
	Width   float64
	Height  float64
	Steps   []Step

	TotalAngle float64 // sum of per-step rotation angles
	MaxStep    float64 // largest per-step rotation angle
	NormDrift  float64 // worst deviation of a quaternion norm from one
}

// Run feeds every stroke of path through one orbit state, resetting the
// cache on each release edge, and aggregates the rotations.
func Run(name string, path gesture.Path, width, height float64) *Result {
	res := &Result{Gesture: name, Width: width, Height: height}

	var s orbit.State[float64]
	for _, stroke := range path {
		for _, p := range stroke {
			q := s.Compute(p.X, p.Y, width, height)

			w := math.Abs(q.W)
			if w > 1 {
				w = 1
			}
			angle := 2 * math.Acos(w)

			if drift := math.Abs(q.Norm() - 1); drift > res.NormDrift {
				res.NormDrift = drift
			}
			if angle > res.MaxStep {
				res.MaxStep = angle
			}
			res.TotalAngle += angle

			res.Steps = append(res.Steps, Step{X: p.X, Y: p.Y, Rot: q.Array(), Angle: angle})
		}
		s.Reset()
	}

	return res
}

// Angles returns the per-step rotation angle series for plotting.
func (r *Result) Angles() []float64 {
	angles := make([]float64, len(r.Steps))
	for i, s := range r.Steps {
		angles[i] = s.Angle
	}
	return angles
}
