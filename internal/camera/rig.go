// Package camera accumulates the per-event rotations of the orbit
// engine into a total alignment around a fixed target. The engine itself
// never touches this package; it mirrors how a host application
// post-multiplies each induced rotation onto its camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/trackball/internal/geom"
)

type Rig struct {
	orientation mgl64.Quat
	applied     int
}

func NewRig() *Rig {
	return &Rig{orientation: mgl64.QuatIdent()}
}

// Apply composes an induced rotation onto the current alignment. The
// rotation acts in camera space, so it multiplies from the left. The
// orientation is renormalized each step to keep drift from accumulating
// over long drags.
func (r *Rig) Apply(dq geom.Quat[float64]) {
	d := mgl64.Quat{W: dq.W, V: mgl64.Vec3{dq.X, dq.Y, dq.Z}}
	r.orientation = d.Mul(r.orientation).Normalize()
	r.applied++
}

// Reset restores the identity alignment.
func (r *Rig) Reset() {
	r.orientation = mgl64.QuatIdent()
	r.applied = 0
}

// Orientation returns the accumulated alignment.
func (r *Rig) Orientation() mgl64.Quat {
	return r.orientation
}

// Rotate applies the accumulated alignment to a model-space vector.
func (r *Rig) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return r.orientation.Rotate(v)
}

// Angle returns the total rotation angle of the current alignment in
// radians, in [0, π].
func (r *Rig) Angle() float64 {
	w := math.Abs(r.orientation.W)
	if w > 1 {
		w = 1
	}
	return 2 * math.Acos(w)
}

// Applied returns how many rotations have been composed since the last
// reset.
func (r *Rig) Applied() int {
	return r.applied
}
