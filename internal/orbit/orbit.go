// Package orbit computes incremental trackball rotations from pointer
// displacements using the exponential map and parallel transport, so
// that straight radial pointer motion maps to constant-speed motion
// along great circles of the trackball at every radius.
package orbit

import (
	"math"

	"github.com/san-kum/trackball/internal/geom"
)

const halfPi = math.Pi / 2

// State caches the normalization of the previous pointer position
// together with its pre-normalization radius in W. The zero value is
// inactive: no previous position has been seen. One State serves exactly
// one pointer; concurrent pointers need one State each.
type State[T geom.Float] struct {
	vec geom.Vec[T]
}

// Reset discards the cached position. Call it exactly once per
// press/release cycle, on either the press or the release edge,
// consistently, so a stale position cannot induce a spurious rotation on
// the next engagement.
func (s *State[T]) Reset() {
	s.vec = geom.Vec[T]{}
}

// Active reports whether a previous position is cached.
func (s *State[T]) Active() bool {
	return s.vec.W != 0
}

// Compute returns the rotation between the previous and the current
// pointer position, caching the current one. The position is clamped
// into [0, width]×[0, height] first.
//
// Screen space has its origin in the top left corner, x growing right
// and y growing down. Camera space has its origin at the trackball's
// center, x growing right, y growing up and z pointing from far to near.
//
// The identity rotation is returned when there is no previous position
// yet (first call after a reset) and when the displacement since the
// previous position is zero. The result is always a unit quaternion;
// every division is guarded by a length check.
func (s *State[T]) Compute(x, y, width, height T) geom.Quat[T] {
	rot := geom.QuatIdent[T]()

	// Centered position from left to right and bottom to top.
	cur := geom.Vec[T]{
		X: geom.Clamp(x, 0, width) - width/2,
		Y: height/2 - geom.Clamp(y, 0, height),
	}
	// An exactly centered position has no direction on the screen plane;
	// assign it to the trackball's near pole.
	if cur.Normalize() == 0 {
		cur = geom.Vec[T]{Z: 1, W: 1}
	}

	// The cache advances on every call, even on degenerate outcomes.
	prev := s.vec
	s.vec = cur

	if prev.W == 0 {
		return rot
	}

	// Displacement between the un-normalized centered positions,
	// restored from the cached radii.
	disp := geom.Vec[T]{
		X: cur.X*cur.W - prev.X*prev.W,
		Y: cur.Y*cur.W - prev.Y*prev.W,
	}
	if disp.Normalize() == 0 {
		return rot
	}

	radius := max(width/2, height/2)

	// Map the trackball's diameter onto half its circumference so that
	// only screen corners reach the far hemisphere, which induces less
	// intuitive rotations.
	sin, cos := geom.Sincos(prev.W / radius * halfPi)

	pole := geom.Vec[T]{Z: 1}
	// Exponential map of the previous position and the tangent of its
	// geodesic, with the in-plane perpendicular completing both frames.
	exp := geom.Vec[T]{X: sin * prev.X, Y: sin * prev.Y, Z: cos}
	tan := geom.Vec[T]{X: cos * prev.X, Y: cos * prev.Y, Z: -sin}
	zxp := geom.Vec[T]{X: -prev.Y, Y: prev.X}

	arg := geom.Mat[T]{X: pole, Y: prev, Z: zxp}
	img := geom.Mat[T]{X: exp, Y: tan, Z: zxp}

	// The differential of the exponential map expresses the displacement
	// in the argument frame and reinterprets it in the image frame; the
	// transported displacement spans the rotation plane with the
	// exponential map.
	axis := geom.Cross(img.MulVec(arg.MulVecT(disp)), exp)
	if axis.Normalize() == 0 {
		return rot
	}

	// Angle of rotation is displacement length divided by radius.
	return geom.AxisAngle(axis, disp.W/radius)
}
