package geom

// Quat is a rotation quaternion with (X, Y, Z) as the imaginary part and
// W as the real part. It shares its shape with Vec but the roles of W
// differ: a Quat W is never a cached length. Conversions between the two
// happen only where a normalized axis becomes a rotation.
type Quat[T Float] struct {
	X, Y, Z, W T
}

// QuatIdent returns the identity rotation.
func QuatIdent[T Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// AxisAngle builds the unit quaternion rotating by angle around axis.
// The axis must be unit length.
func AxisAngle[T Float](axis Vec[T], angle T) Quat[T] {
	im, re := Sincos(angle / 2)
	return Quat[T]{
		X: axis.X * im,
		Y: axis.Y * im,
		Z: axis.Z * im,
		W: re,
	}
}

// Norm returns the Euclidean norm over all four components.
func (q Quat[T]) Norm() T {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Conjugate negates the imaginary part, inverting a unit rotation.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Mul returns the Hamilton product q·r, the rotation r followed by q.
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	return Quat[T]{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Array returns the components in (x, y, z, w) order for flat-array
// interchange with host graphics libraries.
func (q Quat[T]) Array() [4]T {
	return [4]T{q.X, q.Y, q.Z, q.W}
}

// QuatFromArray is the inverse of Array.
func QuatFromArray[T Float](a [4]T) Quat[T] {
	return Quat[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}
