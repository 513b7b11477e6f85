package geom

// Vec is a 3-vector whose W component caches the pre-normalization
// length of (X, Y, Z). Before Normalize, W is unused and zero. A zero W
// after Normalize marks a vector that had no direction to begin with.
type Vec[T Float] struct {
	X, Y, Z, W T
}

// Normalize rescales (X, Y, Z) to unit length when the Euclidean length
// is nonzero, stores that length in W and returns it. A zero vector is
// left untouched so callers can branch on the returned length instead of
// a separate flag.
func (v *Vec[T]) Normalize() T {
	length := Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if length != 0 {
		v.X /= length
		v.Y /= length
		v.Z /= length
	}
	v.W = length
	return length
}

// Cross returns the right-handed cross product of the (X, Y, Z) parts.
// The W of the result is zero and carries no meaning until the result is
// normalized.
func Cross[T Float](a, b Vec[T]) Vec[T] {
	return Vec[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
