package geom

// Mat is a 3×3 matrix of column vectors. The W of each column is
// ignored.
type Mat[T Float] struct {
	X, Y, Z Vec[T]
}

// MulVec applies m to v with the columns as basis.
func (m Mat[T]) MulVec(v Vec[T]) Vec[T] {
	return Vec[T]{
		X: m.X.X*v.X + m.Y.X*v.Y + m.Z.X*v.Z,
		Y: m.X.Y*v.X + m.Y.Y*v.Y + m.Z.Y*v.Z,
		Z: m.X.Z*v.X + m.Y.Z*v.Y + m.Z.Z*v.Z,
	}
}

// MulVecT applies the transpose of m to v. For a matrix of mutually
// orthonormal columns the transpose is the inverse, so this expresses v
// in the coordinates of the frame m without computing an inverse.
func (m Mat[T]) MulVecT(v Vec[T]) Vec[T] {
	return Vec[T]{
		X: m.X.X*v.X + m.X.Y*v.Y + m.X.Z*v.Z,
		Y: m.Y.X*v.X + m.Y.Y*v.Y + m.Y.Z*v.Z,
		Z: m.Z.X*v.X + m.Z.Y*v.Y + m.Z.Z*v.Z,
	}
}
