package geom

import "math"

// Float is the scalar type shared by every precision variant. Each
// instantiation uses the same formulas and branch conditions; only the
// scalar width and its rounding differ.
type Float interface {
	~float32 | ~float64
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sqrt computes the square root in the target precision.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Sincos computes sine and cosine in the target precision.
func Sincos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}
