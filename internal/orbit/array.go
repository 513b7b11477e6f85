package orbit

import "github.com/san-kum/trackball/internal/geom"

// Orbit is the flat-array form of State.Compute for interchange with
// host graphics libraries: rot and cache are laid out in (x, y, z, w)
// order, pos is the current pointer position and size the screen's width
// and height. A cache with w of zero marks no previous position;
// resetting it to zero discards the cached position.
func Orbit[T geom.Float](rot, cache *[4]T, pos, size [2]T) {
	s := State[T]{vec: geom.Vec[T]{X: cache[0], Y: cache[1], Z: cache[2], W: cache[3]}}
	*rot = s.Compute(pos[0], pos[1], size[0], size[1]).Array()
	*cache = [4]T{s.vec.X, s.vec.Y, s.vec.Z, s.vec.W}
}

// Array returns the cached position in (x, y, z, w) order.
func (s *State[T]) Array() [4]T {
	return [4]T{s.vec.X, s.vec.Y, s.vec.Z, s.vec.W}
}

// SetArray restores a cached position from its (x, y, z, w) form.
func (s *State[T]) SetArray(a [4]T) {
	s.vec = geom.Vec[T]{X: a[0], Y: a[1], Z: a[2], W: a[3]}
}
