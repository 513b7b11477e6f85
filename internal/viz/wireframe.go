package viz

import "github.com/go-gl/mathgl/mgl64"

// Wireframe is a set of model-space vertices and the edges connecting
// them.
type Wireframe struct {
	Vertices []mgl64.Vec3
	Edges    [][2]int
}

// Cube builds a wireframe cube of the given half extent centered on the
// origin.
func Cube(half float64) Wireframe {
	h := half
	return Wireframe{
		Vertices: []mgl64.Vec3{
			{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
			{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
		},
		Edges: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		},
	}
}

// Axes builds the three coordinate half-axes of the given length.
func Axes(length float64) Wireframe {
	return Wireframe{
		Vertices: []mgl64.Vec3{
			{0, 0, 0}, {length, 0, 0}, {0, length, 0}, {0, 0, length},
		},
		Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}},
	}
}

// DrawWireframe rotates w by q and projects it orthographically onto
// the canvas, model y up mapping to screen up. Scale is the subpixel
// length of one model unit.
func (c *Canvas) DrawWireframe(w Wireframe, q mgl64.Quat, scale float64) {
	// Canvas center in subpixels.
	cx := float64(c.Width)
	cy := float64(c.Height) * 2

	project := func(v mgl64.Vec3) (int, int) {
		p := q.Rotate(v)
		return int(cx + p.X()*scale), int(cy - p.Y()*scale)
	}

	for _, e := range w.Edges {
		x0, y0 := project(w.Vertices[e[0]])
		x1, y1 := project(w.Vertices[e[1]])
		c.Line(x0, y0, x1, y1)
	}
}
