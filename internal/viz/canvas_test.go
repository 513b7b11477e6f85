package viz

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSetAndAt(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(7, 13)

	if !c.At(7, 13) {
		t.Error("expected subpixel to be set")
	}
	if c.At(7, 12) || c.At(6, 13) {
		t.Error("neighboring subpixels should be clear")
	}
}

func TestSetOutOfRangeIgnored(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(20, 0)
	c.Set(0, 20)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if c.At(x, y) {
				t.Fatalf("unexpected subpixel at (%d, %d)", x, y)
			}
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	c := NewCanvas(20, 10)

	c.Line(2, 3, 17, 30)

	if !c.At(2, 3) || !c.At(17, 30) {
		t.Error("line should cover both endpoints")
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(5, 5)
	c.Line(0, 0, 9, 19)
	c.Clear()

	if strings.TrimRight(strings.ReplaceAll(c.String(), "⠀", ""), "\n ") != "" {
		t.Error("expected empty canvas after clear")
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(12, 4)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 12 {
			t.Errorf("row %d: expected 12 cells, got %d", i, n)
		}
	}
}

func TestDrawWireframeSetsPixels(t *testing.T) {
	c := NewCanvas(40, 20)

	c.DrawWireframe(Cube(1), mgl64.QuatIdent(), 20)

	set := 0
	for y := 0; y < c.Height*4; y++ {
		for x := 0; x < c.Width*2; x++ {
			if c.At(x, y) {
				set++
			}
		}
	}
	if set == 0 {
		t.Error("expected wireframe to set subpixels")
	}
}

func TestCubeTopology(t *testing.T) {
	cube := Cube(1)

	if len(cube.Vertices) != 8 {
		t.Errorf("expected 8 vertices, got %d", len(cube.Vertices))
	}
	if len(cube.Edges) != 12 {
		t.Errorf("expected 12 edges, got %d", len(cube.Edges))
	}

	degree := make(map[int]int)
	for _, e := range cube.Edges {
		degree[e[0]]++
		degree[e[1]]++
	}
	for v := 0; v < 8; v++ {
		if degree[v] != 3 {
			t.Errorf("vertex %d has degree %d, expected 3", v, degree[v])
		}
	}
}
