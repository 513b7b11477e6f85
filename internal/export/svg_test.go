package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/trackball/internal/viz"
)

func TestCanvasSVG(t *testing.T) {
	c := viz.NewCanvas(10, 5)
	c.Set(3, 7)
	c.Set(4, 8)

	svg := CanvasSVG(c, 4)

	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("missing svg envelope")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
}

func TestCanvasSVGNil(t *testing.T) {
	if CanvasSVG(nil, 4) != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestWriteSVG(t *testing.T) {
	c := viz.NewCanvas(8, 4)
	c.Line(0, 0, 15, 15)

	path := filepath.Join(t.TempDir(), "trace.svg")
	if err := WriteSVG(path, c, 4); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<circle") {
		t.Error("expected dots in written file")
	}
}
