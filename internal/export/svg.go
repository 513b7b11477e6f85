// Package export turns a rendered canvas into an SVG document, one dot
// per set subpixel.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/trackball/internal/viz"
)

// CanvasSVG renders every set subpixel of the canvas as a dot. Scale is
// the SVG size of one subpixel.
func CanvasSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * 2 * scale
	height := float64(canvas.Height) * 4 * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	r := scale * 0.4
	for y := 0; y < canvas.Height*4; y++ {
		for x := 0; x < canvas.Width*2; x++ {
			if !canvas.At(x, y) {
				continue
			}
			cx := (float64(x) + 0.5) * scale
			cy := (float64(y) + 0.5) * scale
			sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, r))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteSVG writes the canvas rendering to path.
func WriteSVG(path string, canvas *viz.Canvas, scale float64) error {
	return os.WriteFile(path, []byte(CanvasSVG(canvas, scale)), 0644)
}
