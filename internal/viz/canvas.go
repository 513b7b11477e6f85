// Package viz renders wireframe geometry onto a terminal canvas built
// from braille cells, giving a 2×4 subpixel grid per character.
package viz

import "strings"

// Braille dot offsets within one cell:
//
//	1 4
//	2 5
//	3 6
//	7 8
var dotBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

const brailleBase = 0x2800

// Canvas is a grid of braille cells addressed in subpixel coordinates.
// A canvas of Width×Height cells spans (Width*2)×(Height*4) subpixels.
type Canvas struct {
	Width, Height int
	cells         []rune
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{Width: width, Height: height, cells: make([]rune, width*height)}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = brailleBase
	}
}

// Set turns on the subpixel at (x, y). Out-of-range coordinates are
// ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.cells[row*c.Width+col] |= dotBits[y%4][x%2]
}

// At reports whether the subpixel at (x, y) is set.
func (c *Canvas) At(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.cells[row*c.Width+col]&dotBits[y%4][x%2] != 0
}

// Line draws a subpixel line from (x0, y0) to (x1, y1) with Bresenham's
// algorithm.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.Height * (c.Width + 1))
	for row := 0; row < c.Height; row++ {
		sb.WriteString(string(c.cells[row*c.Width : (row+1)*c.Width]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
