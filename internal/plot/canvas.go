package plot

import (
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"
)

// braille dot bit for pixel (x%2, y%4) inside a cell.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a monochrome-per-cell Braille raster: every terminal cell holds
// a 2×4 dot matrix and one colour.
type Canvas struct {
	cols, rows int
	dots       []rune
	colors     []color.Color
}

// NewCanvas creates a canvas cols cells wide and rows cells tall.
func NewCanvas(cols, rows int) *Canvas {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Canvas{
		cols:   cols,
		rows:   rows,
		dots:   make([]rune, cols*rows),
		colors: make([]color.Color, cols*rows),
	}
}

// PixelSize returns the dot resolution of the canvas.
func (c *Canvas) PixelSize() (int, int) {
	return c.cols * 2, c.rows * 4
}

// Set turns on the dot at pixel (x, y). Out-of-range pixels are ignored.
func (c *Canvas) Set(x, y int, col color.Color) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	i := (y/4)*c.cols + x/2
	c.dots[i] |= brailleBits[y%4][x%2]
	if col != nil {
		c.colors[i] = col
	}
}

// IsSet reports whether the dot at pixel (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return false
	}
	return c.dots[(y/4)*c.cols+x/2]&brailleBits[y%4][x%2] != 0
}

// Line draws a segment between two pixel positions (Bresenham).
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Stipple sets every fourth dot inside poly, a light shade that leaves the
// outline readable.
func (c *Canvas) Stipple(poly [][2]float64, col color.Color) {
	pw, ph := c.PixelSize()
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if (x+2*y)%4 != 0 {
				continue
			}
			if pointInPolygon(float64(x)+0.5, float64(y)+0.5, poly) {
				c.Set(x, y, col)
			}
		}
	}
}

// Rows renders the canvas, one string per terminal row.
func (c *Canvas) Rows() []string {
	out := make([]string, c.rows)
	for r := 0; r < c.rows; r++ {
		var b strings.Builder
		for col := 0; col < c.cols; col++ {
			i := r*c.cols + col
			if c.dots[i] == 0 {
				b.WriteByte(' ')
				continue
			}
			ch := string(0x2800 + c.dots[i])
			if c.colors[i] != nil {
				ch = lipgloss.NewStyle().Foreground(c.colors[i]).Render(ch)
			}
			b.WriteString(ch)
		}
		out[r] = b.String()
	}
	return out
}

// String renders the canvas as newline-separated rows.
func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}

func pointInPolygon(x, y float64, poly [][2]float64) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		xi, yi := poly[i][0], poly[i][1]
		xj, yj := poly[j][0], poly[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			in = !in
		}
	}
	return in
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func round(f float64) int {
	return int(math.Round(f))
}
