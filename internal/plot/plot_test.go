package plot

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blue = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}

func triangleFigure() *Figure {
	return &Figure{
		Title:       "Triangle",
		EqualAspect: true,
		Bounds:      Rect{-1, -1, 6, 5},
		Series: []Series{{
			Label:   "Triangle A",
			Color:   blue,
			Points:  []Point{{0, 0}, {5, 0}, {0, 4}},
			Closed:  true,
			Fill:    true,
			Markers: true,
		}},
	}
}

func TestCanvas_SetAndIsSet(t *testing.T) {
	c := NewCanvas(3, 2)
	w, h := c.PixelSize()
	assert.Equal(t, 6, w)
	assert.Equal(t, 8, h)

	c.Set(0, 0, nil)
	c.Set(5, 7, nil)
	c.Set(-1, 0, nil)
	c.Set(6, 0, nil)

	assert.True(t, c.IsSet(0, 0))
	assert.True(t, c.IsSet(5, 7))
	assert.False(t, c.IsSet(1, 0))

	rows := c.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "⠁  ", rows[0])
	assert.Equal(t, "  ⢀", rows[1])
}

func TestCanvas_FullCell(t *testing.T) {
	c := NewCanvas(1, 1)
	for x := 0; x < 2; x++ {
		for y := 0; y < 4; y++ {
			c.Set(x, y, nil)
		}
	}
	assert.Equal(t, "⣿", c.String())
}

func TestCanvas_Line(t *testing.T) {
	c := NewCanvas(5, 1)
	c.Line(0, 0, 9, 0, nil)
	for x := 0; x < 10; x++ {
		assert.True(t, c.IsSet(x, 0), "x=%d", x)
	}
	assert.False(t, c.IsSet(0, 1))
}

func TestPointInPolygon(t *testing.T) {
	square := [][2]float64{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	assert.True(t, pointInPolygon(2, 2, square))
	assert.False(t, pointInPolygon(5, 2, square))
}

func TestViewport_FitsData(t *testing.T) {
	f := &Figure{Series: []Series{{Points: []Point{{-2, 1}, {3, 7}}}}}
	assert.Equal(t, Rect{-2, 1, 3, 7}, f.Viewport())

	empty := &Figure{}
	assert.Equal(t, Rect{0, 0, 1, 1}, empty.Viewport())
}

func TestFitAspect(t *testing.T) {
	r := fitAspect(Rect{0, 0, 10, 2}, 100, 100)
	assert.InDelta(t, r.Width(), r.Height(), 1e-9)
	assert.InDelta(t, -4.0, r.MinY, 1e-9)
}

func TestRender_Layout(t *testing.T) {
	out := Render(triangleFigure(), 40, 16)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 16)
	assert.Contains(t, out, "Triangle A")
	assert.Contains(t, out, "x: [")
}

func TestRender_SkipsNonFinite(t *testing.T) {
	f := &Figure{Series: []Series{{Points: []Point{{0, 0}, {1, 1}}}}}
	f.Series[0].Points = append(f.Series[0].Points, Point{X: 2, Y: math.Inf(1)}, Point{X: math.NaN(), Y: 0})
	assert.NotPanics(t, func() { Render(f, 20, 8) })
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, triangleFigure(), 200, 160))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.png")
	require.NoError(t, SavePNG(path, triangleFigure(), 120, 120))

	err := SavePNG(filepath.Join(t.TempDir(), "missing", "x.png"), triangleFigure(), 120, 120)
	assert.Error(t, err)
}
