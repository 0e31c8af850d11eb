package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/geom"
)

// Braille cells hold a 2x4 grid of dots:
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	blank = 0x2800
	// Dot is the size of one braille dot in arena pixels.
	Dot = 5.0
	// CellW and CellH are one terminal cell in arena pixels.
	CellW = 2 * Dot
	CellH = 4 * Dot

	// Fills at or above this alpha erase what is under them.
	opaque = 128
)

// Canvas is a braille Surface. Shapes are drawn as dot outlines, text is
// laid over whole cells, and every cell keeps the colour it was last drawn
// with.
type Canvas struct {
	Width, Height int

	dots  [][]rune
	text  [][]rune
	color [][]config.Color
	clip  *geom.Rect
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the canvas to w×h cells and clears it.
func (c *Canvas) Resize(w, h int) {
	c.Width, c.Height = max(w, 0), max(h, 0)
	c.dots = make([][]rune, c.Height)
	c.text = make([][]rune, c.Height)
	c.color = make([][]config.Color, c.Height)
	for i := range c.dots {
		c.dots[i] = make([]rune, c.Width)
		c.text[i] = make([]rune, c.Width)
		c.color[i] = make([]config.Color, c.Width)
	}
	c.Clear(config.Color{})
}

// Size is the canvas extent in arena pixels.
func (c *Canvas) Size() geom.Vec {
	return geom.V(float64(c.Width)*CellW, float64(c.Height)*CellH)
}

func (c *Canvas) visible(p geom.Vec) bool {
	return c.clip == nil || c.clip.Contains(p)
}

// set lights the dot at sub-pixel (x, y).
func (c *Canvas) set(x, y int, col config.Color) {
	if x < 0 || y < 0 {
		return
	}
	row, cell := y/4, x/2
	if cell >= c.Width || row >= c.Height {
		return
	}
	if !c.visible(geom.V((float64(x)+0.5)*Dot, (float64(y)+0.5)*Dot)) {
		return
	}
	c.dots[row][cell] |= pixelMap[y%4][x%2]
	c.color[row][cell] = col
}

func (c *Canvas) unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	row, cell := y/4, x/2
	if cell >= c.Width || row >= c.Height {
		return
	}
	c.dots[row][cell] &^= pixelMap[y%4][x%2]
}

// line draws between two sub-pixels with Bresenham's algorithm.
func (c *Canvas) line(x0, y0, x1, y1 int, col config.Color) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.set(x0, y0, col)
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

func dot(v float64) int { return int(math.Floor(v / Dot)) }

// Clear blanks every cell. Terminals keep their own background, so the
// colour is ignored.
func (c *Canvas) Clear(config.Color) {
	for i := range c.dots {
		for j := range c.dots[i] {
			c.dots[i][j] = blank
			c.text[i][j] = 0
			c.color[i][j] = config.Color{}
		}
	}
}

// Rect outlines r. An opaque fill also erases the dots and text it covers.
func (c *Canvas) Rect(r geom.Rect, col config.Color) {
	if col.A == 0 {
		return
	}
	x0, y0 := dot(r.X), dot(r.Y)
	x1, y1 := dot(r.X+r.W-1e-9), dot(r.Y+r.H-1e-9)

	if col.A >= opaque {
		for y := max(y0, 0); y <= y1; y++ {
			for x := max(x0, 0); x <= x1; x++ {
				if c.visible(geom.V((float64(x)+0.5)*Dot, (float64(y)+0.5)*Dot)) {
					c.unset(x, y)
				}
			}
		}
		for row := 0; row < c.Height; row++ {
			for cell := 0; cell < c.Width; cell++ {
				center := geom.V((float64(cell)+0.5)*CellW, (float64(row)+0.5)*CellH)
				if r.Contains(center) && c.visible(center) {
					c.text[row][cell] = 0
				}
			}
		}
	}

	c.line(x0, y0, x1, y0, col)
	c.line(x1, y0, x1, y1, col)
	c.line(x1, y1, x0, y1, col)
	c.line(x0, y1, x0, y0, col)
}

// Circle outlines a circle with the midpoint algorithm.
func (c *Canvas) Circle(center geom.Vec, radius float64, col config.Color) {
	if col.A == 0 {
		return
	}
	cx, cy := dot(center.X), dot(center.Y)
	r := int(math.Round(radius / Dot))
	if r <= 0 {
		c.set(cx, cy, col)
		return
	}
	x, y, err := r, 0, 1-r
	for x >= y {
		for _, p := range [8][2]int{{x, y}, {y, x}, {-y, x}, {-x, y}, {-x, -y}, {-y, -x}, {y, -x}, {x, -y}} {
			c.set(cx+p[0], cy+p[1], col)
		}
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// Text writes s into the cells centred on pos. Size and rotation cannot be
// shown in a terminal and are ignored; text under the opacity threshold is
// dropped.
func (c *Canvas) Text(s string, pos geom.Vec, _, _ float64, col config.Color) {
	if col.A < opaque/2 {
		return
	}
	for i, line := range strings.Split(s, "\n") {
		runes := []rune(line)
		row := int(math.Floor(pos.Y/CellH)) + i
		start := int(math.Round(pos.X/CellW - float64(len(runes))/2))
		for j, r := range runes {
			cell := start + j
			if row < 0 || row >= c.Height || cell < 0 || cell >= c.Width {
				continue
			}
			if !c.visible(geom.V((float64(cell)+0.5)*CellW, (float64(row)+0.5)*CellH)) {
				continue
			}
			c.text[row][cell] = r
			c.color[row][cell] = col
		}
	}
}

// MeasureText reports the cell-aligned extent of s.
func (c *Canvas) MeasureText(s string, _ float64) geom.Vec {
	lines := strings.Split(s, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	return geom.V(float64(w)*CellW, float64(len(lines))*CellH)
}

func (c *Canvas) Clip(r geom.Rect) { c.clip = &r }
func (c *Canvas) Unclip()          { c.clip = nil }

// Rune is what cell (x, y) shows: text wins over dots.
func (c *Canvas) Rune(x, y int) rune {
	if t := c.text[y][x]; t != 0 {
		return t
	}
	return c.dots[y][x]
}

// Plain renders the canvas without colour.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			b.WriteRune(c.Rune(x, y))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the canvas, styling each run of same-coloured cells once.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.Height; y++ {
		var run strings.Builder
		var cur config.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(foreground(cur).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.Width; x++ {
			r := c.Rune(x, y)
			col := c.color[y][x]
			if r == blank {
				col = config.Color{}
			}
			if col != cur {
				flush()
				cur = col
			}
			run.WriteRune(r)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

func foreground(c config.Color) lipgloss.Style {
	if c.A == 0 {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(hex(c))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
