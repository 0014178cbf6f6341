package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cells is a Canvas over a terminal rune grid, used by the interactive
// viewer. A terminal cell is roughly twice as tall as it is wide, so the
// canvas exposes a square pixel space of cols x rows*2 and halves y when
// plotting; layout math stays isotropic and the picture keeps its aspect.
type Cells struct {
	cols, rows int
	runes      []rune
	colors     []Color
	set        []bool
}

// NewCells creates a cell canvas with the given terminal dimensions.
func NewCells(cols, rows int) *Cells {
	n := cols * rows
	return &Cells{
		cols:   cols,
		rows:   rows,
		runes:  make([]rune, n),
		colors: make([]Color, n),
		set:    make([]bool, n),
	}
}

func (c *Cells) Size() (float64, float64) {
	return float64(c.cols), float64(c.rows * 2)
}

func (c *Cells) plot(x, y float64, r rune, col Color) {
	cx := int(math.Round(x))
	cy := int(math.Round(y / 2))
	if cx < 0 || cx >= c.cols || cy < 0 || cy >= c.rows {
		return
	}
	i := cy*c.cols + cx
	c.runes[i] = r
	c.colors[i] = col
	c.set[i] = true
}

func (c *Cells) Clear(bg Color) {
	for i := range c.runes {
		c.runes[i] = ' '
		c.set[i] = false
	}
}

func (c *Cells) sampleLine(x1, y1, x2, y2 float64, r rune, col Color) {
	steps := int(math.Max(math.Abs(x2-x1), math.Abs(y2-y1)/2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(x1+(x2-x1)*t, y1+(y2-y1)*t, r, col)
	}
}

func (c *Cells) Line(x1, y1, x2, y2 float64, col Color, width float64) {
	r := '·'
	if width >= 2 {
		r = '•'
	}
	c.sampleLine(x1, y1, x2, y2, r, col)
}

func (c *Cells) QuadCurve(x1, y1, cx, cy, x2, y2 float64, col Color, width float64) {
	const segments = 24
	px, py := x1, y1
	for i := 1; i <= segments; i++ {
		t := float64(i) / segments
		u := 1 - t
		nx := u*u*x1 + 2*u*t*cx + t*t*x2
		ny := u*u*y1 + 2*u*t*cy + t*t*y2
		c.sampleLine(px, py, nx, ny, '∙', col)
		px, py = nx, ny
	}
}

func (c *Cells) FillCircle(x, y, radius float64, col Color) {
	if radius <= 1.5 {
		c.plot(x, y, '●', col)
		return
	}
	for dy := -radius; dy <= radius; dy += 2 {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				c.plot(x+dx, y+dy, '█', col)
			}
		}
	}
}

func (c *Cells) StrokeCircle(x, y, radius float64, col Color, width float64) {
	steps := int(math.Max(8, radius*4))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.plot(x+radius*math.Cos(a), y+radius*math.Sin(a), '•', col)
	}
}

func (c *Cells) FillPolygon(pts []Point, col Color) {
	if len(pts) == 0 {
		return
	}
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		c.sampleLine(p.X, p.Y, q.X, q.Y, '▪', col)
	}
	c.plot(cx, cy, '▪', col)
}

func (c *Cells) FillRect(x, y, w, h float64, col Color) {
	for yy := y; yy <= y+h; yy += 2 {
		for xx := x; xx <= x+w; xx++ {
			c.plot(xx, yy, ' ', col)
		}
	}
}

func (c *Cells) Text(x, y float64, s string, col Color, size float64, align Align) {
	runes := []rune(s)
	start := x
	if align == AlignCenter {
		start = x - float64(len(runes))/2
	}
	for i, r := range runes {
		c.plot(start+float64(i), y, r, col)
	}
}

// View renders the grid as a lipgloss-styled string, one line per terminal
// row, batching runs of equally colored cells.
func (c *Cells) View() string {
	var out strings.Builder
	for row := 0; row < c.rows; row++ {
		var run strings.Builder
		var runColor Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(runColor.Hex())).
				Render(run.String()))
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			if !c.set[i] {
				flush()
				out.WriteRune(' ')
				continue
			}
			if run.Len() > 0 && c.colors[i] != runColor {
				flush()
			}
			runColor = c.colors[i]
			run.WriteRune(c.runes[i])
		}
		flush()
		if row < c.rows-1 {
			out.WriteRune('\n')
		}
	}
	return out.String()
}
