package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/gonum/floats"
)

const (
	leftMargin    = 48
	rightMargin   = 16
	topMargin     = 12
	bottomMargin  = 36
	waveformAlpha = 96
	tickCount     = 5
)

var (
	axisColor = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	zeroColor = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	textColor = color.RGBA{A: 255}
	face      = basicfont.Face7x13
)

// canvas maps data coordinates into one panel of img.
type canvas struct {
	img    *image.RGBA
	area   image.Rectangle
	time   []float64
	t0, t1 float64
	ymax   float64
}

func newCanvas(img *image.RGBA, area image.Rectangle, t []float64, ymax float64) *canvas {
	c := &canvas{img: img, area: area, time: t, ymax: ymax}
	if len(t) > 0 {
		c.t0, c.t1 = t[0], t[len(t)-1]
	}
	if c.t1 <= c.t0 {
		c.t1 = c.t0 + 1
	}
	return c
}

// panelRange returns the symmetric y half-range of the data shown in p,
// padded by 5 percent.
func panelRange(req Request, p panel) float64 {
	peak := 0.0
	grow := func(x []float64) {
		if len(x) == 0 {
			return
		}
		peak = math.Max(peak, math.Max(math.Abs(floats.Max(x)), math.Abs(floats.Min(x))))
	}
	if p.waveform {
		grow(req.Waveform)
	}
	for _, s := range p.curves {
		grow(s.Samples)
	}
	if peak == 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		peak = 1
	}
	return peak * 1.05
}

func (c *canvas) x(t float64) int {
	w := float64(c.area.Dx() - 1)
	return c.area.Min.X + int(math.Round((t-c.t0)/(c.t1-c.t0)*w))
}

func (c *canvas) y(v float64) int {
	h := float64(c.area.Dy() - 1)
	return c.area.Min.Y + int(math.Round((1-(v/c.ymax+1)/2)*h))
}

func (c *canvas) series(samples []float64, col color.RGBA) {
	if len(samples) == 0 {
		return
	}
	px, py := c.x(c.time[0]), c.y(samples[0])
	c.blend(px, py, col)
	for i := 1; i < len(samples); i++ {
		if math.IsNaN(samples[i]) {
			continue
		}
		nx, ny := c.x(c.time[i]), c.y(samples[i])
		c.line(px, py, nx, ny, col)
		px, py = nx, ny
	}
}

// line draws a Bresenham segment clipped to the panel.
func (c *canvas) line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.blend(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *canvas) blend(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.area) {
		return
	}
	if col.A == 255 {
		c.img.SetRGBA(x, y, col)
		return
	}
	dst := c.img.RGBAAt(x, y)
	a := uint32(col.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	c.img.SetRGBA(x, y, color.RGBA{R: mix(col.R, dst.R), G: mix(col.G, dst.G), B: mix(col.B, dst.B), A: 255})
}

func (c *canvas) axes(timeLabels bool) {
	r := c.area
	zy := c.y(0)
	for x := r.Min.X; x < r.Max.X; x++ {
		c.blend(x, zy, zeroColor)
		c.blend(x, r.Min.Y, axisColor)
		c.blend(x, r.Max.Y-1, axisColor)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		c.blend(r.Min.X, y, axisColor)
		c.blend(r.Max.X-1, y, axisColor)
	}

	c.text(r.Min.X-leftMargin+4, r.Min.Y+10, fmt.Sprintf("%.2g", c.ymax/1.05))
	c.text(r.Min.X-leftMargin+4, zy+4, "0")

	if !timeLabels {
		return
	}
	for i := 0; i <= tickCount; i++ {
		t := c.t0 + (c.t1-c.t0)*float64(i)/tickCount
		x := c.x(t)
		for y := r.Max.Y - 5; y < r.Max.Y; y++ {
			c.blend(x, y, axisColor)
		}
		c.text(x-10, r.Max.Y+13, fmt.Sprintf("%.1f", t))
	}
	c.text(r.Min.X+r.Dx()/2-28, r.Max.Y+28, "Time (s)")
}

func (c *canvas) legend(series []Series) {
	const lineHeight = 15
	x := c.area.Max.X - 8
	widest := 0
	for _, s := range series {
		if w := font.MeasureString(face, legendText(s.Label)).Ceil(); w > widest {
			widest = w
		}
	}
	x -= widest + 24
	y := c.area.Min.Y + 8
	for _, s := range series {
		for dx := 0; dx < 16; dx++ {
			c.blend(x+dx, y+lineHeight/2, s.Color)
			c.blend(x+dx, y+lineHeight/2+1, s.Color)
		}
		c.text(x+22, y+lineHeight-3, legendText(s.Label))
		y += lineHeight
	}
}

func (c *canvas) text(x, y int, s string) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// legendText maps characters the bitmap face lacks to ASCII.
func legendText(s string) string {
	return strings.ReplaceAll(s, "–", "-")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
