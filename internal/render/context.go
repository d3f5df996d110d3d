// Package render is an immediate-mode 2D drawing context over an RGBA image.
// Paths are rasterised as soon as they are stroked; nothing but the pixels is
// retained.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

const miterLimit = 10

// Context draws onto a fixed-size image.
type Context struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV

	lineWidth   float64
	strokeStyle color.Color
	lineCap     LineCap
	lineJoin    LineJoin

	path [][]fixed.Point26_6
}

// NewContext allocates a transparent w x h surface with the usual defaults:
// 1px black lines, butt caps and miter joins.
func NewContext(w, h int) *Context {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Context{
		img:         img,
		scanner:     rasterx.NewScannerGV(w, h, img, img.Bounds()),
		lineWidth:   1,
		strokeStyle: color.Black,
		lineCap:     CapButt,
		lineJoin:    JoinMiter,
	}
}

// Image returns the backing image. It is drawn into in place.
func (c *Context) Image() *image.RGBA { return c.img }

// Width returns the surface width in pixels.
func (c *Context) Width() int { return c.img.Bounds().Dx() }

// Height returns the surface height in pixels.
func (c *Context) Height() int { return c.img.Bounds().Dy() }

func (c *Context) LineWidth() float64       { return c.lineWidth }
func (c *Context) StrokeStyle() color.Color { return c.strokeStyle }
func (c *Context) LineCap() LineCap         { return c.lineCap }
func (c *Context) LineJoin() LineJoin       { return c.lineJoin }

// SetLineWidth ignores zero, negative and non-finite widths.
func (c *Context) SetLineWidth(w float64) {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return
	}
	c.lineWidth = w
}

// SetStrokeStyle ignores nil.
func (c *Context) SetStrokeStyle(col color.Color) {
	if col == nil {
		return
	}
	c.strokeStyle = col
}

func (c *Context) SetLineCap(lc LineCap)   { c.lineCap = lc }
func (c *Context) SetLineJoin(lj LineJoin) { c.lineJoin = lj }

// BeginPath discards every subpath.
func (c *Context) BeginPath() {
	c.path = c.path[:0]
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.path = append(c.path, []fixed.Point26_6{rasterx.ToFixedP(x, y)})
}

// LineTo extends the last subpath. With no subpath it acts as MoveTo.
func (c *Context) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	last := len(c.path) - 1
	c.path[last] = append(c.path[last], rasterx.ToFixedP(x, y))
}

// Points returns the number of points in the current path.
func (c *Context) Points() int {
	n := 0
	for _, sp := range c.path {
		n += len(sp)
	}
	return n
}

// Stroke paints the current path with the current line state. The path is
// kept, so a later Stroke paints it again.
func (c *Context) Stroke() {
	if c.img.Bounds().Empty() {
		return
	}
	w, h := c.Width(), c.Height()
	st := rasterx.NewStroker(w, h, c.scanner)
	st.SetStroke(
		fixed.Int26_6(c.lineWidth*64),
		fixed.Int26_6(miterLimit*64),
		capFunc(c.lineCap), capFunc(c.lineCap),
		gapFunc(c.lineJoin), joinMode(c.lineJoin),
	)
	st.SetColor(c.strokeStyle)

	painted := false
	for _, sp := range c.path {
		if len(sp) < 2 {
			continue
		}
		st.Start(sp[0])
		for _, p := range sp[1:] {
			st.Line(p)
		}
		st.Stop(false)
		painted = true
	}
	if painted {
		st.Draw()
	}
	st.Clear()
}

// ClearRect resets the covered pixels to transparent.
func (c *Context) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Canon().Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.Transparent, image.Point{}, draw.Src)
}

func capFunc(lc LineCap) rasterx.CapFunc {
	switch lc {
	case CapRound:
		return rasterx.RoundCap
	case CapSquare:
		return rasterx.SquareCap
	default:
		return rasterx.ButtCap
	}
}

func gapFunc(lj LineJoin) rasterx.GapFunc {
	if lj == JoinRound {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}

func joinMode(lj LineJoin) rasterx.JoinMode {
	switch lj {
	case JoinRound:
		return rasterx.Round
	case JoinBevel:
		return rasterx.Bevel
	default:
		return rasterx.Miter
	}
}
