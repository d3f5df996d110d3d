package ui

import (
	"image"
	"log"

	"SketchPad/internal/render"
	"SketchPad/internal/state"
	"SketchPad/internal/style"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// pad is the node that receives pointer input for the surface and shows its
// pixels. Each input kind is forwarded to a listener field; a nil field drops
// the event.
type pad struct {
	widget.BaseWidget
	raster *canvas.Raster

	OnMouseDown func(state.Point)
	OnMouseUp   func(state.Point)
	OnMouseMove func(state.Point)
	OnTouchDown func(state.Point)
	OnTouchUp   func(state.Point)
	OnTouchMove func(state.Point)
}

var _ fyne.Widget = (*pad)(nil)
var _ desktop.Mouseable = (*pad)(nil)
var _ desktop.Hoverable = (*pad)(nil)
var _ mobile.Touchable = (*pad)(nil)
var _ fyne.Draggable = (*pad)(nil)

func newPad(img image.Image, size fyne.Size) *pad {
	p := &pad{}
	p.raster = canvas.NewRaster(func(w, h int) image.Image { return img })
	p.raster.ScaleMode = canvas.ImageScalePixels
	p.raster.SetMinSize(size)
	p.ExtendBaseWidget(p)
	return p
}

func (p *pad) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.raster)
}

func toPoint(pos fyne.Position) state.Point {
	return state.Point{X: pos.X, Y: pos.Y}
}

func dispatch(fn func(state.Point), pos fyne.Position) {
	if fn != nil {
		fn(toPoint(pos))
	}
}

func (p *pad) MouseDown(e *desktop.MouseEvent)  { dispatch(p.OnMouseDown, e.Position) }
func (p *pad) MouseUp(e *desktop.MouseEvent)    { dispatch(p.OnMouseUp, e.Position) }
func (p *pad) MouseMoved(e *desktop.MouseEvent) { dispatch(p.OnMouseMove, e.Position) }
func (p *pad) MouseIn(*desktop.MouseEvent)      {}
func (p *pad) MouseOut()                        {}

func (p *pad) TouchDown(e *mobile.TouchEvent) { dispatch(p.OnTouchDown, e.Position) }
func (p *pad) TouchUp(e *mobile.TouchEvent)   { dispatch(p.OnTouchUp, e.Position) }
func (p *pad) TouchCancel(*mobile.TouchEvent) {}

// Dragged carries touch movement. On desktop it also fires while a mouse
// button is held, alongside MouseMoved.
func (p *pad) Dragged(e *fyne.DragEvent) { dispatch(p.OnTouchMove, e.Position) }
func (p *pad) DragEnd()                  {}

// DrawingSurface owns the drawing viewport and paints freehand strokes into
// it as the pointer moves.
type DrawingSurface struct {
	host *Host
	node *style.Box
	pad  *pad
	ctx  *render.Context

	config    state.StrokeConfig
	drawing   bool
	destroyed bool
}

// NewDrawingSurface creates a surface the size of the host window and
// appends it to the host body. The size is fixed from then on.
func NewDrawingSurface(host *Host) *DrawingSurface {
	s := &DrawingSurface{
		host:   host,
		config: state.DefaultStrokeConfig(),
	}
	s.build()
	return s
}

func (s *DrawingSurface) build() {
	size := s.host.OuterSize()
	s.ctx = render.NewContext(int(size.Width), int(size.Height))

	s.pad = newPad(s.ctx.Image(), size)
	s.node = style.NewBox("cdCanvas", s.pad)
	style.Assign(s.node, style.Props{
		"position": "absolute",
		"top":      0,
		"right":    0,
	})

	s.attach()
	s.host.Append(s.node)
	log.Printf("[SURFACE] Created %dx%d drawing surface", s.ctx.Width(), s.ctx.Height())
}

func (s *DrawingSurface) attach() {
	s.pad.OnMouseDown = s.onPointerDown
	s.pad.OnTouchDown = s.onPointerDown
	s.pad.OnMouseUp = s.onPointerUp
	s.pad.OnTouchUp = s.onPointerUp
	s.pad.OnMouseMove = s.onPointerMove
	s.pad.OnTouchMove = s.onPointerMove
}

func (s *DrawingSurface) detach() {
	s.pad.OnMouseDown = nil
	s.pad.OnTouchDown = nil
	s.pad.OnMouseUp = nil
	s.pad.OnTouchUp = nil
	s.pad.OnMouseMove = nil
	s.pad.OnTouchMove = nil
}

// Destroy detaches the pointer listeners and removes the surface from the
// host. A second call returns ErrDestroyed.
func (s *DrawingSurface) Destroy() error {
	if s.destroyed {
		return ErrDestroyed
	}
	s.destroyed = true
	s.detach()
	return s.host.Remove(s.node)
}

// Setup updates the stroke configuration used from the next pointer down.
// See state.StrokeConfig.Apply for which fields count as set.
func (s *DrawingSurface) Setup(opts state.StrokeOptions) {
	s.config.Apply(opts)
}

// Clear erases every painted pixel. Configuration and drawing state are kept.
func (s *DrawingSurface) Clear() {
	s.ctx.ClearRect(0, 0, float64(s.ctx.Width()), float64(s.ctx.Height()))
	s.pad.raster.Refresh()
}

// Config returns the stored stroke configuration.
func (s *DrawingSurface) Config() state.StrokeConfig { return s.config }

// Drawing reports whether a stroke is in progress.
func (s *DrawingSurface) Drawing() bool { return s.drawing }

// Image returns the painted pixels.
func (s *DrawingSurface) Image() *image.RGBA { return s.ctx.Image() }

func (s *DrawingSurface) onPointerDown(pt state.Point) {
	s.drawing = true
	s.ctx.BeginPath()
	s.ctx.MoveTo(float64(pt.X), float64(pt.Y))
	s.ctx.SetLineWidth(s.config.Width)
	if c, ok := style.ParseColor(s.config.Color); ok {
		s.ctx.SetStrokeStyle(c)
	} else {
		log.Printf("[SURFACE] Ignoring unknown stroke colour %q", s.config.Color)
	}
	s.ctx.SetLineJoin(render.JoinRound)
	s.ctx.SetLineCap(render.CapRound)
}

func (s *DrawingSurface) onPointerUp(state.Point) {
	s.drawing = false
}

func (s *DrawingSurface) onPointerMove(pt state.Point) {
	if !s.drawing {
		return
	}
	s.ctx.LineTo(float64(pt.X), float64(pt.Y))
	s.ctx.Stroke()
	s.pad.raster.Refresh()
}
