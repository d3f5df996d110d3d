package style

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Box is a styled element wrapping a single child. It fills whatever its
// parent gives it and places the child according to its declaration.
type Box struct {
	widget.BaseWidget
	ID string

	style   Declaration
	content fyne.CanvasObject
}

var _ fyne.Widget = (*Box)(nil)
var _ Styled = (*Box)(nil)

// NewBox wraps content in a styled element with the given id.
func NewBox(id string, content fyne.CanvasObject) *Box {
	b := &Box{ID: id, content: content}
	b.ExtendBaseWidget(b)
	return b
}

// Style returns the element's style surface.
func (b *Box) Style() *Declaration {
	return &b.style
}

// Content returns the wrapped child.
func (b *Box) Content() fyne.CanvasObject {
	return b.content
}

// Frame returns the position and size of the border box inside an element
// of the given outer size.
func (b *Box) Frame(outer fyne.Size) (fyne.Position, fyne.Size) {
	m, _ := b.style.Edges("margin")
	size := b.boxSize()

	if b.style.Get("position") != "absolute" {
		return fyne.NewPos(m.Left, m.Top),
			fyne.NewSize(outer.Width-m.Left-m.Right, outer.Height-m.Top-m.Bottom)
	}

	var x, y float32
	if left, ok := b.style.Length("left"); ok {
		x = left + m.Left
	} else if right, ok := b.style.Length("right"); ok {
		x = outer.Width - right - m.Right - size.Width
	}
	if top, ok := b.style.Length("top"); ok {
		y = top + m.Top
	} else if bottom, ok := b.style.Length("bottom"); ok {
		y = outer.Height - bottom - m.Bottom - size.Height
	}
	return fyne.NewPos(x, y), size
}

func (b *Box) boxSize() fyne.Size {
	size := b.content.MinSize()
	if w, ok := b.style.Length("min-width"); ok && w > size.Width {
		size.Width = w
	}
	if h, ok := b.style.Length("min-height"); ok && h > size.Height {
		size.Height = h
	}
	if w, ok := b.style.Length("width"); ok {
		size.Width = w
	}
	if h, ok := b.style.Length("height"); ok {
		size.Height = h
	}
	return size
}

func (b *Box) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.Transparent)
	return &boxRenderer{box: b, background: bg}
}

type boxRenderer struct {
	box        *Box
	background *canvas.Rectangle
}

func (r *boxRenderer) Layout(size fyne.Size) {
	pos, inner := r.box.Frame(size)
	r.background.Move(pos)
	r.background.Resize(inner)
	r.box.content.Move(pos)
	r.box.content.Resize(inner)
}

func (r *boxRenderer) MinSize() fyne.Size {
	m, _ := r.box.style.Edges("margin")
	size := r.box.boxSize()
	return fyne.NewSize(size.Width+m.Left+m.Right, size.Height+m.Top+m.Bottom)
}

func (r *boxRenderer) Refresh() {
	s := &r.box.style
	r.background.FillColor = color.Transparent
	if c, ok := s.Color("background-color"); ok {
		r.background.FillColor = c
	}
	r.background.StrokeWidth = 0
	r.background.StrokeColor = color.Transparent
	if w, ok := s.Length("border-width"); ok {
		if c, ok := s.Color("border-color"); ok {
			r.background.StrokeWidth = w
			r.background.StrokeColor = c
		}
	}
	r.background.CornerRadius = 0
	if radius, ok := s.Length("border-radius"); ok {
		r.background.CornerRadius = radius
	}
	r.Layout(r.box.Size())
	r.background.Refresh()
	r.box.content.Refresh()
}

func (r *boxRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.box.content}
}

func (r *boxRenderer) Destroy() {}
