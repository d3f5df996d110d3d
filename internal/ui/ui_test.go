package ui

import (
	"image"
	"image/color"
	"testing"

	"SketchPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(320, 240))
	return NewHost(w, fyne.NewSize(320, 240))
}

func mouseEvent(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func touchEvent(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func mouseDown(p *pad, x, y float32) { p.MouseDown(mouseEvent(x, y)) }
func mouseMove(p *pad, x, y float32) { p.MouseMoved(mouseEvent(x, y)) }
func mouseUp(p *pad, x, y float32)   { p.MouseUp(mouseEvent(x, y)) }

func painted(img *image.RGBA, x, y int) bool {
	return img.RGBAAt(x, y).A > 200
}

func isRed(c color.RGBA) bool {
	return c.R > 200 && c.G < 50 && c.B < 50 && c.A > 200
}

func blank(img *image.RGBA) bool {
	for _, v := range img.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

func padListeners(p *pad) int {
	n := 0
	for _, fn := range []func(state.Point){
		p.OnMouseDown, p.OnMouseUp, p.OnMouseMove,
		p.OnTouchDown, p.OnTouchUp, p.OnTouchMove,
	} {
		if fn != nil {
			n++
		}
	}
	return n
}

func panelListeners(p *ToolsPanel) int {
	n := 0
	if p.width.OnCommit != nil {
		n++
	}
	if p.color.OnChanged != nil {
		n++
	}
	for _, fn := range []func(){p.clear.OnTapped, p.clear.OnTouchDown, p.destroy.OnTapped, p.destroy.OnTouchDown} {
		if fn != nil {
			n++
		}
	}
	return n
}
