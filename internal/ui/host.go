package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

var (
	// ErrDestroyed is returned when a component is torn down twice.
	ErrDestroyed = errors.New("already destroyed")
	// ErrNotAttached is returned when removing a node the body does not hold.
	ErrNotAttached = errors.New("node is not attached")
)

// Host is the document the widget components attach their root nodes to.
// Nodes are stacked in append order, so later nodes draw on top.
type Host struct {
	window   fyne.Window
	body     *fyne.Container
	fallback fyne.Size
}

// NewHost makes an empty body the content of w. fallback is reported by
// OuterSize until the window canvas has a size of its own.
func NewHost(w fyne.Window, fallback fyne.Size) *Host {
	h := &Host{
		window:   w,
		body:     container.NewStack(),
		fallback: fallback,
	}
	w.SetContent(h.body)
	return h
}

func (h *Host) Window() fyne.Window   { return h.window }
func (h *Host) Body() *fyne.Container { return h.body }

// Append adds a root node on top of the existing ones.
func (h *Host) Append(o fyne.CanvasObject) {
	h.body.Add(o)
}

// Remove detaches a root node.
func (h *Host) Remove(o fyne.CanvasObject) error {
	if !h.Contains(o) {
		return fmt.Errorf("remove node: %w", ErrNotAttached)
	}
	h.body.Remove(o)
	return nil
}

// Contains reports whether o is a root node of the body.
func (h *Host) Contains(o fyne.CanvasObject) bool {
	for _, child := range h.body.Objects {
		if child == o {
			return true
		}
	}
	return false
}

// OuterSize is the current size of the window's canvas.
func (h *Host) OuterSize() fyne.Size {
	size := h.window.Canvas().Size()
	if size.Width <= 0 || size.Height <= 0 {
		return h.fallback
	}
	return size
}
