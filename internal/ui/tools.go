package ui

import (
	"log"
	"strconv"
	"strings"

	"SketchPad/internal/event"
	"SketchPad/internal/state"
	"SketchPad/internal/style"

	"fyne.io/fyne/v2/container"
)

// WidthChange is emitted when the user commits a new stroke width.
type WidthChange struct {
	StrokeWidth float64
}

// ColorChange is emitted when the user picks a new stroke colour.
type ColorChange struct {
	StrokeColor string
}

type ClearRequest struct{}

type DestroyRequest struct{}

// ToolsPanel is the floating control panel. It turns raw input into four
// semantic events and keeps no drawing state of its own.
type ToolsPanel struct {
	host *Host
	node *style.Box

	width   *numberInput
	color   *colorInput
	clear   *touchButton
	destroy *touchButton

	strokeWidth float64
	strokeColor string
	destroyed   bool

	widthChanged     event.Feed[WidthChange]
	colorChanged     event.Feed[ColorChange]
	clearRequested   event.Feed[ClearRequest]
	destroyRequested event.Feed[DestroyRequest]
}

// NewToolsPanel builds the panel and appends it to the host body.
func NewToolsPanel(host *Host) *ToolsPanel {
	p := &ToolsPanel{
		host:        host,
		strokeWidth: state.DefaultStrokeWidth,
		strokeColor: state.DefaultStrokeColor,
	}
	p.build()
	return p
}

func (p *ToolsPanel) build() {
	p.width = newNumberInput(strconv.FormatFloat(p.strokeWidth, 'f', -1, 64))
	widthNode := style.NewBox("cdPanel_strokeWidth", p.width)
	style.Assign(widthNode, style.Props{
		"margin":       "8px 15px",
		"min-width":    "80px",
		"border-color": "white",
	})

	p.color = newColorInput(p.strokeColor, p.host.Window())
	colorNode := style.NewBox("cdPanel_colorPicker", p.color)
	style.Assign(colorNode, style.Props{
		"margin":       "8px 15px 8px 0",
		"border-color": "white",
	})

	p.clear = newTouchButton("Clear")
	clearNode := style.NewBox("cdPanel_clearButton", p.clear)
	style.Assign(clearNode, style.Props{"margin": "8px 15px 8px 0"})

	p.destroy = newTouchButton("Destroy")
	destroyNode := style.NewBox("cdPanel_destroyButton", p.destroy)
	style.Assign(destroyNode, style.Props{"margin": "8px 15px 8px 0"})

	p.node = style.NewBox("cdPanel_container",
		container.NewHBox(widthNode, colorNode, clearNode, destroyNode))
	style.Assign(p.node, style.Props{
		"position":         "absolute",
		"top":              0,
		"right":            "10px",
		"background-color": "#FFFFFF",
		"border-width":     "2px",
		"border-radius":    "25px",
	})

	p.attach()
	p.host.Append(p.node)
}

func (p *ToolsPanel) attach() {
	p.width.OnCommit = p.onStrokeWidthChanged
	p.color.OnChanged = p.onStrokeColorChanged
	p.clear.OnTapped = p.onClearClicked
	p.clear.OnTouchDown = p.onClearClicked
	p.destroy.OnTapped = p.onDestroyClicked
	p.destroy.OnTouchDown = p.onDestroyClicked
}

func (p *ToolsPanel) detach() {
	p.width.OnCommit = nil
	p.color.OnChanged = nil
	p.clear.OnTapped = nil
	p.clear.OnTouchDown = nil
	p.destroy.OnTapped = nil
	p.destroy.OnTouchDown = nil
}

// Destroy detaches the input listeners and removes the panel from the host.
// A second call returns ErrDestroyed.
func (p *ToolsPanel) Destroy() error {
	if p.destroyed {
		return ErrDestroyed
	}
	p.destroyed = true
	p.detach()
	return p.host.Remove(p.node)
}

// OnWidthChange subscribes to committed stroke width changes.
func (p *ToolsPanel) OnWidthChange(fn func(WidthChange)) *event.Subscription {
	return p.widthChanged.Subscribe(fn)
}

// OnColorChange subscribes to stroke colour changes.
func (p *ToolsPanel) OnColorChange(fn func(ColorChange)) *event.Subscription {
	return p.colorChanged.Subscribe(fn)
}

// OnClear subscribes to the Clear button.
func (p *ToolsPanel) OnClear(fn func(ClearRequest)) *event.Subscription {
	return p.clearRequested.Subscribe(fn)
}

// OnDestroy subscribes to the Destroy button.
func (p *ToolsPanel) OnDestroy(fn func(DestroyRequest)) *event.Subscription {
	return p.destroyRequested.Subscribe(fn)
}

// StrokeWidth is the last width the user committed.
func (p *ToolsPanel) StrokeWidth() float64 { return p.strokeWidth }

// StrokeColor is the last colour the user picked.
func (p *ToolsPanel) StrokeColor() string { return p.strokeColor }

// onStrokeWidthChanged forwards whatever the input holds. Text that is not a
// number is sent as 0, which the surface treats as "no change".
func (p *ToolsPanel) onStrokeWidthChanged(value string) {
	w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		log.Printf("[PANEL] Stroke width %q is not a number", value)
		w = 0
	}
	p.strokeWidth = w
	p.widthChanged.Emit(WidthChange{StrokeWidth: w})
}

func (p *ToolsPanel) onStrokeColorChanged(hex string) {
	p.strokeColor = hex
	p.colorChanged.Emit(ColorChange{StrokeColor: hex})
}

func (p *ToolsPanel) onClearClicked() {
	p.clearRequested.Emit(ClearRequest{})
}

func (p *ToolsPanel) onDestroyClicked() {
	p.destroyRequested.Emit(DestroyRequest{})
}
