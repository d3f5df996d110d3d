package ui

import (
	"image/color"
	"strconv"
	"strings"

	"SketchPad/internal/style"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// --- Number input ---

// numberInput is a single line entry that only takes numeric runes and
// reports its value when the user commits it: Return, focus loss or an
// Up/Down step. Programmatic SetText does not commit.
type numberInput struct {
	widget.Entry
	OnCommit func(value string)

	committed string
}

func newNumberInput(value string) *numberInput {
	e := &numberInput{committed: value}
	e.ExtendBaseWidget(e)
	e.SetText(value)
	return e
}

func (e *numberInput) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || strings.ContainsRune(".-+eE", r) {
		e.Entry.TypedRune(r)
	}
}

func (e *numberInput) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		e.commit()
	case fyne.KeyUp:
		e.step(1)
	case fyne.KeyDown:
		e.step(-1)
	default:
		e.Entry.TypedKey(key)
	}
}

func (e *numberInput) FocusLost() {
	e.Entry.FocusLost()
	e.commit()
}

func (e *numberInput) step(delta float64) {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Text), 64)
	if err != nil {
		v = 0
	}
	e.SetText(strconv.FormatFloat(v+delta, 'f', -1, 64))
	e.commit()
}

func (e *numberInput) commit() {
	if e.Text == e.committed {
		return
	}
	e.committed = e.Text
	if e.OnCommit != nil {
		e.OnCommit(e.Text)
	}
}

// --- Colour input ---

// colorInput shows the current colour as a swatch and opens the colour
// picker when tapped.
type colorInput struct {
	widget.BaseWidget
	Value     string
	OnChanged func(hex string)

	window fyne.Window
	swatch *canvas.Rectangle
}

var _ fyne.Tappable = (*colorInput)(nil)

func newColorInput(value string, w fyne.Window) *colorInput {
	c := &colorInput{Value: value, window: w}
	c.swatch = canvas.NewRectangle(color.Black)
	c.swatch.SetMinSize(fyne.NewSize(32, 32))
	c.ExtendBaseWidget(c)
	c.updateSwatch()
	return c
}

func (c *colorInput) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(c.swatch, border))
}

func (c *colorInput) Tapped(_ *fyne.PointEvent) {
	picker := dialog.NewColorPicker("Stroke colour", "", c.pick, c.window)
	picker.Advanced = true
	if current, ok := style.ParseColor(c.Value); ok {
		picker.SetColor(current)
	}
	picker.Show()
}

// SetValue changes the shown colour without notifying OnChanged.
func (c *colorInput) SetValue(hex string) {
	c.Value = hex
	c.updateSwatch()
	c.Refresh()
}

// pick is the user path: it updates the value and notifies on change.
func (c *colorInput) pick(col color.Color) {
	if col == nil {
		return
	}
	hex := style.HexString(col)
	if hex == c.Value {
		return
	}
	c.SetValue(hex)
	if c.OnChanged != nil {
		c.OnChanged(hex)
	}
}

func (c *colorInput) updateSwatch() {
	if col, ok := style.ParseColor(c.Value); ok {
		c.swatch.FillColor = col
	}
}

// --- Button with touch start ---

// touchButton is a button that also reports the start of a touch, which
// arrives before the tap on touch screens.
type touchButton struct {
	widget.Button
	OnTouchDown func()
}

var _ mobile.Touchable = (*touchButton)(nil)

func newTouchButton(label string) *touchButton {
	b := &touchButton{}
	b.Text = label
	b.ExtendBaseWidget(b)
	return b
}

func (b *touchButton) TouchDown(*mobile.TouchEvent) {
	if b.OnTouchDown != nil {
		b.OnTouchDown()
	}
}

func (b *touchButton) TouchUp(*mobile.TouchEvent)     {}
func (b *touchButton) TouchCancel(*mobile.TouchEvent) {}
