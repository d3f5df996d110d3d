package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostAppendAndRemove(t *testing.T) {
	host := newTestHost(t)
	a := canvas.NewRectangle(color.Black)
	b := canvas.NewRectangle(color.White)

	host.Append(a)
	host.Append(b)
	require.Equal(t, []fyne.CanvasObject{a, b}, host.Body().Objects)

	require.NoError(t, host.Remove(a))
	assert.Equal(t, []fyne.CanvasObject{b}, host.Body().Objects)

	assert.ErrorIs(t, host.Remove(a), ErrNotAttached)
}

func TestHostOuterSizeFallsBackBeforeLayout(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewWindow(nil)
	defer w.Close()

	host := NewHost(w, fyne.NewSize(1024, 768))
	if w.Canvas().Size().IsZero() {
		assert.Equal(t, fyne.NewSize(1024, 768), host.OuterSize())
	}

	w.Resize(fyne.NewSize(300, 200))
	assert.Equal(t, fyne.NewSize(300, 200), host.OuterSize())
}
