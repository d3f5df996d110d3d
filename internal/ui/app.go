package ui

import (
	"errors"
	"log"

	"SketchPad/internal/event"
	"SketchPad/internal/state"

	"github.com/google/uuid"
)

// Application is the composition root: it owns a drawing surface and the
// tools panel and forwards panel events to the surface.
type Application struct {
	ID string

	// OnDestroyed is called once after the widget has been torn down.
	OnDestroyed func()

	host      *Host
	surface   *DrawingSurface
	panel     *ToolsPanel
	subs      []*event.Subscription
	destroyed bool
}

// NewApplication builds the widget inside host. The surface is appended
// first so the panel floats above it.
func NewApplication(host *Host) *Application {
	a := &Application{ID: uuid.NewString(), host: host}
	a.surface = NewDrawingSurface(host)
	a.panel = NewToolsPanel(host)
	a.build()
	log.Printf("[APP %s] Drawing widget ready", a.shortID())
	return a
}

func (a *Application) build() {
	a.subs = []*event.Subscription{
		a.panel.OnWidthChange(a.onStrokeWidthChange),
		a.panel.OnColorChange(a.onStrokeColorChange),
		a.panel.OnClear(a.onClearClicked),
		a.panel.OnDestroy(a.onDestroyClicked),
	}
}

func (a *Application) Surface() *DrawingSurface { return a.surface }
func (a *Application) Panel() *ToolsPanel       { return a.panel }

// Destroy unsubscribes from the panel, then destroys the surface and the
// panel in that order. Every step runs even if an earlier one failed; the
// failures are joined. A second call returns ErrDestroyed.
func (a *Application) Destroy() error {
	if a.destroyed {
		return ErrDestroyed
	}
	a.destroyed = true

	for _, sub := range a.subs {
		sub.Unsubscribe()
	}
	a.subs = nil

	err := errors.Join(a.surface.Destroy(), a.panel.Destroy())
	if err != nil {
		log.Printf("[APP %s] Teardown finished with errors: %v", a.shortID(), err)
	} else {
		log.Printf("[APP %s] Drawing widget destroyed", a.shortID())
	}
	if a.OnDestroyed != nil {
		a.OnDestroyed()
	}
	return err
}

func (a *Application) shortID() string {
	return a.ID[:8]
}

func (a *Application) onStrokeWidthChange(e WidthChange) {
	a.surface.Setup(state.StrokeOptions{StrokeWidth: e.StrokeWidth})
}

func (a *Application) onStrokeColorChange(e ColorChange) {
	a.surface.Setup(state.StrokeOptions{StrokeColor: e.StrokeColor})
}

func (a *Application) onClearClicked(ClearRequest) {
	a.surface.Clear()
}

func (a *Application) onDestroyClicked(DestroyRequest) {
	// Destroy logs its own failures.
	_ = a.Destroy()
}
