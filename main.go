package main

import (
	"log"

	"SketchPad/internal/config"
	"SketchPad/internal/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const appID = "io.sketchpad.freehand"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}

	size := fyne.NewSize(cfg.Window.Width, cfg.Window.Height)
	myApp := app.NewWithID(appID)
	myWindow := myApp.NewWindow(cfg.Window.Title)
	myWindow.Resize(size)

	host := ui.NewHost(myWindow, size)
	widget := ui.NewApplication(host)
	widget.OnDestroyed = func() {
		log.Println("Drawing widget destroyed; close the window to exit")
	}

	myWindow.ShowAndRun()
}
