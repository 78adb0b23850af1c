// JigCut - Random Coverage Jigsaw
//
// A desktop application that cuts overlapping square pieces out of an
// image until every part of it is covered, then lets you drag the
// shuffled pieces back into place over the reference image.
//
// Build:
//   go build -o jigcut ./cmd/jigcut
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o jigcut.exe ./cmd/jigcut
//   GOOS=darwin  GOARCH=amd64 go build -o jigcut-darwin ./cmd/jigcut
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/JigCut/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.jigcut")
	window := application.NewWindow("JigCut - Random Coverage Jigsaw")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1400, 800))
	window.CenterOnScreen()

	// jigcut photo.jpg opens the image straight away
	if len(os.Args) > 1 {
		appUI.OpenImage(os.Args[1])
	}

	window.ShowAndRun()
}
