package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/JigCut/internal/engine"
)

// showCompareDialog runs the what-if scenarios around the current settings
// against the loaded image and lists piece counts side by side.
func (a *App) showCompareDialog() {
	if a.puzzle == nil {
		dialog.ShowInformation("No image", "Open an image first.", a.window)
		return
	}

	scale := a.puzzle.Scale
	scenarios := engine.BuildDefaultScenarios(a.settings)
	seed := a.seed

	progress := dialog.NewCustomWithoutButtons("Comparing Settings",
		widget.NewProgressBarInfinite(), a.window)
	progress.Show()

	go func() {
		results := engine.CompareScenarios(scenarios, scale, seed)
		fyne.Do(func() {
			progress.Hide()
			a.showCompareResults(results)
		})
	}()
}

func (a *App) showCompareResults(results []engine.ComparisonResult) {
	headers := []string{"Scenario", "Pieces", "Attempts", "Min Coverage", "Complete"}
	grid := container.NewGridWithColumns(len(headers))
	for _, h := range headers {
		grid.Add(widget.NewLabelWithStyle(h, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	}

	for _, r := range results {
		grid.Add(widget.NewLabel(r.Scenario.Name))
		if r.Err != nil {
			errLabel := widget.NewLabel(r.Err.Error())
			errLabel.Importance = widget.DangerImportance
			grid.Add(errLabel)
			grid.Add(widget.NewLabel(""))
			grid.Add(widget.NewLabel(""))
			grid.Add(widget.NewLabel(""))
			continue
		}
		grid.Add(widget.NewLabel(fmt.Sprintf("%d", r.PieceCount)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%d", r.Attempts)))
		grid.Add(widget.NewLabel(fmt.Sprintf("%d / %d", r.MinCoverage, r.Scenario.Settings.MinCoverage)))
		complete := widget.NewLabel("yes")
		if !r.Complete {
			complete.SetText("no")
			complete.Importance = widget.WarningImportance
		}
		grid.Add(complete)
	}

	d := dialog.NewCustom("Compare Settings", "Close", container.NewVScroll(grid), a.window)
	d.Resize(fyne.NewSize(640, 320))
	d.Show()
}
