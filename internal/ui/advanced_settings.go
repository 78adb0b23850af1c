package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showGenerationSettingsDialog edits the settings used for the next
// generation. Applying them regenerates the current puzzle.
func (a *App) showGenerationSettingsDialog() {
	s := a.settings
	seed := a.seed

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	printEntry := widget.NewEntry()
	printEntry.SetText(fmt.Sprintf("%.1f", s.PrintTileSize))
	printEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			s.PrintTileSize = v
		}
	}

	seedEntry := widget.NewEntry()
	seedEntry.SetText(strconv.FormatInt(seed, 10))
	seedEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			seed = v
		}
	}

	saveDefault := widget.NewCheck("", nil)

	// --- Pieces ---
	piecesSection := widget.NewCard("Pieces",
		"On-screen tile size; the source region is scaled to match the board",
		container.NewGridWithColumns(2,
			widget.NewLabel("Piece Width (px)"), intEntry(&s.PieceWidth),
			widget.NewLabel("Piece Height (px)"), intEntry(&s.PieceHeight),
		))

	// --- Coverage ---
	coverageSection := widget.NewCard("Coverage",
		"Pieces are sampled until every cell is covered this many times",
		container.NewGridWithColumns(2,
			widget.NewLabel("Minimum Coverage"), intEntry(&s.MinCoverage),
			widget.NewLabel("Coverage Cell (source px)"), intEntry(&s.CoverageCellSize),
			widget.NewLabel("Max Attempts"), intEntry(&s.MaxAttempts),
			widget.NewLabel("Random Seed (0 = clock)"), seedEntry,
		))

	// --- Print ---
	printSection := widget.NewCard("Print", "",
		container.NewGridWithColumns(2,
			widget.NewLabel("Printed Tile (mm, 0 = default)"), printEntry,
			widget.NewLabel("Save as Default"), saveDefault,
		))

	content := container.NewVScroll(container.NewVBox(
		piecesSection,
		coverageSection,
		printSection,
	))

	d := dialog.NewCustomConfirm("Generation Settings", "Apply", "Cancel", content, func(ok bool) {
		if !ok {
			return
		}
		if err := s.Validate(); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.settings = s
		a.seed = seed
		if saveDefault.Checked {
			a.config.CaptureSettings(s)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save defaults: %w", err), a.window)
			}
		}
		if a.source != nil {
			a.regenerate()
		}
	}, a.window)
	d.Resize(fyne.NewSize(480, 520))
	d.Show()
}
