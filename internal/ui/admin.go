package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/JigCut/internal/model"
	"github.com/piwi3910/JigCut/internal/project"
)

// showSettingsDialog displays the application preferences: the theme and the
// generation defaults applied at startup.
func (a *App) showSettingsDialog() {
	cfg := a.config

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.1f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

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

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Minimum Coverage", intEntry(&cfg.DefaultMinCoverage)),
		widget.NewFormItem("Default Piece Width (px)", intEntry(&cfg.DefaultPieceWidth)),
		widget.NewFormItem("Default Piece Height (px)", intEntry(&cfg.DefaultPieceHeight)),
		widget.NewFormItem("Default Coverage Cell (px)", intEntry(&cfg.DefaultCoverageCellSize)),
		widget.NewFormItem("Default Max Attempts", intEntry(&cfg.DefaultMaxAttempts)),
		widget.NewFormItem("Default Print Tile (mm)", floatEntry(&cfg.DefaultPrintTileSize)),
	}

	d := dialog.NewForm("Preferences", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			var defaults model.Settings
			cfg.ApplyToSettings(&defaults)
			if err := defaults.Validate(); err != nil {
				dialog.ShowError(err, a.window)
				return
			}

			a.config = cfg
			a.theme.SetByName(cfg.Theme)
			a.app.Settings().SetTheme(a.theme)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Preferences have been saved.\nNew defaults apply from the next start.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(450, 420))
	d.Show()
}

// showImportExportDialog displays the settings backup dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export Settings...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.ExportAllData(path, a.config); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("Settings exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("jigcut-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import Settings...", func() {
		dialog.ShowConfirm("Import Settings",
			"Importing will replace your current preferences and defaults.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					path := reader.URI().Path()
					reader.Close()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.theme.SetByName(a.config.Theme)
					a.app.Settings().SetTheme(a.theme)
					a.refreshRecentMenu()
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Settings imported from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export preferences and generation defaults to a backup file,\nor import them from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Settings", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
