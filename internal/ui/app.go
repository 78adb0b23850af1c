package ui

import (
	"context"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/JigCut/internal/board"
	"github.com/piwi3910/JigCut/internal/engine"
	"github.com/piwi3910/JigCut/internal/export"
	"github.com/piwi3910/JigCut/internal/importer"
	"github.com/piwi3910/JigCut/internal/model"
	"github.com/piwi3910/JigCut/internal/project"
	"github.com/piwi3910/JigCut/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app       fyne.App
	window    fyne.Window
	config    model.AppConfig
	settings  model.Settings
	seed      int64
	generator *engine.Generator
	session   *board.Session
	history   *History
	theme     *JigCutTheme

	// Current puzzle and the images it was cut from
	puzzle    *model.Puzzle
	source    image.Image
	reference image.Image
	srcInfo   importer.ImageInfo
	refInfo   importer.ImageInfo
	refPath   string // Separate reference image, empty to reuse the source

	// UI references for dynamic updates
	tabs        *container.AppTabs
	boardView   *widgets.BoardView
	coverageTab *container.TabItem
	status      *widget.Label
	undoBtn     fyne.Disableable
	redoBtn     fyne.Disableable
	recentMenu  *fyne.MenuItem
	cancelLoad  context.CancelFunc
	loadSeq     int
}

// NewApp creates the application state, loading the saved configuration.
// A missing or unreadable config falls back to the defaults.
func NewApp(application fyne.App, window fyne.Window) *App {
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("jigcut: using default config: %v", err)
		cfg = model.DefaultAppConfig()
	}

	settings := model.DefaultSettings()
	cfg.ApplyToSettings(&settings)

	a := &App{
		app:      application,
		window:   window,
		config:   cfg,
		settings: settings,
		session:  board.NewSession(),
		history:  NewHistory(),
		theme:    NewJigCutTheme(),
	}
	a.theme.SetByName(cfg.Theme)
	application.Settings().SetTheme(a.theme)
	a.generator = engine.New(settings, a.seed)
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	a.recentMenu = fyne.NewMenuItem("Recent Images", nil)
	a.recentMenu.ChildMenu = a.buildRecentMenu()

	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", func() {
			a.showOpenImageDialog()
		}),
		fyne.NewMenuItem("Open Reference Image...", func() {
			a.showOpenReferenceDialog()
		}),
		a.recentMenu,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Piece Sheets (PDF)...", func() {
			a.exportFile("jigcut-pieces.pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Answer Labels (PDF)...", func() {
			a.exportFile("jigcut-labels.pdf", export.ExportLabels)
		}),
		fyne.NewMenuItem("Export Workbook (XLSX)...", func() {
			a.exportFile("jigcut.xlsx", func(path string, p model.Puzzle, _ model.Settings) error {
				return export.ExportWorkbook(path, p)
			})
		}),
		fyne.NewMenuItem("Export Cut Lines (DXF)...", func() {
			a.exportFile("jigcut-cut.dxf", export.ExportDXF)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import / Export Settings...", func() {
			a.showImportExportDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reshuffle Pieces", func() {
			a.reshuffle()
		}),
		fyne.NewMenuItem("Return Pieces to Tray", func() {
			a.resetTray()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences...", func() {
			a.showSettingsDialog()
		}),
	)

	// Puzzle Menu
	puzzleMenu := fyne.NewMenu("Puzzle",
		fyne.NewMenuItem("Regenerate", func() {
			a.regenerate()
		}),
		fyne.NewMenuItem("Generation Settings...", func() {
			a.showGenerationSettingsDialog()
		}),
		fyne.NewMenuItem("Compare Settings...", func() {
			a.showCompareDialog()
		}),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(
		fileMenu,
		editMenu,
		puzzleMenu,
		helpMenu,
	))
}

func (a *App) buildRecentMenu() *fyne.Menu {
	if len(a.config.RecentImages) == 0 {
		empty := fyne.NewMenuItem("(none)", nil)
		empty.Disabled = true
		return fyne.NewMenu("", empty)
	}
	items := make([]*fyne.MenuItem, 0, len(a.config.RecentImages))
	for _, path := range a.config.RecentImages {
		items = append(items, fyne.NewMenuItem(path, func() {
			a.openImage(path, a.refPath)
		}))
	}
	return fyne.NewMenu("", items...)
}

func (a *App) refreshRecentMenu() {
	if a.recentMenu == nil {
		return
	}
	a.recentMenu.ChildMenu = a.buildRecentMenu()
	if menu := a.window.MainMenu(); menu != nil {
		menu.Refresh()
	}
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About JigCut",
		"JigCut - Random Coverage Jigsaw\n\n"+
			"Cuts overlapping square pieces out of an image until every\n"+
			"part of it is covered, then lets you drag them back into place.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.boardView = widgets.NewBoardView(a.session)
	a.boardView.OnMoved = func(before map[string]fyne.Position, beforeOrder []string) {
		a.history.Push(MakeSnapshot(before, beforeOrder, "Move piece"))
		a.updateHistoryButtons()
	}

	boardTab := container.NewTabItemWithIcon("Board", theme.GridIcon(), container.NewScroll(a.boardView))
	a.coverageTab = container.NewTabItemWithIcon("Coverage", theme.InfoIcon(), widgets.RenderCoverage(nil, nil))

	a.tabs = container.NewAppTabs(boardTab, a.coverageTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.status = widget.NewLabel("Open an image to start.")

	return container.NewBorder(a.buildToolbar(), a.status, nil, nil, a.tabs)
}

// ─── Toolbar ───────────────────────────────────────────────

func (a *App) buildToolbar() fyne.CanvasObject {
	undo := newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo last move", a.undo)
	redo := newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo)
	undo.Disable()
	redo.Disable()
	a.undoBtn, a.redoBtn = undo, redo

	return container.NewHBox(
		newIconButtonWithTooltip(theme.FolderOpenIcon(), "Open image", a.showOpenImageDialog),
		newIconButtonWithTooltip(theme.ViewRefreshIcon(), "Regenerate pieces", a.regenerate),
		newIconButtonWithTooltip(theme.MediaReplayIcon(), "Reshuffle pieces", a.reshuffle),
		newIconButtonWithTooltip(theme.ViewRestoreIcon(), "Return pieces to tray", a.resetTray),
		widget.NewSeparator(),
		undo,
		redo,
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.SettingsIcon(), "Generation settings", a.showGenerationSettingsDialog),
		newIconButtonWithTooltip(theme.DocumentPrintIcon(), "Export piece sheets", func() {
			a.exportFile("jigcut-pieces.pdf", export.ExportPDF)
		}),
		layout.NewSpacer(),
	)
}

func (a *App) updateHistoryButtons() {
	if a.undoBtn == nil {
		return
	}
	if a.history.CanUndo() {
		a.undoBtn.Enable()
	} else {
		a.undoBtn.Disable()
	}
	if a.history.CanRedo() {
		a.redoBtn.Enable()
	} else {
		a.redoBtn.Disable()
	}
}

func (a *App) setStatus(text string) {
	if a.status != nil {
		a.status.SetText(text)
	}
}

// ─── Loading & Generation ──────────────────────────────────

// OpenImage loads path as both source and reference and generates a puzzle.
func (a *App) OpenImage(path string) {
	a.openImage(path, "")
}

func (a *App) showOpenImageDialog() {
	a.showImageOpen(func(path string) {
		a.openImage(path, a.refPath)
	})
}

func (a *App) showOpenReferenceDialog() {
	a.showImageOpen(func(path string) {
		if a.srcInfo.Path == "" {
			a.refPath = path
			a.setStatus(fmt.Sprintf("Reference set to %s. Open an image to cut.", filepath.Base(path)))
			return
		}
		a.openImage(a.srcInfo.Path, path)
	})
}

func (a *App) showImageOpen(onPath func(string)) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onPath(path)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter(importer.SupportedExtensions))
	d.Show()
}

// openImage loads the source and reference images in the background and
// generates a puzzle once both are available. A reference path of "" reuses
// the source. Results of an older load are dropped.
func (a *App) openImage(srcPath, refPath string) {
	if a.cancelLoad != nil {
		a.cancelLoad()
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelLoad = cancel
	a.loadSeq++
	seq := a.loadSeq

	src := importer.LoadAsync(ctx, srcPath)
	ref := src
	if refPath != "" && refPath != srcPath {
		ref = importer.LoadAsync(ctx, refPath)
	}

	a.setStatus(fmt.Sprintf("Loading %s...", filepath.Base(srcPath)))
	settings := a.settings
	gen := engine.New(settings, a.seed)

	importer.Both(src, ref, func(srcImg, refImg image.Image, srcInfo, refInfo importer.ImageInfo, err error) {
		if err != nil {
			fyne.Do(func() {
				if seq != a.loadSeq {
					return
				}
				a.setStatus("Load failed.")
				dialog.ShowError(err, a.window)
			})
			return
		}

		boardSize := board.FitSize(refInfo.Width, refInfo.Height, board.DefaultMaxBoardWidth, board.DefaultMaxBoardHeight)
		puzzle, genErr := gen.Slice(srcImg, float64(boardSize.Width), float64(boardSize.Height))
		puzzle.Name = strings.TrimSuffix(filepath.Base(srcInfo.Path), filepath.Ext(srcInfo.Path))

		fyne.Do(func() {
			if seq != a.loadSeq {
				return
			}
			if genErr != nil {
				a.setStatus("Generation failed.")
				dialog.ShowError(genErr, a.window)
				return
			}
			a.source, a.reference = srcImg, refImg
			a.srcInfo, a.refInfo = srcInfo, refInfo
			a.refPath = refPath
			a.generator = gen
			a.showPuzzle(&puzzle, boardSize)

			a.config.AddRecentImage(srcInfo.Path)
			if err := a.saveConfig(); err != nil {
				fyne.LogError("saving recent images", err)
			}
			a.refreshRecentMenu()
		})
	})
}

// regenerate cuts a fresh puzzle from the images already loaded.
func (a *App) regenerate() {
	if a.source == nil {
		dialog.ShowInformation("No image", "Open an image first.", a.window)
		return
	}
	a.loadSeq++
	seq := a.loadSeq
	settings := a.settings
	gen := engine.New(settings, a.seed)
	name := a.srcInfo.Path

	a.setStatus("Generating...")
	importer.Both(importer.Loaded(a.source, a.srcInfo), importer.Loaded(a.reference, a.refInfo),
		func(srcImg, _ image.Image, _, refInfo importer.ImageInfo, _ error) {
			boardSize := board.FitSize(refInfo.Width, refInfo.Height, board.DefaultMaxBoardWidth, board.DefaultMaxBoardHeight)
			go func() {
				puzzle, err := gen.Slice(srcImg, float64(boardSize.Width), float64(boardSize.Height))
				puzzle.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
				fyne.Do(func() {
					if seq != a.loadSeq {
						return
					}
					if err != nil {
						a.setStatus("Generation failed.")
						dialog.ShowError(err, a.window)
						return
					}
					a.generator = gen
					a.showPuzzle(&puzzle, boardSize)
				})
			}()
		})
}

// showPuzzle puts a freshly generated puzzle on the board. Must run on the
// UI thread.
func (a *App) showPuzzle(puzzle *model.Puzzle, boardSize fyne.Size) {
	a.puzzle = puzzle
	a.history.Clear()
	a.updateHistoryButtons()
	a.boardView.SetPuzzle(a.reference, boardSize, puzzle.Pieces)
	a.refreshCoverage()

	if !puzzle.Result.Complete {
		log.Printf("jigcut: coverage incomplete for %s after %d attempts, %d cells below %d",
			a.srcInfo.Path, puzzle.Result.Attempts,
			puzzle.Result.Coverage.Below(puzzle.Result.MinCoverage), puzzle.Result.MinCoverage)
	}
	a.setStatus(puzzle.Summary())
	a.tabs.SelectIndex(0)
}

func (a *App) refreshCoverage() {
	var placements fyne.CanvasObject
	if a.puzzle != nil && a.source != nil {
		placements = widgets.NewPlacementPreview(a.source, a.puzzle.Result.Placements,
			a.puzzle.Scale.ImageWidth, a.puzzle.Scale.ImageHeight, 600, 400)
	}
	a.coverageTab.Content = container.NewVScroll(widgets.RenderCoverage(a.puzzle, placements))
	a.tabs.Refresh()
}

// ─── Arrangement ───────────────────────────────────────────

func (a *App) currentSnapshot(label string) Snapshot {
	return MakeSnapshot(a.boardView.Positions(), a.boardView.Order(), label)
}

func (a *App) undo() {
	prev, ok := a.history.Undo(a.currentSnapshot("Undo"))
	if !ok {
		return
	}
	a.boardView.Restore(prev.Positions, prev.Order)
	a.updateHistoryButtons()
}

func (a *App) redo() {
	next, ok := a.history.Redo(a.currentSnapshot("Redo"))
	if !ok {
		return
	}
	a.boardView.Restore(next.Positions, next.Order)
	a.updateHistoryButtons()
}

// reshuffle deals the same pieces into the tray in a new random order.
func (a *App) reshuffle() {
	if a.puzzle == nil || len(a.puzzle.Pieces) == 0 {
		return
	}
	a.history.Push(a.currentSnapshot("Reshuffle"))
	a.generator.Reshuffle(a.puzzle.Pieces)
	a.boardView.ArrangeInTray(pieceIDs(a.puzzle.Pieces))
	a.updateHistoryButtons()
}

// resetTray returns every piece to the tray in the current deal order.
func (a *App) resetTray() {
	if a.puzzle == nil || len(a.puzzle.Pieces) == 0 {
		return
	}
	a.history.Push(a.currentSnapshot("Return to tray"))
	a.boardView.ArrangeInTray(pieceIDs(a.puzzle.Pieces))
	a.updateHistoryButtons()
}

func pieceIDs(pieces []model.Piece) []string {
	ids := make([]string, len(pieces))
	for i, p := range pieces {
		ids[i] = p.ID
	}
	return ids
}

// ─── Export ────────────────────────────────────────────────

type exportFunc func(path string, puzzle model.Puzzle, settings model.Settings) error

func (a *App) exportFile(defaultName string, write exportFunc) {
	if a.puzzle == nil || len(a.puzzle.Pieces) == 0 {
		dialog.ShowInformation("Nothing to export", "Generate a puzzle first.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := write(path, *a.puzzle, a.settings); err != nil {
			dialog.ShowError(fmt.Errorf("export failed: %w", err), a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to:\n%s", path), a.window)
	}, a.window)
	if a.puzzle.Name != "" {
		defaultName = a.puzzle.Name + "-" + defaultName
	}
	d.SetFileName(defaultName)
	d.Show()
}
