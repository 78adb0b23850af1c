// Package cli implements jigcut-gen, the headless puzzle generator.
package cli

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/JigCut/internal/board"
	"github.com/piwi3910/JigCut/internal/engine"
	"github.com/piwi3910/JigCut/internal/export"
	"github.com/piwi3910/JigCut/internal/importer"
	"github.com/piwi3910/JigCut/internal/model"
)

type options struct {
	image     string
	reference string
	boardW    float64
	boardH    float64
	seed      int64
	settings  model.Settings

	pdf    string
	labels string
	xlsx   string
	dxf    string
}

// NewRootCommand builds the jigcut-gen command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{settings: model.DefaultSettings()}

	root := &cobra.Command{
		Use:   "jigcut-gen",
		Short: "Cut a random-coverage jigsaw from an image",
		Long: `Cut overlapping square pieces out of an image until every coverage cell
has been covered the minimum number of times, then export them.

Examples:
  jigcut-gen --image photo.jpg --pdf pieces.pdf
  jigcut-gen --image photo.jpg --min-coverage 3 --seed 42 --xlsx pieces.xlsx
  jigcut-gen --image photo.jpg --board-width 640 --board-height 480 --dxf cut.dxf`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	addImageFlags(root, opts)
	addSettingsFlags(root, opts)
	root.Flags().StringVar(&opts.pdf, "pdf", "", "Write printable piece sheets to this PDF")
	root.Flags().StringVar(&opts.labels, "labels", "", "Write answer-key QR labels to this PDF")
	root.Flags().StringVar(&opts.xlsx, "xlsx", "", "Write the piece list and coverage grid to this workbook")
	root.Flags().StringVar(&opts.dxf, "dxf", "", "Write tile cut lines to this DXF")

	root.AddCommand(newCompareCommand())
	return root
}

func addImageFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "Source image to cut (required)")
	cmd.Flags().StringVar(&opts.reference, "reference", "", "Reference image that sets the board size (default: the source)")
	cmd.Flags().Float64Var(&opts.boardW, "board-width", 0, "Board width in screen pixels (default: fit the reference)")
	cmd.Flags().Float64Var(&opts.boardH, "board-height", 0, "Board height in screen pixels (default: fit the reference)")
	_ = cmd.MarkFlagRequired("image")
}

func addSettingsFlags(cmd *cobra.Command, opts *options) {
	s := &opts.settings
	cmd.Flags().IntVarP(&s.MinCoverage, "min-coverage", "m", s.MinCoverage, "Times every coverage cell must be covered")
	cmd.Flags().IntVar(&s.PieceWidth, "piece-width", s.PieceWidth, "Piece width on the board")
	cmd.Flags().IntVar(&s.PieceHeight, "piece-height", s.PieceHeight, "Piece height on the board")
	cmd.Flags().IntVar(&s.CoverageCellSize, "cell-size", s.CoverageCellSize, "Coverage cell edge in source pixels")
	cmd.Flags().IntVar(&s.MaxAttempts, "max-attempts", s.MaxAttempts, "Placement attempts before giving up")
	cmd.Flags().Float64Var(&s.PrintTileSize, "print-tile", s.PrintTileSize, "Printed tile edge in mm")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Random seed (0 picks one from the clock)")
}

// loadImages returns the source image and the board size it is shown at.
func loadImages(opts *options) (image.Image, importer.ImageInfo, float64, float64, error) {
	src, info, err := importer.LoadImage(opts.image)
	if err != nil {
		return nil, info, 0, 0, err
	}

	boardW, boardH := opts.boardW, opts.boardH
	if boardW <= 0 || boardH <= 0 {
		refInfo := info
		if opts.reference != "" && opts.reference != opts.image {
			if _, refInfo, err = importer.LoadImage(opts.reference); err != nil {
				return nil, info, 0, 0, err
			}
		}
		fit := board.FitSize(refInfo.Width, refInfo.Height, board.DefaultMaxBoardWidth, board.DefaultMaxBoardHeight)
		boardW, boardH = float64(fit.Width), float64(fit.Height)
	}
	return src, info, boardW, boardH, nil
}

func runGenerate(cmd *cobra.Command, opts *options) error {
	if err := opts.settings.Validate(); err != nil {
		return err
	}
	src, info, boardW, boardH, err := loadImages(opts)
	if err != nil {
		return err
	}

	puzzle, err := engine.New(opts.settings, opts.seed).Slice(src, boardW, boardH)
	if err != nil {
		return err
	}
	puzzle.Name = strings.TrimSuffix(filepath.Base(info.Path), filepath.Ext(info.Path))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %dx%d %s, board %.0fx%.0f\n", info.Path, info.Width, info.Height, info.Format, boardW, boardH)
	fmt.Fprintln(out, puzzle.Summary())
	if !puzzle.Result.Complete {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: coverage incomplete after %d attempts, %d cells below %d\n",
			puzzle.Result.Attempts, puzzle.Result.Coverage.Below(puzzle.Result.MinCoverage), puzzle.Result.MinCoverage)
	}

	exports := []struct {
		path  string
		write func(string) error
	}{
		{opts.pdf, func(p string) error { return export.ExportPDF(p, puzzle, opts.settings) }},
		{opts.labels, func(p string) error { return export.ExportLabels(p, puzzle, opts.settings) }},
		{opts.xlsx, func(p string) error { return export.ExportWorkbook(p, puzzle) }},
		{opts.dxf, func(p string) error { return export.ExportDXF(p, puzzle, opts.settings) }},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.write(e.path); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", e.path)
	}
	return nil
}
