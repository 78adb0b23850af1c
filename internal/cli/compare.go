package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/JigCut/internal/engine"
	"github.com/piwi3910/JigCut/internal/model"
)

func newCompareCommand() *cobra.Command {
	opts := &options{settings: model.DefaultSettings()}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare piece counts for settings around the given ones",
		Long: `Run placement sampling for the given settings and a few variations
(coverage, piece size, cell size) and print how many pieces each needs.

Examples:
  jigcut-gen compare --image photo.jpg
  jigcut-gen compare --image photo.jpg --min-coverage 3 --seed 7`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts)
		},
	}

	addImageFlags(cmd, opts)
	addSettingsFlags(cmd, opts)
	return cmd
}

func runCompare(cmd *cobra.Command, opts *options) error {
	if err := opts.settings.Validate(); err != nil {
		return err
	}
	_, info, boardW, boardH, err := loadImages(opts)
	if err != nil {
		return err
	}

	scale := model.BoardScale{
		BoardWidth:  boardW,
		BoardHeight: boardH,
		ImageWidth:  info.Width,
		ImageHeight: info.Height,
	}
	results := engine.CompareScenarios(engine.BuildDefaultScenarios(opts.settings), scale, opts.seed)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-20s %8s %10s %12s %9s\n", "SCENARIO", "PIECES", "ATTEMPTS", "MIN COVER", "COMPLETE")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "%-20s error: %v\n", r.Scenario.Name, r.Err)
			continue
		}
		fmt.Fprintf(out, "%-20s %8d %10d %12s %9t\n",
			r.Scenario.Name, r.PieceCount, r.Attempts,
			fmt.Sprintf("%d/%d", r.MinCoverage, r.Scenario.Settings.MinCoverage), r.Complete)
	}
	return nil
}
