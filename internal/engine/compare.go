package engine

import (
	"fmt"

	"github.com/piwi3910/JigCut/internal/model"
)

// ComparisonScenario defines a named set of settings to compare.
type ComparisonScenario struct {
	Name     string
	Settings model.Settings
}

// ComparisonResult holds the generation statistics for a single scenario.
type ComparisonResult struct {
	Scenario    ComparisonScenario
	Result      model.GenerateResult
	PieceCount  int
	Attempts    int
	Complete    bool
	MinCoverage int // Lowest cell counter reached
	Err         error
}

// CompareScenarios runs placement generation for each scenario against the
// same image and board and returns the results in scenario order. Only
// placements are sampled; no pixels are cut.
func CompareScenarios(scenarios []ComparisonScenario, scale model.BoardScale, seed int64) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		gen := New(scenario.Settings, seed)
		pieceW, pieceH := scale.SourcePieceSize(scenario.Settings.PieceWidth, scenario.Settings.PieceHeight)
		result, err := gen.Generate(scale.ImageWidth, scale.ImageHeight, pieceW, pieceH)

		results = append(results, ComparisonResult{
			Scenario:    scenario,
			Result:      result,
			PieceCount:  len(result.Placements),
			Attempts:    result.Attempts,
			Complete:    result.Complete,
			MinCoverage: result.Coverage.Min(),
			Err:         err,
		})
	}

	return results
}

// BuildDefaultScenarios generates what-if alternatives around the current
// settings, varying the parameters that drive the piece count.
func BuildDefaultScenarios(baseSettings model.Settings) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:     "Current Settings",
			Settings: baseSettings,
		},
	}

	// Single coverage
	if baseSettings.MinCoverage > 1 {
		single := baseSettings
		single.MinCoverage = 1
		scenarios = append(scenarios, ComparisonScenario{
			Name:     "Coverage 1",
			Settings: single,
		})
	}

	// One more layer of coverage
	extra := baseSettings
	extra.MinCoverage = baseSettings.MinCoverage + 1
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Coverage %d", extra.MinCoverage),
		Settings: extra,
	})

	// Larger pieces
	large := baseSettings
	large.PieceWidth = baseSettings.PieceWidth * 3 / 2
	large.PieceHeight = baseSettings.PieceHeight * 3 / 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Pieces %dx%d", large.PieceWidth, large.PieceHeight),
		Settings: large,
	})

	// Coarser coverage cells
	coarse := baseSettings
	coarse.CoverageCellSize = baseSettings.CoverageCellSize * 2
	scenarios = append(scenarios, ComparisonScenario{
		Name:     fmt.Sprintf("Cells %d", coarse.CoverageCellSize),
		Settings: coarse,
	})

	return scenarios
}
