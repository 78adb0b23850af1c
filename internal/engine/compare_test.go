package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/JigCut/internal/model"
)

func TestBuildDefaultScenarios(t *testing.T) {
	scenarios := BuildDefaultScenarios(model.DefaultSettings())

	require.GreaterOrEqual(t, len(scenarios), 4)
	assert.Equal(t, "Current Settings", scenarios[0].Name)
	assert.Equal(t, model.DefaultSettings(), scenarios[0].Settings)

	names := map[string]bool{}
	for _, s := range scenarios {
		names[s.Name] = true
		assert.NoError(t, s.Settings.Validate(), s.Name)
	}
	assert.True(t, names["Coverage 1"])
	assert.True(t, names["Coverage 3"])
	assert.True(t, names["Pieces 120x120"])
	assert.True(t, names["Cells 80"])
}

func TestBuildDefaultScenarios_SingleCoverageBase(t *testing.T) {
	base := model.DefaultSettings()
	base.MinCoverage = 1
	for _, s := range BuildDefaultScenarios(base) {
		assert.NotEqual(t, "Coverage 1", s.Name, "base already has coverage 1")
	}
}

func TestCompareScenarios(t *testing.T) {
	scale := model.BoardScale{BoardWidth: 400, BoardHeight: 300, ImageWidth: 400, ImageHeight: 300}
	results := CompareScenarios(BuildDefaultScenarios(model.DefaultSettings()), scale, 17)

	require.Len(t, results, 5)
	for _, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, r.PieceCount, r.Attempts)
		assert.True(t, r.Complete, r.Scenario.Name)
	}

	// More coverage needs more pieces than less coverage.
	byName := map[string]ComparisonResult{}
	for _, r := range results {
		byName[r.Scenario.Name] = r
	}
	assert.Greater(t, byName["Coverage 3"].PieceCount, byName["Coverage 1"].PieceCount)
}

func TestCompareScenarios_ReportsErrors(t *testing.T) {
	bad := model.DefaultSettings()
	bad.CoverageCellSize = 0
	scale := model.BoardScale{BoardWidth: 100, BoardHeight: 100, ImageWidth: 100, ImageHeight: 100}

	results := CompareScenarios([]ComparisonScenario{{Name: "bad", Settings: bad}}, scale, 1)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
	assert.Zero(t, results[0].PieceCount)
}
