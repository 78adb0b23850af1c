package model

// MaxRecentImages caps the recent image list kept in AppConfig.
const MaxRecentImages = 10

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default generation settings applied at startup
	DefaultMinCoverage      int     `json:"default_min_coverage"`
	DefaultPieceWidth       int     `json:"default_piece_width"`
	DefaultPieceHeight      int     `json:"default_piece_height"`
	DefaultCoverageCellSize int     `json:"default_coverage_cell_size"`
	DefaultMaxAttempts      int     `json:"default_max_attempts"`
	DefaultPrintTileSize    float64 `json:"default_print_tile_size"`

	// Application preferences
	RecentImages []string `json:"recent_images"`
	Theme        string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the values from
// DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultMinCoverage:      defaults.MinCoverage,
		DefaultPieceWidth:       defaults.PieceWidth,
		DefaultPieceHeight:      defaults.PieceHeight,
		DefaultCoverageCellSize: defaults.CoverageCellSize,
		DefaultMaxAttempts:      defaults.MaxAttempts,
		DefaultPrintTileSize:    defaults.PrintTileSize,
		RecentImages:            []string{},
		Theme:                   "system",
	}
}

// ApplyToSettings copies the default values from AppConfig into a Settings struct.
func (c AppConfig) ApplyToSettings(s *Settings) {
	s.MinCoverage = c.DefaultMinCoverage
	s.PieceWidth = c.DefaultPieceWidth
	s.PieceHeight = c.DefaultPieceHeight
	s.CoverageCellSize = c.DefaultCoverageCellSize
	s.MaxAttempts = c.DefaultMaxAttempts
	s.PrintTileSize = c.DefaultPrintTileSize
}

// CaptureSettings stores s as the new defaults.
func (c *AppConfig) CaptureSettings(s Settings) {
	c.DefaultMinCoverage = s.MinCoverage
	c.DefaultPieceWidth = s.PieceWidth
	c.DefaultPieceHeight = s.PieceHeight
	c.DefaultCoverageCellSize = s.CoverageCellSize
	c.DefaultMaxAttempts = s.MaxAttempts
	c.DefaultPrintTileSize = s.PrintTileSize
}

// AddRecentImage moves path to the front of the recent list, dropping
// duplicates and anything past MaxRecentImages.
func (c *AppConfig) AddRecentImage(path string) {
	recent := []string{path}
	for _, p := range c.RecentImages {
		if p != path && len(recent) < MaxRecentImages {
			recent = append(recent, p)
		}
	}
	c.RecentImages = recent
}
