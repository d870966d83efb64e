package wang

// Config includes settings for an editing session's grid.
type Config struct {
	// number of cells the grid should hold
	CellCount uint

	// viewport available to the grid, in pixels
	ViewWidth  uint
	ViewHeight uint

	// gap between adjacent tiles, in pixels
	Gap uint
}

// DefaultConfig returns session settings with default values.
func DefaultConfig() *Config {
	return &Config{
		CellCount:  16,
		ViewWidth:  800,
		ViewHeight: 600,
		Gap:        2,
	}
}
