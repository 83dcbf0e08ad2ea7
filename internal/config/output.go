package config

// OutputConfig holds settings related to board rendering.
type OutputConfig struct {
	// Unicode draws pieces with chess symbols instead of letters
	Unicode bool

	// Shading marks empty dark squares with '#'
	Shading bool

	// Coordinates prints file letters and rank digits around the board
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Shading:     true,
		Coordinates: true,
	}
}
