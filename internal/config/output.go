package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowFields includes the raw packed sub-fields of each decoded move
	ShowFields bool

	// ShowRejected lists rejected inputs with their error instead of skipping them
	ShowRejected bool

	// MaxLineLength bounds the width of wrapped listings
	MaxLineLength uint
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowRejected:  true,
		MaxLineLength: 80,
	}
}
