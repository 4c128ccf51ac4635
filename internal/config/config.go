package config

import "github.com/KyungWonPark/smaller-similarity/internal/calc"

// Fixed reduction parameters
const (
	SourceFile      = "similarity_data.json"
	DestinationFile = "smaller_similarity.json"

	// Row and column 0 hold labels in the source matrix
	WindowOffset = 1
	WindowSize   = 299

	Precision = 2
)

// Config describes one reduction
type Config struct {
	Source      string
	Destination string
	Window      calc.Window
	Precision   int
}

// Default returns the reduction run by cmd/reduce, relative to the working directory
func Default() Config {
	return Config{
		Source:      SourceFile,
		Destination: DestinationFile,
		Window:      calc.Window{Offset: WindowOffset, Size: WindowSize},
		Precision:   Precision,
	}
}
