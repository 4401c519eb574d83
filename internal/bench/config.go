package bench

import (
	"errors"
	"fmt"
)

const (
	FormatTable = "table"
	FormatText  = "text"

	DefaultTrials         = 10
	DefaultEdgeIterations = 5
	DefaultInitialSize    = 1024
	DefaultSeed           = 1234

	// maxVertices bounds initialSize << trials.
	maxVertices = 1 << 30
)

// ErrInvalidConfig indicates a benchmark configuration that cannot run.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config describes one benchmark session. Field tags match the viper keys
// bound by the CLI.
type Config struct {
	// Trials is how many times the vertex count is doubled.
	Trials int `mapstructure:"trials"`
	// EdgeIterations is how many edge densities (1x..Nx vertices) each trial measures.
	EdgeIterations int `mapstructure:"edge-iterations"`
	// InitialSize is the vertex count before the first doubling.
	InitialSize int `mapstructure:"initial-size"`
	// Seed feeds the random graph generator.
	Seed int64 `mapstructure:"seed"`
	// Format selects the report layout: table or text.
	Format string `mapstructure:"format"`
	// PathCompression enables path compression in the disjoint-set forest.
	PathCompression bool `mapstructure:"path-compression"`
}

// NewConfig returns the classic benchmark defaults: 10 trials of 5 densities starting at 1024 vertices.
func NewConfig() *Config {
	return &Config{
		Trials:         DefaultTrials,
		EdgeIterations: DefaultEdgeIterations,
		InitialSize:    DefaultInitialSize,
		Seed:           DefaultSeed,
		Format:         FormatTable,
	}
}

// Validate reports the first unusable field.
func (c *Config) Validate() error {
	switch {
	case c.Trials < 0:
		return fmt.Errorf("%w: trials must not be negative, got %d", ErrInvalidConfig, c.Trials)
	case c.EdgeIterations < 1:
		return fmt.Errorf("%w: edge iterations must be positive, got %d", ErrInvalidConfig, c.EdgeIterations)
	case c.InitialSize < 1:
		return fmt.Errorf("%w: initial size must be positive, got %d", ErrInvalidConfig, c.InitialSize)
	case c.Format != FormatTable && c.Format != FormatText:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	if c.Trials >= 30 || c.InitialSize > maxVertices>>c.Trials {
		return fmt.Errorf("%w: %d << %d exceeds %d vertices", ErrInvalidConfig, c.InitialSize, c.Trials, maxVertices)
	}

	return nil
}
