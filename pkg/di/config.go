package di

import "github.com/goliatone/go-matrix-cache/internal/solverinfra"

// Config holds the inversion engine settings accepted by NewContainer.
// It mirrors the internal adapter configuration so that callers outside
// this module can build containers without importing internal packages.
type Config struct {
	// ConditionTolerance is the largest condition number an input matrix
	// may have before inversion is rejected. Must be >= 1.
	// Zero value uses solver.DefaultConditionTolerance.
	ConditionTolerance float64

	// ConditionNorm selects the norm used for condition estimates.
	// Valid values are 1, 2, and math.Inf(1).
	// Zero value uses solver.DefaultConditionNorm.
	ConditionNorm float64
}

// DefaultConfig returns a Config with sensible defaults for general use.
func DefaultConfig() Config {
	return convertFromInternal(solverinfra.DefaultConfig())
}

// Validate checks whether the configuration values are within valid ranges.
// Returns an error describing the first invalid field found.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// toInternal converts the public configuration to the adapter configuration.
func (c Config) toInternal() solverinfra.Config {
	return solverinfra.Config{
		ConditionTolerance: c.ConditionTolerance,
		ConditionNorm:      c.ConditionNorm,
	}
}

// convertFromInternal converts an adapter configuration to the public type.
func convertFromInternal(cfg solverinfra.Config) Config {
	return Config{
		ConditionTolerance: cfg.ConditionTolerance,
		ConditionNorm:      cfg.ConditionNorm,
	}
}
