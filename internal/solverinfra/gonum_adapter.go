package solverinfra

import (
	"errors"
	"fmt"
	"math"

	"github.com/goliatone/go-matrix-cache/solver"
	"gonum.org/v1/gonum/mat"
)

// Config holds the configuration for the gonum inversion adapter.
// It encapsulates the numeric policy applied to every inversion the engine
// performs, before any per-call options.
type Config struct {
	// ConditionTolerance is the largest condition number an input matrix may
	// have before inversion fails with solver.ErrIllConditioned.
	// Values below gonum's built-in mat.ConditionTolerance put an explicit
	// condition estimate in front of every computation; values at or above it
	// rely on the estimate gonum produces during factorization.
	// Zero value uses solver.DefaultConditionTolerance. Must be >= 1.
	ConditionTolerance float64

	// ConditionNorm selects the norm for explicit condition estimates:
	// 1, 2, or +Inf. The 2-norm is the most accurate and the most expensive,
	// as it decomposes the matrix a second time.
	// Zero value uses solver.DefaultConditionNorm (the 1-norm).
	ConditionNorm float64
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		ConditionTolerance: solver.DefaultConditionTolerance,
		ConditionNorm:      solver.DefaultConditionNorm,
	}
}

// ToSolverOptions converts the Config to a solver.Option slice.
// The engine applies these ahead of per-call options, so callers can
// override either knob on any individual Invert call.
func (c Config) ToSolverOptions() []solver.Option {
	cfg := c.normalized()
	return []solver.Option{
		solver.WithConditionTolerance(cfg.ConditionTolerance),
		solver.WithConditionNorm(cfg.ConditionNorm),
	}
}

// Validate checks if the configuration values are valid.
// Returns an error if any configuration parameter is invalid.
func (c Config) Validate() error {
	if math.IsNaN(c.ConditionTolerance) {
		return &ConfigError{Field: "ConditionTolerance", Message: "must not be NaN"}
	}
	if c.ConditionTolerance != 0 && c.ConditionTolerance < 1 {
		return &ConfigError{Field: "ConditionTolerance", Message: "must be greater than or equal to 1, or 0 for the default"}
	}

	switch {
	case c.ConditionNorm == 0, c.ConditionNorm == 1, c.ConditionNorm == 2, math.IsInf(c.ConditionNorm, 1):
	default:
		return &ConfigError{Field: "ConditionNorm", Message: "must be 1, 2, or +Inf, or 0 for the default"}
	}

	return nil
}

// normalized returns a copy with zero fields replaced by their defaults.
func (c Config) normalized() Config {
	if c.ConditionTolerance == 0 {
		c.ConditionTolerance = solver.DefaultConditionTolerance
	}
	if c.ConditionNorm == 0 {
		c.ConditionNorm = solver.DefaultConditionNorm
	}
	return c
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// Interface assertion to ensure gonumInverter implements solver.Inverter
var _ solver.Inverter = (*gonumInverter)(nil)

// gonumInverter computes inverses with gonum's dense LU machinery.
type gonumInverter struct {
	config Config
}

// NewGonumInverter creates a new gonum-backed inversion engine.
// It validates the configuration and normalizes zero fields to their
// defaults, so a zero Config is a working engine with the stock policy.
//
// The engine is stateless apart from its configuration and safe for
// concurrent use; every call allocates its own result.
func NewGonumInverter(cfg Config) (*gonumInverter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &gonumInverter{config: cfg.normalized()}, nil
}

// Invert implements solver.Inverter.
// It rejects shapes gonum would panic on, enforces the effective condition
// tolerance, and maps gonum's mat.Condition failures onto the solver
// sentinels so callers can match them with errors.Is.
func (g *gonumInverter) Invert(m mat.Matrix, opts ...solver.Option) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("invert: %w", solver.ErrEmptyMatrix)
	}

	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("invert %dx%d matrix: %w", r, c, solver.ErrEmptyMatrix)
	}
	if r != c {
		return nil, fmt.Errorf("invert %dx%d matrix: %w", r, c, solver.ErrNonSquare)
	}

	// Engine configuration first, per-call options after, last writer wins.
	eff := solver.NewOptions(append(g.config.ToSolverOptions(), opts...)...)
	tol := eff.ConditionTolerance()

	// gonum only reports condition numbers above mat.ConditionTolerance, so
	// a stricter cap needs its own estimate before factorization.
	if tol < mat.ConditionTolerance {
		cond := mat.Cond(m, eff.ConditionNorm())
		if math.IsInf(cond, 1) {
			return nil, fmt.Errorf("invert %dx%d matrix: %w", r, c, solver.ErrSingular)
		}
		if cond > tol {
			return nil, fmt.Errorf("invert %dx%d matrix: condition number %.4g exceeds tolerance %.4g: %w",
				r, c, cond, tol, solver.ErrIllConditioned)
		}
	}

	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return nil, fmt.Errorf("invert %dx%d matrix: %w", r, c, err)
		}
		if math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("invert %dx%d matrix: %w", r, c, solver.ErrSingular)
		}
		if float64(cond) > tol {
			return nil, fmt.Errorf("invert %dx%d matrix: condition number %.4g exceeds tolerance %.4g: %w",
				r, c, float64(cond), tol, solver.ErrIllConditioned)
		}
		// Finite condition number within the caller's cap: the computed
		// inverse is valid, gonum only flags it as numerically delicate.
	}

	return &inv, nil
}
