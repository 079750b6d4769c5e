package solver

import "math"

// Default option values applied by NewOptions before any overrides.
const (
	// DefaultConditionTolerance is the largest condition number an input may
	// have before inversion fails. It matches the threshold gonum's mat
	// package enforces internally, so the default adds no extra work.
	DefaultConditionTolerance = 1e16

	// DefaultConditionNorm selects the 1-norm for condition estimates, the
	// cheapest of the supported norms.
	DefaultConditionNorm = 1.0
)

// Panic messages for invalid option parameters (programmer errors).
const (
	panicToleranceInvalid = "solver: condition tolerance must be >= 1 and not NaN"
	panicNormInvalid      = "solver: condition norm must be 1, 2, or +Inf"
)

// Options carries the per-call settings for a single inversion. Options only
// ever affect the computation they are passed to: a cached inverse produced
// by an earlier call is served as-is, regardless of the options supplied on
// later calls.
type Options struct {
	conditionTolerance float64
	conditionNorm      float64
}

// Option mutates Options. Constructors panic on parameter values that can
// only be a programmer error; all input-dependent failures are returned as
// errors by Inverter implementations instead.
type Option func(*Options)

// WithConditionTolerance caps the acceptable condition number for this call.
// Inputs whose condition number exceeds tol fail with ErrIllConditioned.
// Panics if tol is NaN or below 1 (condition numbers are never below 1).
func WithConditionTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol < 1 {
		panic(panicToleranceInvalid)
	}
	return func(o *Options) { o.conditionTolerance = tol }
}

// WithConditionNorm selects the norm used for condition estimates: 1, 2, or
// +Inf. Panics on any other value.
func WithConditionNorm(norm float64) Option {
	if norm != 1 && norm != 2 && !math.IsInf(norm, 1) {
		panic(panicNormInvalid)
	}
	return func(o *Options) { o.conditionNorm = norm }
}

// NewOptions returns Options populated with the package defaults and then
// the given overrides applied in order, last writer winning.
func NewOptions(opts ...Option) Options {
	o := Options{
		conditionTolerance: DefaultConditionTolerance,
		conditionNorm:      DefaultConditionNorm,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ConditionTolerance reports the effective condition-number cap.
func (o Options) ConditionTolerance() float64 {
	return o.conditionTolerance
}

// ConditionNorm reports the norm used for condition estimates.
func (o Options) ConditionNorm() float64 {
	return o.conditionNorm
}
