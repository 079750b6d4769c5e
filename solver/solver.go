package solver

import "gonum.org/v1/gonum/mat"

// Inverter computes the multiplicative inverse of a square matrix.
// It is exported so that callers can swap in alternate inversion backends;
// the matrixcache package only decides when to invoke it, never how.
//
// Implementations return the inverse as a freshly allocated dense matrix and
// must not retain or mutate m. Failures are reported as errors wrapping the
// sentinels in this package so callers can match them with errors.Is.
type Inverter interface {
	Invert(m mat.Matrix, opts ...Option) (*mat.Dense, error)
}

// InverterFunc adapts an ordinary function to the Inverter interface.
type InverterFunc func(m mat.Matrix, opts ...Option) (*mat.Dense, error)

// Invert calls fn(m, opts...).
func (fn InverterFunc) Invert(m mat.Matrix, opts ...Option) (*mat.Dense, error) {
	return fn(m, opts...)
}
