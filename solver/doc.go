// Package solver defines the contract between the matrix cache and the
// inversion backend that does the actual numeric work.
//
// # Overview
//
// This package exports the Inverter interface plus the per-call options and
// sentinel errors its implementations share:
//
//   - Inverter: computes the multiplicative inverse of a square matrix
//   - InverterFunc: adapts a plain function to the Inverter interface
//   - Option / Options: per-call knobs forwarded to the backend
//   - ErrEmptyMatrix, ErrNonSquare, ErrSingular, ErrIllConditioned: the
//     failure taxonomy, matched with errors.Is
//
// The package deliberately contains no implementation. The default
// gonum-backed engine lives in an internal package and is constructed
// through the di package, which keeps backends swappable without touching
// the callers.
//
// # Per-Call Options
//
// Options travel with a single Invert call and nothing else. The cache layer
// forwards them only when it actually computes:
//
//	inv, err := engine.Invert(m,
//		solver.WithConditionTolerance(1e8),
//		solver.WithConditionNorm(1),
//	)
//
// Once a result is cached, later calls with different options receive the
// cached value unchanged. Options therefore describe "how to compute this
// inverse", never "which inverse to return".
//
// # Error Matching
//
// Implementations wrap the sentinels with call context, so match by identity
// chain rather than message:
//
//	if errors.Is(err, solver.ErrSingular) {
//		// the matrix has no inverse; fix the input and retry
//	}
//
// # See Also
//
// For the memoizing container and accessor, see the matrixcache package.
// For engine construction and configuration, see the pkg/di package.
package solver
