// Package matrixcache memoizes the inverse of a single mutable matrix.
//
// # Overview
//
// Inverting a matrix is expensive; asking for the same inverse twice should
// not be. This package wraps one matrix value and one cache slot for its
// inverse behind a small invalidation contract:
//
//   - CachedMatrix: holds the current matrix and the optional cached inverse;
//     replacing the matrix clears the slot in the same call
//   - ResolveInverse / Resolver: return the inverse, computing it through a
//     solver.Inverter only when the slot is empty
//
// It is a value cache, not a caching system. There is no keying, no
// eviction, no TTL, and no registry: one slot per CachedMatrix, instances
// fully independent.
//
// # Basic Usage
//
// Wrap a matrix, resolve as often as you like, and mutate through SetMatrix
// when the value changes:
//
//	container, err := di.NewContainerWithDefaults()
//	if err != nil {
//		return err
//	}
//	resolver := di.NewResolver(container)
//
//	cm := matrixcache.New(mat.NewDense(2, 2, []float64{2, 0, 0, 2}))
//
//	inv, err := resolver.Resolve(cm) // computes and stores
//	inv, err = resolver.Resolve(cm)  // served from the slot
//
//	cm.SetMatrix(mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
//	inv, err = resolver.Resolve(cm)  // recomputes for the new value
//
// # The Invalidation Contract
//
// SetMatrix replaces the value and clears the slot as one operation. There
// is no observable state in which the new matrix coexists with the previous
// matrix's inverse. The slot refills at most once per distinct assignment,
// on the first successful resolve after it.
//
// # Options Only Shape the Miss
//
// Resolve forwards solver options to the engine only when it actually
// computes. Once the slot is populated, calls with different options return
// the cached inverse unchanged; the options in effect on the filling call
// are the ones that produced it. Callers that need an inverse under a
// different policy must invalidate first (SetMatrix with the same value, or
// SetCachedInverse(nil)).
//
// # Failures
//
// Engine errors pass through untouched and never populate the slot. After a
// failed resolve the slot reads empty, so fixing the matrix via SetMatrix
// and resolving again behaves like a first call. Match failures against the
// solver package sentinels with errors.Is.
//
// # Manual Slot Access
//
// SetCachedInverse and CachedInverse expose the raw slot for callers that
// precompute inverses or hydrate them from elsewhere. The package trusts
// such callers: nothing verifies that a stored inverse matches the current
// matrix.
//
// # Concurrency
//
// A CachedMatrix has a single owner and does no locking. Sharing one across
// goroutines requires external synchronization around the whole resolve
// sequence; two unsynchronized miss paths would both invoke the engine, with
// the second store harmlessly overwriting the first.
//
// # See Also
//
// The solver package defines the engine contract, options, and failure
// sentinels. The pkg/di package wires the default gonum-backed engine.
package matrixcache
