package matrixcache

import (
	"github.com/goliatone/go-matrix-cache/solver"
	"gonum.org/v1/gonum/mat"
)

// ResolveInverse returns the inverse of the matrix currently held by cm,
// computing it through engine only when the cache slot is empty.
//
// On a hit the cached inverse is returned as-is and opts are not consulted:
// options only ever shape the computation that fills the slot. On a miss the
// engine's result is stored before returning, so every follow-up call against
// the unchanged matrix is a pure hit. On failure the engine's error is
// returned unchanged and the slot stays empty, leaving a corrected retry free
// to recompute.
func ResolveInverse(engine solver.Inverter, cm *CachedMatrix, opts ...solver.Option) (*mat.Dense, error) {
	if inv, ok := cm.CachedInverse(); ok {
		return inv, nil
	}

	inv, err := engine.Invert(cm.Matrix(), opts...)
	if err != nil {
		return nil, err
	}

	cm.SetCachedInverse(inv)
	return inv, nil
}

// Resolver binds an inversion engine so call sites can resolve inverses
// without threading the engine through every call.
type Resolver struct {
	engine solver.Inverter
}

// NewResolver creates a Resolver backed by engine. Panics if engine is nil.
func NewResolver(engine solver.Inverter) *Resolver {
	if engine == nil {
		panic("matrixcache: nil engine")
	}
	return &Resolver{engine: engine}
}

// Resolve returns the inverse of the matrix currently held by cm, computing
// it only on a cache miss. See ResolveInverse for the full contract.
func (r *Resolver) Resolve(cm *CachedMatrix, opts ...solver.Option) (*mat.Dense, error) {
	return ResolveInverse(r.engine, cm, opts...)
}
