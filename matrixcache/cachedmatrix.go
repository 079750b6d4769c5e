package matrixcache

import "gonum.org/v1/gonum/mat"

// CachedMatrix pairs a mutable matrix value with a single cache slot holding
// that value's inverse. The slot starts empty, is filled by ResolveInverse,
// and is cleared whenever the matrix is replaced. There is exactly one slot
// per instance and instances share nothing.
//
// A CachedMatrix assumes a single owner. None of its methods lock; callers
// that share an instance across goroutines must synchronize around the whole
// read-check-compute-store sequence, not just individual calls.
type CachedMatrix struct {
	value   mat.Matrix
	inverse *mat.Dense
}

// New creates a CachedMatrix holding initial, with an empty cache slot.
// A nil initial is replaced by the placeholder value, gonum's zero-size
// empty matrix. The placeholder is not invertible; it exists so that Matrix
// never returns nil before the first SetMatrix call.
func New(initial mat.Matrix) *CachedMatrix {
	cm := &CachedMatrix{}
	cm.SetMatrix(initial)
	return cm
}

// SetMatrix replaces the current matrix and clears any cached inverse in the
// same call, so no caller can observe the new value paired with a stale
// inverse. A nil m is replaced by the empty placeholder matrix.
//
// The new value's shape is not checked here; unusable shapes surface as
// errors on the next inversion instead.
func (c *CachedMatrix) SetMatrix(m mat.Matrix) {
	if m == nil {
		m = &mat.Dense{}
	}
	c.value = m
	c.inverse = nil
}

// Matrix returns the current matrix. It never returns nil and has no side
// effects.
func (c *CachedMatrix) Matrix() mat.Matrix {
	return c.value
}

// SetCachedInverse stores inv in the cache slot, overwriting any prior
// value. Nothing ties inv to the current matrix: keeping that pairing
// correct is the caller's job, normally done by going through
// ResolveInverse. Passing nil clears the slot back to empty.
func (c *CachedMatrix) SetCachedInverse(inv *mat.Dense) {
	c.inverse = inv
}

// CachedInverse returns the cached inverse and whether the slot is
// populated. It never computes anything and has no side effects.
func (c *CachedMatrix) CachedInverse() (*mat.Dense, bool) {
	if c.inverse == nil {
		return nil, false
	}
	return c.inverse, true
}
