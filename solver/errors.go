package solver

import "errors"

// Sentinel errors reported by Inverter implementations. Implementations wrap
// them with call context (dimensions, measured condition number) via %w, so
// callers match with errors.Is rather than equality.
var (
	// ErrEmptyMatrix is returned when the input matrix is nil or has zero size.
	ErrEmptyMatrix = errors.New("solver: empty matrix")

	// ErrNonSquare is returned when the input's row and column counts differ.
	ErrNonSquare = errors.New("solver: matrix is not square")

	// ErrSingular is returned when the input is exactly singular and no
	// inverse exists.
	ErrSingular = errors.New("solver: singular matrix")

	// ErrIllConditioned is returned when the input's condition number exceeds
	// the effective tolerance, so a computed inverse would not be trustworthy.
	ErrIllConditioned = errors.New("solver: matrix is ill-conditioned")
)
