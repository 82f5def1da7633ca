package lbm

import "errors"

// Setup errors are returned by NewSolver before any iteration runs; iteration
// errors carry the offending iteration index via fmt.Errorf wrapping and are
// matched with errors.Is.
var (
	// ErrInvalidRelaxationParameter reports a relaxation rate outside the
	// stable open interval (0, 2).
	ErrInvalidRelaxationParameter = errors.New("relaxation parameter outside (0, 2)")

	// ErrInletVelocityOutOfRange reports an inlet speed at or above the
	// lattice speed limit of 1.
	ErrInletVelocityOutOfRange = errors.New("inlet velocity out of range")

	// ErrNonPhysicalDensity reports a zero, negative, or non-finite density
	// produced by macroscopic extraction or inlet reconstruction.
	ErrNonPhysicalDensity = errors.New("non-physical density")

	// ErrNumericalDivergence reports a non-finite population value; the run
	// is aborted, there is no local recovery once the solve diverges.
	ErrNumericalDivergence = errors.New("numerical divergence")
)
