package kernel

import "errors"

var (
	// ErrLengthMismatch is returned when prices and volumes differ in length.
	ErrLengthMismatch = errors.New("kernel: prices and volumes must have same length")

	// ErrEmptyInput is returned when no prices are given.
	ErrEmptyInput = errors.New("kernel: input must not be empty")

	// ErrZeroWeight is returned when the finite volumes sum to zero,
	// including the case where every pair was skipped.
	ErrZeroWeight = errors.New("kernel: total weight is zero")
)
