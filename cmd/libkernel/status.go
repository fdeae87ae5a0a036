package main

import (
	"errors"

	"github.com/cwbudde/algo-kernel/kernel"
)

// Status codes returned by compute_vwap_checked.
const (
	statusOK = iota
	statusLengthMismatch
	statusEmptyInput
	statusZeroWeight
	statusUnknown
)

func statusOf(err error) int {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, kernel.ErrLengthMismatch):
		return statusLengthMismatch
	case errors.Is(err, kernel.ErrEmptyInput):
		return statusEmptyInput
	case errors.Is(err, kernel.ErrZeroWeight):
		return statusZeroWeight
	default:
		return statusUnknown
	}
}
