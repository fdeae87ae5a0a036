//go:build fastmath

package kernel

import (
	_ "github.com/cwbudde/algo-kernel/kernel/internal/arch/fastmath" // register approximate backend
)
