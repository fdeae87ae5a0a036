package kernel

import (
	_ "github.com/cwbudde/algo-kernel/kernel/internal/arch/generic" // register generic backend
)
