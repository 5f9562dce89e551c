package config

import (
	"context"
	"math/big"
)

// PiCalculator is implemented by both the plain Calculator and the caching
// Builder: it computes ⌊π · 10^(digits−1)⌋ as an exact integer.
type PiCalculator interface {
	ComputePiInt(ctx context.Context, digits int64) (*big.Int, error)
}

// ProgressReporter is implemented by CLI progress bars driven from
// leaf-chunk completion callbacks rather than per-term callbacks.
type ProgressReporter interface {
	Update(current, total int64)
	Finish() error
}
