// Package calculator exposes the core's external interface: computing π to
// a caller-specified precision, either fresh each call or through a
// caching builder that reuses a prior computation's product/sum when asked
// for fewer digits.
package calculator

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"sync/atomic"

	"github.com/kali505/pi/internal/bigmul"
	"github.com/kali505/pi/internal/config"
	"github.com/kali505/pi/internal/pqt"
	"github.com/kali505/pi/internal/reduction"
	"github.com/kali505/pi/internal/rootconst"
	"github.com/kali505/pi/internal/workerpool"
)

// ProgressCallback reports progress as leaf chunks complete during Phase A.
type ProgressCallback func(current, total int64)

// Calculator and Builder both satisfy config.PiCalculator, letting callers
// (and tests) depend on the interface rather than a concrete type.
var (
	_ config.PiCalculator = (*Calculator)(nil)
	_ config.PiCalculator = (*Builder)(nil)
)

// GetNumCPU returns the number of CPU cores available, defaulting to 1 if
// detection fails.
func GetNumCPU() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

func validateDigits(cfg *config.Config, n int64) error {
	if n < 0 {
		return fmt.Errorf("digits must be non-negative, got %d", n)
	}
	if n > cfg.MaxDigits {
		return fmt.Errorf("digits exceeds maximum allowed (%d), got %d", cfg.MaxDigits, n)
	}
	return nil
}

func assemble(s, q, t *big.Int) *big.Int {
	num := bigmul.Mul(new(big.Int), s, big.NewInt(426880))
	num = bigmul.Mul(num, num, q)
	return num.Div(num, t)
}

// Calculator computes π to arbitrary precision, recomputing the full
// reduction on every call.
type Calculator struct {
	cfg        *config.Config
	pool       *workerpool.Pool
	onProgress ProgressCallback
}

// New creates a Calculator with the given configuration. pool may be nil
// to force sequential computation.
func New(cfg *config.Config, pool *workerpool.Pool) *Calculator {
	return &Calculator{cfg: cfg, pool: pool}
}

// SetProgressCallback sets the callback invoked as leaf chunks complete.
func (c *Calculator) SetProgressCallback(cb ProgressCallback) {
	c.onProgress = cb
}

// ComputePiInt returns ⌊π · 10^(digits−1)⌋ as an exact integer. digits=0
// returns 0 without dispatching any work.
func (c *Calculator) ComputePiInt(ctx context.Context, digits int64) (*big.Int, error) {
	if err := validateDigits(c.cfg, digits); err != nil {
		return nil, err
	}
	if digits == 0 {
		return big.NewInt(0), nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	sqrtCh := rootconst.Start(digits - 1)

	total := reduction.LeafCount(digits, c.cfg)
	var leavesDone int64
	onLeaf := func() {
		cur := atomic.AddInt64(&leavesDone, 1)
		if c.onProgress != nil {
			c.onProgress(cur, total)
		}
	}

	triple, _, err := reduction.Run(digits, c.cfg, c.pool, onLeaf)
	if err != nil {
		return nil, fmt.Errorf("reduction failed: %w", err)
	}

	s := <-sqrtCh
	return assemble(s, triple.Q, triple.T), nil
}

// Builder is the optional stateful variant: it caches the most recent
// (P̂, Q̂, T̂) together with the digit count it was computed for. A later
// call at or below that precision reuses the cached Q̂, T̂ and only
// recomputes the square root at the new precision, instead of rerunning
// the reduction.
type Builder struct {
	cfg        *config.Config
	pool       *workerpool.Pool
	onProgress ProgressCallback

	cachedDigits int64
	cached       pqt.Triple
}

// NewBuilder creates a Builder with the given configuration. pool may be
// nil to force sequential computation.
func NewBuilder(cfg *config.Config, pool *workerpool.Pool) *Builder {
	return &Builder{cfg: cfg, pool: pool}
}

// SetProgressCallback sets the callback invoked as leaf chunks complete,
// during calls that actually recompute the reduction.
func (b *Builder) SetProgressCallback(cb ProgressCallback) {
	b.onProgress = cb
}

// ComputePiInt returns ⌊π · 10^(digits−1)⌋ as an exact integer, reusing the
// cached product/sum from a prior call if digits is at or below the
// precision that call was computed for.
func (b *Builder) ComputePiInt(ctx context.Context, digits int64) (*big.Int, error) {
	if err := validateDigits(b.cfg, digits); err != nil {
		return nil, err
	}
	if digits == 0 {
		return big.NewInt(0), nil
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	sqrtCh := rootconst.Start(digits - 1)

	if b.cachedDigits == 0 || digits > b.cachedDigits {
		total := reduction.LeafCount(digits, b.cfg)
		var leavesDone int64
		onLeaf := func() {
			cur := atomic.AddInt64(&leavesDone, 1)
			if b.onProgress != nil {
				b.onProgress(cur, total)
			}
		}

		triple, _, err := reduction.Run(digits, b.cfg, b.pool, onLeaf)
		if err != nil {
			return nil, fmt.Errorf("reduction failed: %w", err)
		}
		b.cached = triple
		b.cachedDigits = digits
	}

	s := <-sqrtCh
	return assemble(s, b.cached.Q, b.cached.T), nil
}
