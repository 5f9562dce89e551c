// Package config centralizes the tunables of the binary-splitting engine so
// none of them are hard-coded inside the computation packages.
package config

// Config holds every compile-time tunable the core exposes: the worker pool
// size, the leaf chunk size, and the reduction fan-in, plus the operational
// limit on requested precision.
type Config struct {
	// MaxDigits bounds the number of digits a single request may ask for,
	// guarding against unbounded memory use.
	MaxDigits int64

	// Workers is the fixed worker-pool size (W). Any W >= 1 is permitted;
	// results are bit-identical regardless of its value.
	Workers int

	// LeafSize is the fixed leaf chunk length (L) used during Phase A.
	LeafSize int64

	// ReductionFanIn is the per-task fan-in (chunk_sz) used during Phase B.
	ReductionFanIn int64

	// DigitsPerIterNumerator and DigitsPerIterDenominator express the
	// digits-per-term ratio 14181647463/10^9 as an exact integer fraction,
	// keeping the need_iters computation free of floating point.
	DigitsPerIterNumerator   int64
	DigitsPerIterDenominator int64

	// ProgressBarEnabled controls whether the CLI reports leaf-chunk progress.
	ProgressBarEnabled bool
}

// Default returns the reference configuration: W=4, L=10000, and
// chunk_sz=40 (⌈L/256⌉), matching the reference values.
func Default() *Config {
	return &Config{
		MaxDigits:                1_000_000_000,
		Workers:                  4,
		LeafSize:                 10_000,
		ReductionFanIn:           40,
		DigitsPerIterNumerator:   14_181_647_463,
		DigitsPerIterDenominator: 1_000_000_000,
		ProgressBarEnabled:       true,
	}
}
