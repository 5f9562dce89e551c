package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"syscall"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kali505/pi/internal/calculator"
	"github.com/kali505/pi/internal/config"
	"github.com/kali505/pi/internal/formatter"
	"github.com/kali505/pi/internal/reduction"
	"github.com/kali505/pi/internal/security"
	"github.com/kali505/pi/internal/workerpool"
)

var (
	logger *slog.Logger
	cfg    *config.Config

	outputPath  string
	printStdout bool
	cpuProfile  string
	memProfile  string
	workers     int
)

func main() {
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg = config.Default()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pi <digits>",
		Short: "Compute π to N decimal digits using the Chudnovsky algorithm",
		Long: `pi computes π to a requested number of decimal digits using binary
splitting over the Chudnovsky series, dividing the work across a worker
pool and writing the result to a file and, optionally, to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: runCompute,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "results/pi.txt", "output file path for pi digits")
	cmd.Flags().BoolVar(&printStdout, "print", false, "print pi to stdout in addition to writing the output file")
	cmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	cmd.Flags().StringVar(&memProfile, "memprofile", "", "write a heap profile to this file")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "worker pool size (0 = use the configured default)")

	return cmd
}

func runCompute(cmd *cobra.Command, args []string) error {
	digits, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid digits value %q: %w", args[0], err)
	}
	if digits < 1 {
		return fmt.Errorf("digits must be at least 1, got %d", digits)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("creating CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}
	if memProfile != "" {
		defer writeHeapProfile(memProfile)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received interrupt signal, cancelling context; a computation already under way runs to completion")
		cancel()
	}()

	poolSize := workers
	if poolSize == 0 {
		poolSize = cfg.Workers
	}
	pool := workerpool.New(poolSize)
	defer pool.Close()

	calc := calculator.New(cfg, pool)

	if cfg.ProgressBarEnabled {
		total := reduction.LeafCount(digits, cfg)
		reporter := newBarReporter(total)
		calc.SetProgressCallback(func(current, total int64) {
			reporter.Update(current, total)
		})
		defer reporter.Finish()
	}

	logger.Info("starting computation", "digits", digits, "workers", poolSize)
	start := time.Now()

	result, err := calc.ComputePiInt(ctx, digits)
	if err != nil {
		return fmt.Errorf("computing pi: %w", err)
	}

	elapsed := time.Since(start)
	logger.Info("computation complete", "duration", elapsed, "digits_per_second", float64(digits)/elapsed.Seconds())

	return writeResult(digits, result, elapsed)
}

func writeResult(digits int64, result *big.Int, elapsed time.Duration) error {
	out := formatter.FormatPiOutput(digits, result)

	sanitized, err := security.SanitizePath(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	if dir := filepath.Dir(sanitized); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(sanitized, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", sanitized, err)
	}

	logger.Info("pi saved", "path", sanitized, "digits", digits, "duration", elapsed)

	if printStdout {
		fmt.Println(out)
	}
	return nil
}

// barReporter adapts a progressbar.ProgressBar to config.ProgressReporter.
type barReporter struct {
	bar *progressbar.ProgressBar
}

var _ config.ProgressReporter = (*barReporter)(nil)

func newBarReporter(total int64) *barReporter {
	return &barReporter{bar: progressbar.NewOptions64(total,
		progressbar.OptionSetDescription("Computing leaf chunks"),
		progressbar.OptionSetWidth(50),
	)}
}

func (r *barReporter) Update(current, _ int64) {
	_ = r.bar.Set64(current)
}

func (r *barReporter) Finish() error {
	return r.bar.Finish()
}

func writeHeapProfile(path string) {
	f, err := os.Create(path)
	if err != nil {
		logger.Error("failed to create heap profile", "error", err)
		return
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		logger.Error("failed to write heap profile", "error", err)
	}
}
