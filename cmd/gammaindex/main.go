package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"gammaindex/internal/models"
	"gammaindex/pkg/config"
	"gammaindex/pkg/gamma"
	"gammaindex/pkg/grid"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "gammaindex.yaml", "YAML configuration file (defaults are used if it does not exist)")
	writeConfig := flag.Bool("write-config", false, "Write the default configuration to -config and exit")
	shapeText := flag.String("shape", "32x32", "Grid shape of the phantoms, e.g. 32x32 or 16x16x16")
	strategy := flag.String("strategy", "", "Dense evaluation strategy (overrides config): "+strings.Join(gamma.Strategies(), ", "))
	workers := flag.Int("workers", 0, "Number of goroutines for the parallel evaluators (overrides config)")
	shiftText := flag.String("shift", "1", "Shift of the tested peak in grid steps, comma separated per axis")
	scale := flag.Float64("scale", 1.03, "Dose scale of the tested phantom")
	flag.Parse()

	if *writeConfig {
		if err := config.CreateDefaultConfigFile(*configPath); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configPath)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *strategy != "" {
		cfg.Evaluation.Strategy = *strategy
	}
	if *workers > 0 {
		cfg.Evaluation.Workers = *workers
	}

	shape, err := grid.ParseShape(*shapeText)
	if err != nil {
		log.Fatalf("Invalid shape: %v", err)
	}
	shift, err := parseShift(*shiftText)
	if err != nil {
		log.Fatalf("Invalid shift: %v", err)
	}

	evaluator, err := cfg.Evaluator()
	if err != nil {
		log.Fatalf("Invalid strategy: %v", err)
	}
	tol := cfg.GammaTolerance()

	// Render the phantom pair
	phantom := models.NewPhantom(shape)
	ref := phantom.Render()
	tested := phantom.Shifted(shift).Scaled(*scale).Render()

	fmt.Println("================================")
	fmt.Println("GAMMA INDEX EVALUATION")
	fmt.Println("================================")
	fmt.Printf("Grid: %s (%d points)\n", shape, shape.Len())
	fmt.Printf("Tolerance: dta=%.2f steps, dd=%.3f\n", tol.DTA, tol.DD)
	fmt.Printf("Strategy: %s\n\n", evaluator.Name())

	progress := func(completed, total int, message string) {
		if cfg.Output.Verbose {
			fmt.Printf("\r%s: %.1f%% complete", message, float64(completed)/float64(total)*100)
		}
	}
	setProgress(evaluator, progress)

	// Dense gamma field
	startTime := time.Now()
	gammaField, err := evaluator.Evaluate(ref, tested, tol)
	if err != nil {
		log.Fatalf("Dense evaluation failed: %v", err)
	}
	denseTime := time.Since(startTime)
	if cfg.Output.Verbose {
		fmt.Println()
	}

	// Windowed pass/fail test
	windowed := &gamma.WindowedEvaluator{Workers: cfg.Evaluation.Workers, Progress: progress}
	startTime = time.Now()
	passField, err := windowed.Evaluate(ref, tested, tol, cfg.Ignore())
	if err != nil {
		log.Fatalf("Windowed evaluation failed: %v", err)
	}
	windowedTime := time.Since(startTime)
	if cfg.Output.Verbose {
		fmt.Println()
	}

	stats := gamma.Describe(gammaField)
	fmt.Printf("\nDense gamma (%.3f seconds):\n", denseTime.Seconds())
	fmt.Printf("- Points: %d (%d without data)\n", stats.Count, stats.Missing)
	fmt.Printf("- Mean: %.4f, std dev: %.4f\n", stats.Mean, stats.StdDev)
	fmt.Printf("- Min: %.4f, median: %.4f, 95th percentile: %.4f, max: %.4f\n",
		stats.Min, stats.Median, stats.P95, stats.Max)
	fmt.Printf("- Pass rate (gamma < 1): %.2f%%\n", stats.PassRate*100)

	summary := passField.Summary()
	fmt.Printf("\nWindowed test (%.3f seconds):\n", windowedTime.Seconds())
	fmt.Printf("- Evaluated: %d, ignored: %d\n", summary.Evaluated, summary.Ignored)
	fmt.Printf("- Passed: %d, failed: %d\n", summary.Passed, summary.Failed)
	fmt.Printf("- Pass rate: %.2f%%\n", summary.PassRate*100)
}

// parseShift parses a comma separated list of per-axis offsets
func parseShift(text string) ([]float64, error) {
	var shift []float64
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		shift = append(shift, v)
	}
	return shift, nil
}

// setProgress attaches the progress callback to evaluators that report progress
func setProgress(e gamma.Evaluator, progress gamma.ProgressCallback) {
	switch ev := e.(type) {
	case *gamma.ScalarEvaluator:
		ev.Progress = progress
	case *gamma.PrunedEvaluator:
		ev.Progress = progress
	case *gamma.ParallelEvaluator:
		ev.Progress = progress
	case *gamma.KDTreeEvaluator:
		ev.Progress = progress
	}
}
