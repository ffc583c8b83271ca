package gamma

import (
	"fmt"
	"runtime"
	"sort"

	"gammaindex/pkg/grid"
)

// Evaluator computes the dense gamma field of a reference/tested pair. Every strategy
// returns the same values as the all-pairs scan; they differ only in how they get there.
type Evaluator interface {
	// Name identifies the strategy, e.g. "scalar"
	Name() string

	// Evaluate returns a freshly allocated gamma field shaped like the inputs.
	// The inputs are never modified.
	Evaluate(ref, tested *grid.Field, tol Tolerance) (*grid.Field, error)
}

// ProgressCallback is a function that reports progress during an evaluation
type ProgressCallback func(completed, total int, message string)

// Strategy names accepted by NewEvaluator
const (
	StrategyScalar   = "scalar"
	StrategyPruned   = "pruned"
	StrategyParallel = "parallel"
	StrategyKDTree   = "kdtree"
	StrategyNative   = "native"
)

var constructors = map[string]func(workers int) Evaluator{
	StrategyScalar:   func(int) Evaluator { return &ScalarEvaluator{} },
	StrategyPruned:   func(int) Evaluator { return &PrunedEvaluator{} },
	StrategyParallel: func(workers int) Evaluator { return &ParallelEvaluator{Workers: workers} },
	StrategyKDTree:   func(int) Evaluator { return &KDTreeEvaluator{} },
	StrategyNative:   func(int) Evaluator { return &NativeEvaluator{} },
}

// NewEvaluator returns the strategy registered under name. workers is only used by
// the parallel strategy; zero or less means one worker per CPU.
func NewEvaluator(name string, workers int) (Evaluator, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownStrategy, name, Strategies())
	}
	return ctor(workers), nil
}

// Strategies lists the registered strategy names in sorted order
func Strategies() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dense computes the gamma index of every reference point with the all-pairs scan.
// NaN tested samples are skipped; a point with no usable candidate gets NaN.
func Dense(ref, tested *grid.Field, tol Tolerance) (*grid.Field, error) {
	return (&ScalarEvaluator{}).Evaluate(ref, tested, tol)
}

func resolveWorkers(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}
	return workers
}
