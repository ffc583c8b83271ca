package gamma

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"gammaindex/pkg/grid"
)

// ParallelEvaluator runs the all-pairs scan with the reference points split across
// goroutines. Each worker owns a disjoint range of the output, so no locking is needed
// on the result.
type ParallelEvaluator struct {
	// Workers is the number of goroutines; zero or less means one per CPU
	Workers int

	Progress ProgressCallback
}

// Name implements Evaluator
func (e *ParallelEvaluator) Name() string { return StrategyParallel }

// Evaluate implements Evaluator
func (e *ParallelEvaluator) Evaluate(ref, tested *grid.Field, tol Tolerance) (*grid.Field, error) {
	if err := checkInputs(ref, tested, tol); err != nil {
		return nil, err
	}
	s := tol.scales()
	out := grid.Zeros(ref.Shape)
	whole := ref.Shape.Box()

	runRange(ref.Shape, resolveWorkers(e.Workers), e.Progress, "parallel gamma", func(offset int, coords []int) {
		best, ok := s.minimum(tested, ref.Data[offset], coords, whole)
		out.Data[offset] = gammaValue(best, ok)
	})
	return out, nil
}

// chunksPerWorker oversplits the work so that progress is reported at a useful rate
const chunksPerWorker = 4

// span is a half-open range of row-major offsets
type span struct {
	lo, hi int
}

// partition splits [0, n) into at most parts contiguous spans of near equal size
func partition(n, parts int) []span {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	spans := make([]span, 0, parts)
	size, extra := n/parts, n%parts
	lo := 0
	for i := 0; i < parts; i++ {
		hi := lo + size
		if i < extra {
			hi++
		}
		spans = append(spans, span{lo, hi})
		lo = hi
	}
	return spans
}

// runRange calls fn once for every point of shape, spreading the points over workers
// goroutines. fn must only write state owned by its offset. A panic raised by fn in
// any worker is re-raised on the calling goroutine once all workers have stopped.
func runRange(shape grid.Shape, workers int, progress ProgressCallback, message string, fn func(offset int, coords []int)) {
	n := shape.Len()
	spans := partition(n, workers*chunksPerWorker)

	var (
		mu        sync.Mutex
		completed int
		panicked  any
		hasPanic  bool
	)
	report := func(s span) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		completed += s.hi - s.lo
		progress(completed, n, message)
	}
	visit := func(s span) {
		coords := make([]int, len(shape))
		for offset := s.lo; offset < s.hi; offset++ {
			coords = shape.Coords(offset, coords)
			fn(offset, coords)
		}
		report(s)
	}

	if workers <= 1 {
		for _, s := range spans {
			visit(s)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, s := range spans {
		s := s // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					if !hasPanic {
						panicked, hasPanic = r, true
					}
					mu.Unlock()
				}
			}()
			visit(s)
			return nil
		})
	}
	_ = g.Wait()

	if hasPanic {
		panic(panicked)
	}
}
