package gamma

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gammaindex/pkg/grid"
)

// Summary counts the outcomes of a windowed evaluation
type Summary struct {
	Total     int
	Evaluated int
	Passed    int
	Failed    int
	Ignored   int

	// PassRate is Passed/Evaluated, NaN when nothing was evaluated
	PassRate float64
}

// Summary counts the outcomes of the field
func (p *PassField) Summary() Summary {
	s := Summary{Total: len(p.Outcomes)}
	for _, o := range p.Outcomes {
		switch o {
		case Pass:
			s.Passed++
		case Fail:
			s.Failed++
		case Ignored:
			s.Ignored++
		}
	}
	s.Evaluated = s.Passed + s.Failed
	s.PassRate = math.NaN()
	if s.Evaluated > 0 {
		s.PassRate = float64(s.Passed) / float64(s.Evaluated)
	}
	return s
}

// Statistics describes the distribution of a dense gamma field. Missing (NaN) values
// are counted but excluded from every other figure.
type Statistics struct {
	Count   int
	Missing int

	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	P95    float64

	// PassRate is the fraction of non-missing values below 1
	PassRate float64
}

// Describe computes summary statistics of a gamma field
func Describe(g *grid.Field) Statistics {
	values := make([]float64, 0, g.Len())
	for _, v := range g.Data {
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	st := Statistics{Count: len(values), Missing: g.Len() - len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		st.Mean, st.StdDev, st.Min, st.Max, st.Median, st.P95, st.PassRate = nan, nan, nan, nan, nan, nan, nan
		return st
	}

	sort.Float64s(values)
	st.Mean = stat.Mean(values, nil)
	st.StdDev = math.NaN()
	if len(values) > 1 {
		st.StdDev = stat.StdDev(values, nil)
	}
	st.Min = floats.Min(values)
	st.Max = floats.Max(values)
	st.Median = stat.Quantile(0.5, stat.Empirical, values, nil)
	st.P95 = stat.Quantile(0.95, stat.Empirical, values, nil)

	passed := sort.SearchFloat64s(values, 1.0)
	st.PassRate = float64(passed) / float64(len(values))
	return st
}
