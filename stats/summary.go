package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the scalar summaries of a sample.
type Summary struct {
	N        int
	Mean     float64
	Median   float64
	Variance float64
}

func (s *Summary) String() string {
	return fmt.Sprintf("n=%d, mean=%.3f, median=%.3f, var=%.3f", s.N, s.Mean, s.Median, s.Variance)
}

// Describe summarizes x after dropping NaNs.
func Describe(x []float64) (*Summary, error) {
	xs := dropNaN(x)
	if len(xs) == 0 {
		return nil, fmt.Errorf("cannot summarize an empty sample")
	}

	s := &Summary{
		N:      len(xs),
		Mean:   stat.Mean(xs, nil),
		Median: Median(xs),
	}

	if len(xs) > 1 {
		s.Variance = stat.Variance(xs, nil)
	} else {
		s.Variance = math.NaN()
	}

	return s, nil
}

// Median is the conventional sample median: the middle order statistic, or
// the mean of the two middle ones for an even-sized sample. x need not be
// sorted.
func Median(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	xs := make([]float64, len(x))
	copy(xs, x)
	sort.Float64s(xs)

	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid]
	}

	return 0.5 * (xs[mid-1] + xs[mid])
}
