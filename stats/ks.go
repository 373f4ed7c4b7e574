// Package stats holds the sample statistics used by the natality analysis:
// scalar summaries of a sample and the two-sample Kolmogorov-Smirnov test.
package stats

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// KSResult is the outcome of a two-sample Kolmogorov-Smirnov test.
type KSResult struct {
	D  float64 // max absolute gap between the empirical CDFs
	P  float64 // asymptotic p-value under the null of a common distribution
	N1 int     // sample sizes after dropping NaNs
	N2 int
}

func (r *KSResult) String() string {
	return fmt.Sprintf("D=%.4f, p=%.6f", r.D, r.P)
}

// KolmogorovSmirnov runs the two-sample KS test on x and y. NaN elements are
// dropped first; an error is returned if either sample is then empty.
// The statistic is symmetric in x and y, and identical samples give
// D=0, p=1.
func KolmogorovSmirnov(x, y []float64) (*KSResult, error) {
	xs := dropNaN(x)
	ys := dropNaN(y)

	if len(xs) == 0 || len(ys) == 0 {
		return nil, fmt.Errorf("ks test requires two non-empty samples")
	}

	sort.Float64s(xs)
	sort.Float64s(ys)

	// gonum accumulates the ECDF steps in floating point and can come out a
	// hair above 1 for disjoint samples; D is a sup of CDF gaps, so cap it
	d := math.Min(stat.KolmogorovSmirnov(xs, nil, ys, nil), 1)

	return &KSResult{D: d, P: ksPvalue(d, len(xs), len(ys)), N1: len(xs), N2: len(ys)}, nil
}

// ksPvalue is the asymptotic p-value of the two-sample statistic d with
// sample sizes n and m: Q(lambda) = 2 sum_j (-1)^(j-1) exp(-2 j^2 lambda^2)
// with the small-sample adjustment lambda = (en + 0.12 + 0.11/en) d,
// en = sqrt(nm/(n+m)).
func ksPvalue(d float64, n, m int) float64 {
	if d <= 0 {
		return 1
	}

	en := math.Sqrt(float64(n) * float64(m) / float64(n+m))
	lambda := (en + 0.12 + 0.11/en) * d

	const (
		maxTerms = 100
		tol      = 1e-12
	)

	sum, sign := 0.0, 1.0
	for j := 1; j <= maxTerms; j++ {
		term := sign * math.Exp(-2.0*lambda*lambda*float64(j*j))
		sum += term
		if math.Abs(term) < tol {
			break
		}

		sign = -sign
	}

	p := 2.0 * sum
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}

	return p
}

func dropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, xx := range x {
		if !math.IsNaN(xx) {
			out = append(out, xx)
		}
	}

	return out
}
