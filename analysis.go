package natality

import (
	"fmt"

	"github.com/invertedv/natality/frame"
	"github.com/invertedv/natality/stats"
)

// Shares tabulates the categories of inner within the imputed and
// directly-reported populations: a count per (raceImputed, inner) cell and
// the cell's share of its population.
func Shares(df *frame.DF, inner string) (*frame.DF, error) {
	sh, e := df.Shares(ColRaceImputed, inner)
	if e != nil {
		return nil, e
	}

	if e = sh.Sort(true, ColRaceImputed+","+inner); e != nil {
		return nil, e
	}

	return sh, nil
}

// RaceShares is Shares over the mother's race recode with a label column
// appended.
func RaceShares(df *frame.DF) (*frame.DF, error) {
	sh, e := Shares(df, ColMothersRace)
	if e != nil {
		return nil, e
	}

	race, e := sh.Column(ColMothersRace)
	if e != nil {
		return nil, e
	}

	labels := make([]string, sh.RowCount())
	for ind, code := range race.AsInt() {
		var ok bool
		if labels[ind], ok = RaceLabels()[code]; !ok {
			labels[ind] = fmt.Sprintf("code %d", code)
		}
	}

	labCol, e := frame.NewCol("race", labels)
	if e != nil {
		return nil, e
	}

	if e = sh.AppendColumn(labCol, false); e != nil {
		return nil, e
	}

	return sh, nil
}

// GroupSummaries computes n, mean, median and variance of col within the
// directly-reported and imputed populations, one row per population. n is
// the count of observed values: NaNs (unknown sentinels) are dropped, as in
// the KS comparison.
func GroupSummaries(df *frame.DF, col string) (*frame.DF, error) {
	flags := []int{0, 1}

	n := make([]int, len(flags))
	mean := make([]float64, len(flags))
	med := make([]float64, len(flags))
	vr := make([]float64, len(flags))

	for ind, flag := range flags {
		x, e := Sample(df, col, flag)
		if e != nil {
			return nil, e
		}

		var s *stats.Summary
		if s, e = stats.Describe(x); e != nil {
			return nil, e
		}

		n[ind], mean[ind], med[ind], vr[ind] = s.N, s.Mean, s.Median, s.Variance
	}

	var cols []*frame.Col
	for _, c := range []struct {
		name string
		data any
	}{
		{ColRaceImputed, flags},
		{"n", n},
		{"mean", mean},
		{"median", med},
		{"variance", vr},
	} {
		cc, e := frame.NewCol(c.name, c.data)
		if e != nil {
			return nil, e
		}

		cols = append(cols, cc)
	}

	return frame.NewDF(cols...)
}

// Compare runs the two-sample KS test on col between the imputed and
// directly-reported populations.
func Compare(df *frame.DF, col string) (*stats.KSResult, error) {
	imputed, e := Sample(df, col, 1)
	if e != nil {
		return nil, e
	}

	direct, e := Sample(df, col, 0)
	if e != nil {
		return nil, e
	}

	return stats.KolmogorovSmirnov(imputed, direct)
}

// Sample extracts col as floats for the rows with the given raceImputed
// value.
func Sample(df *frame.DF, col string, imputed int) ([]float64, error) {
	part, e := df.Where(ColRaceImputed, imputed)
	if e != nil {
		return nil, e
	}

	c, e := part.Column(col)
	if e != nil {
		return nil, e
	}

	return c.AsFloat(), nil
}
