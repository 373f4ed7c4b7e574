package natality

import (
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/invertedv/natality/frame"
)

// Report renders the analysis: share tables and grouped bar charts for the
// categorical columns, summary tables, KS tests and overlaid histograms for
// the continuous ones. Plots are written as HTML under OutDir; with ShowPlots
// set they also open in Browser.
type Report struct {
	OutDir    string
	Browser   string
	ShowPlots bool

	out io.Writer
}

func NewReport(outDir string, out io.Writer) *Report {
	return &Report{OutDir: outDir, out: out}
}

// Run produces the full report from a cleaned frame.
func (r *Report) Run(df *frame.DF) error {
	imp, e := df.Column(ColRaceImputed)
	if e != nil {
		return e
	}

	nImp := 0
	for _, v := range imp.AsInt() {
		nImp += v
	}

	fmt.Fprintf(r.out, "%d records, %d (%.1f%%) with the mother's race imputed\n\n",
		df.RowCount(), nImp, 100*float64(nImp)/float64(df.RowCount()))

	for _, col := range CategoricalColumns() {
		if e := r.categorical(df, col); e != nil {
			return e
		}
	}

	for _, col := range ContinuousColumns() {
		if e := r.continuous(df, col); e != nil {
			return e
		}
	}

	return nil
}

func (r *Report) categorical(df *frame.DF, col string) error {
	var (
		sh *frame.DF
		e  error
	)

	labelCol := col
	if col == ColMothersRace {
		labelCol = "race"
		sh, e = RaceShares(df)
	} else {
		sh, e = Shares(df, col)
	}
	if e != nil {
		return e
	}

	fmt.Fprintf(r.out, "shares of %s by imputation status\n%s\n", col, sh)

	p := frame.NewPlot(
		frame.WithTitle("Shares of "+col+" by imputation status"),
		frame.WithGroupedBars(),
		frame.WithXlabel(col),
		frame.WithYlabel("share"),
		frame.WithLegend(true))

	for _, series := range []struct {
		flag int
		name string
	}{
		{1, "imputed"},
		{0, "reported"},
	} {
		x, y, ex := barSeries(sh, labelCol, series.flag)
		if ex != nil {
			return ex
		}

		if ex := p.Bar(x, y, series.name); ex != nil {
			return ex
		}
	}

	return r.render(p, "shares_"+col)
}

func (r *Report) continuous(df *frame.DF, col string) error {
	summ, e := GroupSummaries(df, col)
	if e != nil {
		return e
	}

	fmt.Fprintf(r.out, "%s by imputation status\n%s\n", col, summ)

	ks, e := Compare(df, col)
	if e != nil {
		return e
	}

	fmt.Fprintf(r.out, "ks test on %s, imputed vs reported: %s\n\n", col, ks)

	p := frame.NewPlot(
		frame.WithTitle("Distribution of "+col+" by imputation status"),
		frame.WithOverlaid(),
		frame.WithXlabel(col),
		frame.WithYlabel("count"),
		frame.WithLegend(true))

	for _, series := range []struct {
		flag int
		name string
	}{
		{1, "imputed"},
		{0, "reported"},
	} {
		x, ex := Sample(df, col, series.flag)
		if ex != nil {
			return ex
		}

		// NaNs (unknown sentinels) don't survive the figure's JSON encoding
		if ex := p.Histogram(dropNaN(x), series.name, 0.6); ex != nil {
			return ex
		}
	}

	return r.render(p, "hist_"+col)
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

// render saves the plot under OutDir and opens it if ShowPlots is set. With
// no OutDir and ShowPlots off, the plot is discarded.
func (r *Report) render(p *frame.Plot, name string) error {
	if r.OutDir == "" {
		if r.ShowPlots {
			return p.Show(r.Browser, "")
		}

		return nil
	}

	fileName := filepath.Join(r.OutDir, name+".html")
	if e := p.Save(fileName); e != nil {
		return e
	}

	if r.ShowPlots {
		return p.Show(r.Browser, fileName)
	}

	return nil
}

// barSeries pulls the categories and shares for one imputation-status value
// out of a shares frame.
func barSeries(sh *frame.DF, labelCol string, flag int) (x []string, y []float64, err error) {
	part, e := sh.Where(ColRaceImputed, flag)
	if e != nil {
		return nil, nil, e
	}

	lab, e := part.Column(labelCol)
	if e != nil {
		return nil, nil, e
	}

	share, e := part.Column("share")
	if e != nil {
		return nil, nil, e
	}

	return lab.AsString(), share.AsFloat(), nil
}
