package frame

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// By groups df on the comma-separated groupBy columns and evaluates the
// aggregations, one per output column. Each aggregation has the form
//
//	name := fn(col)
//
// where fn is one of count, sum, mean, median, var, sdev, min, max.
// Only key combinations observed in df appear in the output, in order of
// first appearance. An empty groupBy produces a single all-row group.
func (df *DF) By(groupBy string, aggs ...string) (*DF, error) {
	if len(aggs) == 0 {
		return nil, fmt.Errorf("no aggregations")
	}

	var keyCols []*Col
	if groupBy != "" {
		for _, nm := range strings.Split(groupBy, ",") {
			var (
				col *Col
				e   error
			)
			if col, e = df.Column(strings.TrimSpace(nm)); e != nil {
				return nil, e
			}

			keyCols = append(keyCols, col)
		}
	}

	keys, groups := df.partition(keyCols)

	// group keys come first in the output
	var outCols []*Col
	for ind := 0; ind < len(keyCols); ind++ {
		first := make([]int, len(keys))
		for k := 0; k < len(keys); k++ {
			first[k] = groups[keys[k]][0]
		}

		outCols = append(outCols, &Col{name: keyCols[ind].Name(""), Vector: keyCols[ind].Subset(first)})
	}

	for _, agg := range aggs {
		name, fn, colName, e := parseAgg(agg)
		if e != nil {
			return nil, e
		}

		var col *Col
		if col, e = df.Column(colName); e != nil {
			return nil, e
		}

		outCol, ex := applyAgg(name, fn, col, keys, groups)
		if ex != nil {
			return nil, ex
		}

		outCols = append(outCols, outCol)
	}

	return NewDF(outCols...)
}

// Shares counts the rows in each (outer, inner) cell and computes the cell's
// share of its outer group's rows. outer may be empty or comma-separated;
// inner is a single column. Within any outer group the shares sum to 1.
func (df *DF) Shares(outer, inner string) (*DF, error) {
	groupBy := inner
	if outer != "" {
		groupBy = outer + "," + inner
	}

	out, e := df.By(groupBy, "n := count("+inner+")")
	if e != nil {
		return nil, e
	}

	var outerCols []*Col
	if outer != "" {
		for _, nm := range strings.Split(outer, ",") {
			col, ex := out.Column(strings.TrimSpace(nm))
			if ex != nil {
				return nil, ex
			}

			outerCols = append(outerCols, col)
		}
	}

	nCol, e := out.Column("n")
	if e != nil {
		return nil, e
	}

	// total rows within each outer group
	_, groups := out.partition(outerCols)
	totals := make(map[string]int)
	for key, rows := range groups {
		for _, row := range rows {
			totals[key] += nCol.AsInt()[row]
		}
	}

	share := make([]float64, out.RowCount())
	for key, rows := range groups {
		for _, row := range rows {
			share[row] = float64(nCol.AsInt()[row]) / float64(totals[key])
		}
	}

	shareCol, e := NewCol("share", share)
	if e != nil {
		return nil, e
	}

	if e := out.AppendColumn(shareCol, false); e != nil {
		return nil, e
	}

	return out, nil
}

// partition maps each row to its group key. keys preserves first-appearance
// order; groups maps key -> row indices. With no key columns there is a
// single group keyed by "".
func (df *DF) partition(keyCols []*Col) (keys []string, groups map[string][]int) {
	groups = make(map[string][]int)

	for row := 0; row < df.RowCount(); row++ {
		var parts []string
		for ind := 0; ind < len(keyCols); ind++ {
			parts = append(parts, fmt.Sprintf("%v", keyCols[ind].Element(row)))
		}

		key := strings.Join(parts, "\x1f")
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}

		groups[key] = append(groups[key], row)
	}

	return keys, groups
}

// parseAgg splits "name := fn(col)" into its parts.
func parseAgg(agg string) (name, fn, col string, err error) {
	lr := strings.SplitN(agg, ":=", 2)
	if len(lr) != 2 {
		return "", "", "", fmt.Errorf("aggregation %s isn't of the form name := fn(col)", agg)
	}

	name = strings.TrimSpace(lr[0])

	rhs := strings.TrimSpace(lr[1])
	open := strings.Index(rhs, "(")
	if open < 0 || !strings.HasSuffix(rhs, ")") {
		return "", "", "", fmt.Errorf("aggregation %s isn't of the form name := fn(col)", agg)
	}

	fn = strings.TrimSpace(rhs[:open])
	col = strings.TrimSpace(rhs[open+1 : len(rhs)-1])

	if name == "" || fn == "" || col == "" {
		return "", "", "", fmt.Errorf("aggregation %s isn't of the form name := fn(col)", agg)
	}

	return name, fn, col, nil
}

func applyAgg(name, fn string, col *Col, keys []string, groups map[string][]int) (*Col, error) {
	if fn == "count" {
		out := make([]int, len(keys))
		for k := 0; k < len(keys); k++ {
			out[k] = len(groups[keys[k]])
		}

		return NewCol(name, out)
	}

	if col.DataType() != DTfloat && col.DataType() != DTint {
		return nil, fmt.Errorf("aggregation %s needs a numeric column, got %s", fn, col.DataType())
	}

	vals := col.AsFloat()
	out := make([]float64, len(keys))
	for k := 0; k < len(keys); k++ {
		var x []float64
		for _, row := range groups[keys[k]] {
			if !math.IsNaN(vals[row]) {
				x = append(x, vals[row])
			}
		}

		if x == nil {
			out[k] = math.NaN()
			continue
		}

		switch fn {
		case "sum":
			s := 0.0
			for _, xx := range x {
				s += xx
			}
			out[k] = s
		case "mean":
			out[k] = stat.Mean(x, nil)
		case "median":
			out[k] = median(x)
		case "var":
			out[k] = stat.Variance(x, nil)
		case "sdev":
			out[k] = math.Sqrt(stat.Variance(x, nil))
		case "min":
			sort.Float64s(x)
			out[k] = x[0]
		case "max":
			sort.Float64s(x)
			out[k] = x[len(x)-1]
		default:
			return nil, fmt.Errorf("unknown aggregation %s", fn)
		}
	}

	return NewCol(name, out)
}

// median is the conventional sample median: middle order statistic, or the
// mean of the two middle ones for an even-sized sample.
func median(x []float64) float64 {
	xs := make([]float64, len(x))
	copy(xs, x)
	sort.Float64s(xs)

	mid := len(xs) / 2
	if len(xs)%2 == 1 {
		return xs[mid]
	}

	return 0.5 * (xs[mid-1] + xs[mid])
}
