package frame

import (
	"fmt"
	"sort"
	"strings"

	u "github.com/invertedv/utilities"
)

// DF is an in-memory dataframe: a set of equal-length named columns.
type DF struct {
	cols []*Col

	by        []*Col
	ascending bool
}

// NewDF creates a DF from cols. All columns must have the same length and
// distinct names.
func NewDF(cols ...*Col) (*DF, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns")
	}

	df := &DF{}
	for ind := 0; ind < len(cols); ind++ {
		if cols[ind].Len() != cols[0].Len() {
			return nil, fmt.Errorf("all columns must have same length")
		}

		if e := df.AppendColumn(cols[ind], false); e != nil {
			return nil, e
		}
	}

	return df, nil
}

func (df *DF) RowCount() int {
	return df.cols[0].Len()
}

func (df *DF) ColumnCount() int {
	return len(df.cols)
}

func (df *DF) ColumnNames() []string {
	names := make([]string, len(df.cols))
	for ind := 0; ind < len(df.cols); ind++ {
		names[ind] = df.cols[ind].Name("")
	}

	return names
}

// Column returns the column named colName.
func (df *DF) Column(colName string) (*Col, error) {
	pos := u.Position(colName, "", df.ColumnNames()...)
	if pos < 0 {
		return nil, fmt.Errorf("no column %s", colName)
	}

	return df.cols[pos], nil
}

// AppendColumn adds col to df. If replace is true, an existing column of the
// same name is dropped first.
func (df *DF) AppendColumn(col *Col, replace bool) error {
	if len(df.cols) > 0 && col.Len() != df.RowCount() {
		return fmt.Errorf("column %s has %d rows, need %d", col.Name(""), col.Len(), df.RowCount())
	}

	if u.Has(col.Name(""), "", df.ColumnNames()...) {
		if !replace {
			return fmt.Errorf("duplicate column name: %s", col.Name(""))
		}

		if e := df.DropColumns(col.Name("")); e != nil {
			return e
		}
	}

	df.cols = append(df.cols, col)

	return nil
}

// DropColumns removes colNames from df.
func (df *DF) DropColumns(colNames ...string) error {
	for _, nm := range colNames {
		pos := u.Position(nm, "", df.ColumnNames()...)
		if pos < 0 {
			return fmt.Errorf("no column %s", nm)
		}

		df.cols = append(df.cols[:pos], df.cols[pos+1:]...)
	}

	return nil
}

// KeepColumns returns a new DF restricted to keepColumns, in that order.
// The returned columns are copies.
func (df *DF) KeepColumns(keepColumns ...string) (*DF, error) {
	var cols []*Col
	for _, nm := range keepColumns {
		var (
			col *Col
			e   error
		)
		if col, e = df.Column(nm); e != nil {
			return nil, e
		}

		cols = append(cols, col.Copy())
	}

	return NewDF(cols...)
}

func (df *DF) Copy() *DF {
	var cols []*Col
	for ind := 0; ind < len(df.cols); ind++ {
		cols = append(cols, df.cols[ind].Copy())
	}

	out, e := NewDF(cols...)
	if e != nil {
		panic(e)
	}

	return out
}

// Subset returns a new DF holding the rows at the given indices, in order.
func (df *DF) Subset(rows []int) *DF {
	var cols []*Col
	for ind := 0; ind < len(df.cols); ind++ {
		cols = append(cols, &Col{name: df.cols[ind].Name(""), Vector: df.cols[ind].Subset(rows)})
	}

	out, e := NewDF(cols...)
	if e != nil {
		panic(e)
	}

	return out
}

// Where returns the rows where colName equals any of vals. vals must be
// comparable to the column's elements after the usual int/float widening.
func (df *DF) Where(colName string, vals ...any) (*DF, error) {
	var (
		col *Col
		e   error
	)
	if col, e = df.Column(colName); e != nil {
		return nil, e
	}

	var rows []int
	for row := 0; row < col.Len(); row++ {
		if equalElement(col.Element(row), vals...) {
			rows = append(rows, row)
		}
	}

	if rows == nil {
		return nil, fmt.Errorf("no rows where %s matches", colName)
	}

	return df.Subset(rows), nil
}

func equalElement(el any, vals ...any) bool {
	for _, val := range vals {
		switch ex := el.(type) {
		case float64:
			if f, ok := toFloat(val); ok && f == ex {
				return true
			}
		case int:
			if i, ok := toInt(val); ok && i == ex {
				return true
			}
		case string:
			if s, ok := val.(string); ok && s == ex {
				return true
			}
		}
	}

	return false
}

// ***************** sorting *****************

func (df *DF) Len() int {
	return df.RowCount()
}

func (df *DF) Less(i, j int) bool {
	for ind := 0; ind < len(df.by); ind++ {
		if df.by[ind].Less(i, j) {
			return df.ascending
		}

		if df.by[ind].Less(j, i) {
			return !df.ascending
		}

		// equal -- keep checking
	}

	return false
}

func (df *DF) Swap(i, j int) {
	for ind := 0; ind < len(df.cols); ind++ {
		df.cols[ind].Vector.Swap(i, j)
	}
}

// Sort sorts df in place on the comma-separated keys.
func (df *DF) Sort(ascending bool, keys string) error {
	df.by = nil
	df.ascending = ascending

	for _, nm := range strings.Split(keys, ",") {
		var (
			col *Col
			e   error
		)
		if col, e = df.Column(strings.TrimSpace(nm)); e != nil {
			return e
		}

		df.by = append(df.by, col)
	}

	sort.Stable(df)

	return nil
}

// ***************** printing *****************

const maxPrintRows = 20

func (df *DF) String() string {
	var cells [][]string
	for ind := 0; ind < len(df.cols); ind++ {
		col := []string{df.cols[ind].Name("")}
		asStr := df.cols[ind].AsString()
		for row := 0; row < len(asStr) && row < maxPrintRows; row++ {
			cell := asStr[row]
			if df.cols[ind].DataType() == DTfloat {
				cell = fmt.Sprintf("%0.4f", df.cols[ind].AsFloat()[row])
			}
			col = append(col, cell)
		}

		cells = append(cells, col)
	}

	out := prettyPrint(cells)
	if df.RowCount() > maxPrintRows {
		out += fmt.Sprintf("... %d rows total\n", df.RowCount())
	}

	return out
}

// prettyPrint lays out columns of cells (first element is the header) with
// right-aligned padding.
func prettyPrint(cells [][]string) string {
	widths := make([]int, len(cells))
	for ind, col := range cells {
		for _, cell := range col {
			if len(cell) > widths[ind] {
				widths[ind] = len(cell)
			}
		}
	}

	var sb strings.Builder
	for row := 0; row < len(cells[0]); row++ {
		for ind, col := range cells {
			sb.WriteString(fmt.Sprintf("%*s  ", widths[ind], col[row]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
