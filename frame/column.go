package frame

import (
	"fmt"
)

// Col is a named Vector, the column type of DF.
type Col struct {
	name string

	*Vector
}

// NewCol creates a Col from a slice ([]float64, []int or []string).
func NewCol(name string, data any) (*Col, error) {
	if v, ok := data.(*Vector); ok {
		return &Col{name: name, Vector: v}, nil
	}

	var (
		v *Vector
		e error
	)
	if v, e = NewVector(data); e != nil {
		return nil, e
	}

	return &Col{name: name, Vector: v}, nil
}

// Name returns the column name, renaming it first if renameTo is non-empty.
func (c *Col) Name(renameTo string) string {
	if renameTo != "" {
		c.name = renameTo
	}

	return c.name
}

func (c *Col) DataType() DataTypes {
	return c.Vector.VectorType()
}

func (c *Col) Data() *Vector {
	return c.Vector
}

func (c *Col) Copy() *Col {
	return &Col{name: c.name, Vector: c.Vector.Copy()}
}

func (c *Col) String() string {
	return fmt.Sprintf("column: %s\ntype: %s\nrows: %d", c.name, c.DataType(), c.Len())
}
