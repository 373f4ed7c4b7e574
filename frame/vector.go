package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DataTypes are the types of column data the package supports.
type DataTypes uint8

// values of DataTypes
const (
	DTunknown DataTypes = 0 + iota
	DTfloat
	DTint
	DTstring
)

func (dt DataTypes) String() string {
	switch dt {
	case DTfloat:
		return "DTfloat"
	case DTint:
		return "DTint"
	case DTstring:
		return "DTstring"
	default:
		return "DTunknown"
	}
}

// Vector holds a column's data. The backing slice is []float64, []int or []string
// according to VectorType.
type Vector struct {
	dt DataTypes

	data any
}

// NewVector creates a Vector from a slice, inferring the data type.
func NewVector(data any) (*Vector, error) {
	switch data.(type) {
	case []float64:
		return &Vector{dt: DTfloat, data: data}, nil
	case []int:
		return &Vector{dt: DTint, data: data}, nil
	case []string:
		return &Vector{dt: DTstring, data: data}, nil
	default:
		return nil, fmt.Errorf("cannot make Vector from %T", data)
	}
}

// MakeVector creates a zero-valued Vector of type dt with n elements.
func MakeVector(dt DataTypes, n int) *Vector {
	switch dt {
	case DTfloat:
		return &Vector{dt: dt, data: make([]float64, n)}
	case DTint:
		return &Vector{dt: dt, data: make([]int, n)}
	case DTstring:
		return &Vector{dt: dt, data: make([]string, n)}
	default:
		panic(fmt.Errorf("cannot make Vector with data type %s", dt))
	}
}

func (v *Vector) VectorType() DataTypes {
	return v.dt
}

func (v *Vector) Len() int {
	switch v.dt {
	case DTfloat:
		return len(v.data.([]float64))
	case DTint:
		return len(v.data.([]int))
	case DTstring:
		return len(v.data.([]string))
	}

	return 0
}

func (v *Vector) AsAny() any {
	return v.data
}

// AsFloat returns the data as []float64, converting if needed. Strings that
// don't parse become NaN.
func (v *Vector) AsFloat() []float64 {
	switch v.dt {
	case DTfloat:
		return v.data.([]float64)
	case DTint:
		xOut := make([]float64, v.Len())
		for ind, xx := range v.data.([]int) {
			xOut[ind] = float64(xx)
		}

		return xOut
	case DTstring:
		xOut := make([]float64, v.Len())
		for ind, xx := range v.data.([]string) {
			f, e := strconv.ParseFloat(strings.TrimSpace(xx), 64)
			if e != nil {
				f = math.NaN()
			}
			xOut[ind] = f
		}

		return xOut
	default:
		panic(fmt.Errorf("cannot convert in Vector.AsFloat"))
	}
}

// AsInt returns the data as []int, converting if needed. Floats truncate.
func (v *Vector) AsInt() []int {
	switch v.dt {
	case DTint:
		return v.data.([]int)
	case DTfloat:
		xOut := make([]int, v.Len())
		for ind, xx := range v.data.([]float64) {
			xOut[ind] = int(xx)
		}

		return xOut
	case DTstring:
		xOut := make([]int, v.Len())
		for ind, xx := range v.data.([]string) {
			i, e := strconv.ParseInt(strings.TrimSpace(xx), 10, 64)
			if e != nil {
				panic(fmt.Errorf("cannot convert %s in Vector.AsInt", xx))
			}
			xOut[ind] = int(i)
		}

		return xOut
	default:
		panic(fmt.Errorf("cannot convert in Vector.AsInt"))
	}
}

func (v *Vector) AsString() []string {
	switch v.dt {
	case DTstring:
		return v.data.([]string)
	case DTint:
		xOut := make([]string, v.Len())
		for ind, xx := range v.data.([]int) {
			xOut[ind] = strconv.Itoa(xx)
		}

		return xOut
	case DTfloat:
		xOut := make([]string, v.Len())
		for ind, xx := range v.data.([]float64) {
			xOut[ind] = strconv.FormatFloat(xx, 'f', -1, 64)
		}

		return xOut
	default:
		panic(fmt.Errorf("cannot convert in Vector.AsString"))
	}
}

func (v *Vector) Element(indx int) any {
	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	switch v.dt {
	case DTfloat:
		return v.data.([]float64)[indx]
	case DTint:
		return v.data.([]int)[indx]
	case DTstring:
		return v.data.([]string)[indx]
	default:
		panic(fmt.Errorf("error in Element"))
	}
}

func (v *Vector) SetFloat(val float64, indx int) {
	if v.dt != DTfloat {
		panic(fmt.Errorf("vector isn't DTfloat"))
	}

	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	v.data.([]float64)[indx] = val
}

func (v *Vector) SetInt(val, indx int) {
	if v.dt != DTint {
		panic(fmt.Errorf("vector isn't DTint"))
	}

	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	v.data.([]int)[indx] = val
}

func (v *Vector) SetString(val string, indx int) {
	if v.dt != DTstring {
		panic(fmt.Errorf("vector isn't DTstring"))
	}

	if indx < 0 || indx >= v.Len() {
		panic(fmt.Errorf("index out of range"))
	}

	v.data.([]string)[indx] = val
}

func (v *Vector) Copy() *Vector {
	out := MakeVector(v.dt, v.Len())
	switch v.dt {
	case DTfloat:
		copy(out.data.([]float64), v.data.([]float64))
	case DTint:
		copy(out.data.([]int), v.data.([]int))
	case DTstring:
		copy(out.data.([]string), v.data.([]string))
	}

	return out
}

// Subset returns a new Vector holding the elements at rows, in order.
func (v *Vector) Subset(rows []int) *Vector {
	out := MakeVector(v.dt, len(rows))
	for ind, row := range rows {
		switch v.dt {
		case DTfloat:
			out.SetFloat(v.data.([]float64)[row], ind)
		case DTint:
			out.SetInt(v.data.([]int)[row], ind)
		case DTstring:
			out.SetString(v.data.([]string)[row], ind)
		}
	}

	return out
}

// Less orders elements i and j by the vector's natural order.
func (v *Vector) Less(i, j int) bool {
	switch v.dt {
	case DTfloat:
		return v.data.([]float64)[i] < v.data.([]float64)[j]
	case DTint:
		return v.data.([]int)[i] < v.data.([]int)[j]
	case DTstring:
		return v.data.([]string)[i] < v.data.([]string)[j]
	default:
		panic(fmt.Errorf("unsupported data type in Less"))
	}
}

func (v *Vector) Swap(i, j int) {
	switch v.dt {
	case DTfloat:
		data := v.data.([]float64)
		data[i], data[j] = data[j], data[i]
	case DTint:
		data := v.data.([]int)
		data[i], data[j] = data[j], data[i]
	case DTstring:
		data := v.data.([]string)
		data[i], data[j] = data[j], data[i]
	default:
		panic(fmt.Errorf("unsupported data type in Swap"))
	}
}
