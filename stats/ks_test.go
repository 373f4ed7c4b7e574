package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKS_Identical(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7}

	r, e := KolmogorovSmirnov(x, x)
	assert.Nil(t, e)
	assert.Equal(t, 0.0, r.D)
	assert.Equal(t, 1.0, r.P)
}

func TestKS_Symmetric(t *testing.T) {
	x := []float64{1, 3, 5, 7, 9, 11}
	y := []float64{2, 2, 4, 8, 8, 10, 12}

	rxy, e := KolmogorovSmirnov(x, y)
	assert.Nil(t, e)

	ryx, e := KolmogorovSmirnov(y, x)
	assert.Nil(t, e)

	assert.Equal(t, rxy.D, ryx.D)
	assert.Equal(t, rxy.P, ryx.P)
}

func TestKS_Disjoint(t *testing.T) {
	var x, y []float64
	for ind := 0; ind < 50; ind++ {
		x = append(x, float64(ind))
		y = append(y, float64(ind+100))
	}

	r, e := KolmogorovSmirnov(x, y)
	assert.Nil(t, e)

	// non-overlapping supports: the ECDF gap reaches 1 -- exactly, never
	// above -- and the null is overwhelmingly rejected
	assert.Equal(t, 1.0, r.D)
	assert.Less(t, r.P, 1e-6)

	// same bound at other sample sizes
	for _, n := range []int{3, 7, 31} {
		r, e = KolmogorovSmirnov(x[:n], y)
		assert.Nil(t, e)
		assert.Equal(t, 1.0, r.D)
	}
}

func TestKS_HalfShifted(t *testing.T) {
	// y is x shifted by half its range
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	y := []float64{4, 5, 6, 7, 8, 9, 10, 11}

	r, e := KolmogorovSmirnov(x, y)
	assert.Nil(t, e)
	assert.InDelta(t, 0.5, r.D, 1e-10)
	assert.Greater(t, r.P, 0.0)
	assert.Less(t, r.P, 1.0)
}

func TestKS_DropsNaN(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	xn := []float64{1, math.NaN(), 2, 3, math.NaN(), 4}
	y := []float64{2, 3, 4, 5}

	r1, e := KolmogorovSmirnov(x, y)
	assert.Nil(t, e)

	r2, e := KolmogorovSmirnov(xn, y)
	assert.Nil(t, e)

	assert.Equal(t, r1.D, r2.D)
	assert.Equal(t, r1.P, r2.P)
	assert.Equal(t, 4, r2.N1)
}

func TestKS_Empty(t *testing.T) {
	_, e := KolmogorovSmirnov(nil, []float64{1})
	assert.NotNil(t, e)

	_, e = KolmogorovSmirnov([]float64{1}, []float64{math.NaN()})
	assert.NotNil(t, e)
}

func TestKS_String(t *testing.T) {
	r := &KSResult{D: 0.12345, P: 0.0001234}
	assert.Equal(t, "D=0.1235, p=0.000123", r.String())
}

func TestKSPvalue(t *testing.T) {
	assert.Equal(t, 1.0, ksPvalue(0, 10, 10))

	// p decreases in D
	p1 := ksPvalue(0.2, 100, 100)
	p2 := ksPvalue(0.4, 100, 100)
	assert.Greater(t, p1, p2)

	// and in the sample sizes
	p3 := ksPvalue(0.2, 1000, 1000)
	assert.Greater(t, p1, p3)

	// always a probability
	for _, d := range []float64{0.01, 0.1, 0.5, 0.9, 1.0} {
		p := ksPvalue(d, 25, 75)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}
