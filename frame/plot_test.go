package frame

import (
	"os"
	"path/filepath"
	"testing"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/stretchr/testify/assert"
)

func TestPlot_Options(t *testing.T) {
	p := NewPlot(WithTitle("t"), WithWidth(640), WithHeight(480),
		WithXlabel("x"), WithYlabel("y"), WithLegend(true), WithGroupedBars())

	assert.Equal(t, "t", p.Lay.Title.Text)
	assert.Equal(t, 640.0, p.Lay.Width)
	assert.Equal(t, 480.0, p.Lay.Height)
	assert.Equal(t, "x", p.Lay.Xaxis.Title.Text)
	assert.Equal(t, "y", p.Lay.Yaxis.Title.Text)
	assert.Equal(t, grob.BarBarmodeGroup, p.Lay.Barmode)

	p = NewPlot(WithOverlaid())
	assert.Equal(t, grob.BarBarmodeOverlay, p.Lay.Barmode)
}

func TestPlot_Traces(t *testing.T) {
	p := NewPlot(WithGroupedBars())

	assert.Nil(t, p.Bar([]string{"a", "b"}, []float64{0.25, 0.75}, "s1"))
	assert.Nil(t, p.Histogram([]float64{1, 2, 3}, "s2", 0.6))
	assert.Equal(t, 2, len(p.Fig.Data))

	// mismatched bar inputs
	assert.NotNil(t, p.Bar([]string{"a"}, []float64{1, 2}, "bad"))

	// empty histogram sample
	assert.NotNil(t, p.Histogram(nil, "bad", 0.6))
}

func TestPlot_Save(t *testing.T) {
	p := NewPlot(WithTitle("t"))
	assert.Nil(t, p.Bar([]string{"a"}, []float64{1}, "s"))

	fileName := filepath.Join(t.TempDir(), "fig")
	assert.Nil(t, p.Save(fileName))

	_, e := os.Stat(fileName + ".html")
	assert.Nil(t, e)
}
