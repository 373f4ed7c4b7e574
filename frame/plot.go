package frame

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"os/exec"
	"strings"
	"time"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
)

type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

type Opt func(plot *Plot) *Plot

func NewPlot(opt ...Opt) *Plot {
	fig := &grob.Fig{}
	lay := &grob.Layout{}
	fig.Layout = lay
	p := &Plot{Fig: fig, Lay: lay}
	for _, o := range opt {
		o(p)
	}

	return p
}

func WithWidth(w float64) Opt {
	if w < 0.0 {
		panic(fmt.Errorf("negative width"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Width = w
		return p
	}
}

func WithHeight(h float64) Opt {
	if h < 0.0 {
		panic(fmt.Errorf("negative height"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Height = h
		return p
	}
}

func WithTitle(title string) Opt {
	return func(p *Plot) *Plot { p.Lay.Title = &grob.LayoutTitle{Text: title}; return p }
}

func WithLegend(show bool) Opt {
	return func(p *Plot) *Plot {
		if show {
			p.Lay.Showlegend = grob.True
		} else {
			p.Lay.Showlegend = grob.False
		}

		return p
	}
}

func WithXlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}
		if p.Lay.Xaxis.Title == nil {
			p.Lay.Xaxis.Title = &grob.LayoutXaxisTitle{}
		}

		p.Lay.Xaxis.Title.Text = label
		return p
	}
}

func WithYlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}
		if p.Lay.Yaxis.Title == nil {
			p.Lay.Yaxis.Title = &grob.LayoutYaxisTitle{}
		}

		p.Lay.Yaxis.Title.Text = label
		return p
	}
}

// WithGroupedBars places bar series of the same category side by side.
func WithGroupedBars() Opt {
	return func(p *Plot) *Plot {
		p.Lay.Barmode = grob.BarBarmodeGroup
		return p
	}
}

// WithOverlaid overlays histogram series on shared axes.
func WithOverlaid() Opt {
	return func(p *Plot) *Plot {
		p.Lay.Barmode = grob.BarBarmodeOverlay
		return p
	}
}

// Bar adds a bar series of heights y over the categories x.
func (p *Plot) Bar(x []string, y []float64, seriesName string) error {
	if len(x) != len(y) {
		return fmt.Errorf("bar series %s: %d categories, %d heights", seriesName, len(x), len(y))
	}

	tr := &grob.Bar{Name: seriesName, X: x, Y: y}
	p.Fig.AddTraces(tr)

	return nil
}

// Histogram adds a histogram series of x. Opacity below 1 suits overlaid
// series.
func (p *Plot) Histogram(x []float64, seriesName string, opacity float64) error {
	if len(x) == 0 {
		return fmt.Errorf("histogram series %s is empty", seriesName)
	}

	tr := &grob.Histogram{Name: seriesName, X: x, Opacity: opacity}
	p.Fig.AddTraces(tr)

	return nil
}

func (p *Plot) PlotXY(x, y *Col, seriesName, color string) error {
	if x.DataType() != DTfloat || y.DataType() != DTfloat {
		return fmt.Errorf("xy plots require floats")
	}

	tr := &grob.Scatter{Name: seriesName, X: x.Data().AsFloat(), Y: y.Data().AsFloat(),
		Mode: grob.ScatterModeLines, Line: &grob.ScatterLine{Color: color}}

	p.Fig.AddTraces(tr)

	return nil
}

// Save writes the figure as an HTML file.
func (p *Plot) Save(fileName string) error {
	if !strings.HasSuffix(fileName, ".html") {
		fileName += ".html"
	}

	offline.ToHtml(p.Fig, fileName)

	return nil
}

// Show renders the figure and opens it with browser (xdg-open if empty).
// With no fileName, a temp file is used and removed after the browser loads.
func (p *Plot) Show(browser, fileName string) error {
	const nameLength = 8

	if browser == "" {
		browser = "xdg-open"
	}

	tmpFile := false
	if fileName == "" {
		fileName = tempFile("html", nameLength)
		tmpFile = true
	}

	offline.ToHtml(p.Fig, fileName)

	cmd := exec.Command(browser, fileName)
	if e := cmd.Start(); e != nil {
		return e
	}

	time.Sleep(time.Second) // need to pause while browser loads graph

	if tmpFile {
		if e := os.Remove(fileName); e != nil {
			return e
		}
	}

	return nil
}

// *********** Helpers ***********

// tempFile produces a random temp file name in the system's tmp location.
// The file has extension "ext". The file name begins with "tmp" has length 3 + length.
func tempFile(ext string, length int) string {
	dir := os.TempDir()
	if !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}

	return dir + "tmp" + randomLetters(length) + "." + ext
}

func randomLetters(length int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"

	randN := ""
	for ind := 0; ind < length; ind++ {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		randN += letters[n.Int64() : n.Int64()+1]
	}

	return randN
}
