package stats

import (
	"github.com/guptarohit/asciigraph"

	"evalviz/internal/render"
)

// Metric accumulates one scalar over a frame series.
type Metric interface {
	Name() string
	Observe(t, v float64)
	Value() float64
	Reset()
}

// Mean averages observed values.
type Mean struct {
	name    string
	sum     float64
	samples int
}

func NewMean(name string) *Mean { return &Mean{name: name} }

func (m *Mean) Name() string { return m.name }

func (m *Mean) Observe(t, v float64) {
	m.sum += v
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}

// Peak tracks the maximum observed value.
type Peak struct {
	name string
	max  float64
}

func NewPeak(name string) *Peak { return &Peak{name: name} }

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(t, v float64) {
	if v > p.max {
		p.max = v
	}
}

func (p *Peak) Value() float64 { return p.max }
func (p *Peak) Reset()         { p.max = 0 }

// Summary condenses one render result into the numbers the stats
// command prints.
type Summary struct {
	Frames       int
	Steps        int
	Duration     float64
	MeanOps      float64
	PeakOps      float64
	PeakBindings float64
	PeakContexts float64
}

func Summarize(res *render.Result) Summary {
	meanOps := NewMean("ops")
	peakOps := NewPeak("ops")
	for i, ops := range res.OpsPerFrame {
		meanOps.Observe(res.Times[i], float64(ops))
		peakOps.Observe(res.Times[i], float64(ops))
	}

	peak := func(name string) float64 {
		p := NewPeak(name)
		for _, s := range res.Gauges[name] {
			p.Observe(s.T, s.V)
		}
		return p.Value()
	}

	return Summary{
		Frames:       len(res.Times),
		Steps:        len(res.Steps),
		Duration:     res.Duration,
		MeanOps:      meanOps.Value(),
		PeakOps:      peakOps.Value(),
		PeakBindings: peak("bindings"),
		PeakContexts: peak("contexts"),
	}
}

// OpsSeries returns draw ops per frame as a plottable series.
func OpsSeries(res *render.Result) []float64 {
	data := make([]float64, len(res.OpsPerFrame))
	for i, ops := range res.OpsPerFrame {
		data[i] = float64(ops)
	}
	return data
}

// GaugeSeries resamples a recorded gauge onto the frame clock with
// step-hold interpolation, so sparse gauges plot over the full timeline.
func GaugeSeries(res *render.Result, name string) []float64 {
	samples := res.Gauges[name]
	data := make([]float64, len(res.Times))
	cur := 0.0
	si := 0
	for i, t := range res.Times {
		for si < len(samples) && samples[si].T <= t {
			cur = samples[si].V
			si++
		}
		data[i] = cur
	}
	return data
}

// Plot renders a series as a terminal graph.
func Plot(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}
