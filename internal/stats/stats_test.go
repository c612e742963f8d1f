package stats

import (
	"strings"
	"testing"

	"evalviz/internal/render"
	"evalviz/internal/scene"
)

func TestMean(t *testing.T) {
	m := NewMean("ops")
	if m.Value() != 0 {
		t.Errorf("empty mean should be 0, got %f", m.Value())
	}

	m.Observe(0, 2)
	m.Observe(0.1, 4)
	if m.Value() != 3 {
		t.Errorf("expected mean 3, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestPeak(t *testing.T) {
	p := NewPeak("contexts")
	p.Observe(0, 2)
	p.Observe(0.1, 5)
	p.Observe(0.2, 1)
	if p.Value() != 5 {
		t.Errorf("expected peak 5, got %f", p.Value())
	}

	p.Reset()
	if p.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", p.Value())
	}
}

func testResult() *render.Result {
	return &render.Result{
		Times:       []float64{0.1, 0.2, 0.3, 0.4},
		OpsPerFrame: []int{1, 3, 3, 1},
		Steps:       []scene.Step{{Index: 0, Duration: 0.4, Frames: 4}},
		Duration:    0.4,
		Gauges: map[string][]scene.Sample{
			"bindings": {{T: 0.1, V: 1}, {T: 0.3, V: 2}},
			"contexts": {{T: 0.2, V: 1}, {T: 0.4, V: 3}},
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testResult())

	if s.Frames != 4 || s.Steps != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.MeanOps != 2 {
		t.Errorf("expected mean ops 2, got %f", s.MeanOps)
	}
	if s.PeakOps != 3 {
		t.Errorf("expected peak ops 3, got %f", s.PeakOps)
	}
	if s.PeakBindings != 2 || s.PeakContexts != 3 {
		t.Errorf("unexpected gauge peaks: %+v", s)
	}
}

func TestOpsSeries(t *testing.T) {
	data := OpsSeries(testResult())
	want := []float64{1, 3, 3, 1}
	if len(data) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(data))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("point %d: got %f, want %f", i, data[i], want[i])
		}
	}
}

func TestGaugeSeriesStepHold(t *testing.T) {
	data := GaugeSeries(testResult(), "bindings")
	want := []float64{1, 1, 2, 2}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("point %d: got %f, want %f", i, data[i], want[i])
		}
	}
}

func TestGaugeSeriesMissing(t *testing.T) {
	data := GaugeSeries(testResult(), "nope")
	for i, v := range data {
		if v != 0 {
			t.Errorf("point %d: expected 0, got %f", i, v)
		}
	}
}

func TestPlot(t *testing.T) {
	out := Plot([]float64{1, 2, 3, 2, 1}, "draw ops")
	if !strings.Contains(out, "draw ops") {
		t.Error("expected caption in plot output")
	}
	if len(strings.Split(out, "\n")) < 2 {
		t.Error("expected multi-line plot")
	}
}
