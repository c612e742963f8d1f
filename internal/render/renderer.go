package render

import (
	"context"
	"errors"
	"fmt"
	"image"

	"evalviz/internal/raster"
	"evalviz/internal/scene"
)

// ErrEmptyTimeline indicates a scene that played no steps at all.
var ErrEmptyTimeline = errors.New("render: scene produced an empty timeline")

// Builder is a scene script: it populates a scene through a single
// construct entry point with no inputs beyond the scene itself.
type Builder interface {
	Name() string
	Construct(sc *scene.Scene)
}

// Config controls one rendering pass.
type Config struct {
	FPS    int
	Width  int
	Height int

	// Headless skips rasterization and collects only the timeline log
	// and per-frame op counts. Used by stats.
	Headless bool
}

func (c Config) validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("render: fps must be positive, got %d", c.FPS)
	}
	if !c.Headless && (c.Width < 64 || c.Height < 36) {
		return fmt.Errorf("render: frame geometry too small: %dx%d", c.Width, c.Height)
	}
	return nil
}

// Result is the outcome of one rendering pass.
type Result struct {
	Scene       string
	Frames      []*image.RGBA
	Times       []float64
	OpsPerFrame []int
	Steps       []scene.Step
	Gauges      map[string][]scene.Sample
	Duration    float64
}

// Renderer plays a scene script and collects its frames.
type Renderer struct {
	cfg Config
}

func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Run constructs the scene and samples every frame. The context cancels
// playback between frames. Extra sinks receive every frame after the
// collector, e.g. a per-frame SVG writer.
func (r *Renderer) Run(ctx context.Context, b Builder, extra ...scene.FrameSink) (*Result, error) {
	if err := r.cfg.validate(); err != nil {
		return nil, err
	}

	res := &Result{Scene: b.Name()}
	sink := &collector{cfg: r.cfg, res: res, extra: extra}
	if !r.cfg.Headless {
		sink.canvas = raster.New(r.cfg.Width, r.cfg.Height)
	}

	sc, err := scene.New(ctx, r.cfg.FPS, sink)
	if err != nil {
		return nil, err
	}

	b.Construct(sc)

	if err := sc.Err(); err != nil {
		return res, err
	}
	if sc.FrameCount() == 0 {
		return res, ErrEmptyTimeline
	}

	res.Steps = sc.Steps()
	res.Gauges = sc.Gauges()
	res.Duration = sc.Clock()
	return res, nil
}

// collector is the frame sink backing a rendering pass.
type collector struct {
	cfg    Config
	canvas *raster.Canvas
	res    *Result
	extra  []scene.FrameSink
}

func (c *collector) Frame(root *scene.Object, t float64, ops int) error {
	if c.canvas != nil {
		c.canvas.Reset()
		c.canvas.Draw(root)
		c.res.Frames = append(c.res.Frames, c.canvas.Snapshot())
	}
	c.res.Times = append(c.res.Times, t)
	c.res.OpsPerFrame = append(c.res.OpsPerFrame, ops)
	for _, s := range c.extra {
		if err := s.Frame(root, t, ops); err != nil {
			return err
		}
	}
	return nil
}
