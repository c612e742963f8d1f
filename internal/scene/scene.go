package scene

import (
	"context"
	"math"
)

// FrameSink receives every sampled frame of a playback. The root is the
// live object tree at time t; ops is the number of visible drawable
// leaves in it. Implementations must not retain root.
type FrameSink interface {
	Frame(root *Object, t float64, ops int) error
}

// Step records one timeline entry after it has played.
type Step struct {
	Index    int
	Start    float64
	Duration float64
	Anims    int
	Frames   int
}

// Sample is one point of a named gauge series.
type Sample struct {
	T float64
	V float64
}

// Scene owns the object tree and plays animation steps against a frame
// sink. Construction and playback are a single pass: each Play samples
// its frames immediately, so scene code always observes end states.
// A Scene is not safe for concurrent use.
type Scene struct {
	root   *Object
	fps    int
	sink   FrameSink
	ctx    context.Context
	clock  float64
	frames int
	steps  []Step
	gauges map[string][]Sample
	err    error
}

// New creates a scene playing at the given frame rate into sink.
func New(ctx context.Context, fps int, sink FrameSink) (*Scene, error) {
	if fps <= 0 {
		return nil, ErrBadFrameRate
	}
	if sink == nil {
		return nil, ErrNoSink
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &Scene{
		root:   NewGroup().WithName("root"),
		fps:    fps,
		sink:   sink,
		ctx:    ctx,
		gauges: make(map[string][]Sample),
	}, nil
}

func (s *Scene) Root() *Object { return s.root }
func (s *Scene) FPS() int      { return s.fps }

// Clock returns the timeline position in seconds.
func (s *Scene) Clock() float64 { return s.clock }

// FrameCount returns the number of frames emitted so far.
func (s *Scene) FrameCount() int { return s.frames }

// Steps returns the recorded timeline log.
func (s *Scene) Steps() []Step { return s.steps }

// Err returns the first playback error. Once set, further Play and Wait
// calls are no-ops.
func (s *Scene) Err() error { return s.err }

// Add attaches objects to the scene root.
func (s *Scene) Add(objs ...*Object) {
	for _, o := range objs {
		if o.parent == nil {
			s.root.Add(o)
		}
	}
}

// Remove detaches an object from the scene root.
func (s *Scene) Remove(o *Object) { o.Detach() }

// Gauge records a named time-series value at the current clock, e.g. the
// depth of the visualized context stack.
func (s *Scene) Gauge(name string, v float64) {
	s.gauges[name] = append(s.gauges[name], Sample{T: s.clock, V: v})
}

// Gauges returns all recorded series.
func (s *Scene) Gauges() map[string][]Sample { return s.gauges }

// Play runs the animations together over one second.
func (s *Scene) Play(anims ...Animation) { s.PlayFor(1.0, anims...) }

// PlayFor runs the animations together over d seconds. Targets not yet
// attached to the scene are added first.
func (s *Scene) PlayFor(d float64, anims ...Animation) {
	if s.err != nil {
		return
	}
	if d <= 0 {
		s.fail(ErrBadDuration)
		return
	}
	for _, a := range anims {
		if t := a.Target(); t != nil && t.parent == nil && t != s.root {
			s.root.Add(t)
		}
	}
	for _, a := range anims {
		a.Start()
	}
	if !s.emitFrames(d, anims) {
		return
	}
	for _, a := range anims {
		a.Finish()
	}
}

// Wait holds the current picture for d seconds.
func (s *Scene) Wait(d float64) {
	if s.err != nil {
		return
	}
	if d <= 0 {
		s.fail(ErrBadDuration)
		return
	}
	s.emitFrames(d, nil)
}

func (s *Scene) emitFrames(d float64, anims []Animation) bool {
	n := int(math.Round(d * float64(s.fps)))
	if n < 1 {
		n = 1
	}
	start := s.clock
	for f := 1; f <= n; f++ {
		select {
		case <-s.ctx.Done():
			s.fail(ErrCanceled)
			return false
		default:
		}
		p := float64(f) / float64(n)
		for _, a := range anims {
			a.Apply(p)
		}
		s.clock = start + d*p
		if err := s.sink.Frame(s.root, s.clock, s.root.visibleLeaves()); err != nil {
			s.fail(err)
			return false
		}
		s.frames++
	}
	s.steps = append(s.steps, Step{
		Index:    len(s.steps),
		Start:    start,
		Duration: d,
		Anims:    len(anims),
		Frames:   n,
	})
	return true
}

func (s *Scene) fail(err error) {
	s.err = &StepError{Step: len(s.steps), Time: s.clock, Wrapped: err}
}

// visibleLeaves counts drawable leaf nodes with nonzero opacity.
func (o *Object) visibleLeaves() int {
	if o.kind != KindGroup {
		if o.opacity > 0 && o.reveal > 0 {
			return 1
		}
		return 0
	}
	n := 0
	for _, c := range o.children {
		n += c.visibleLeaves()
	}
	return n
}
