package scene

// Animation mutates one object over the course of a single timeline step.
// Start captures the object's state when the step begins, Apply moves it
// to linear progress p, and Finish pins the end state exactly.
type Animation interface {
	Target() *Object
	Start()
	Apply(p float64)
	Finish()
}

// tween is the shared animation machinery: pre mutates the object into
// its start state, post into its end state; frames interpolate node-wise
// between the two captures through the rate function.
type tween struct {
	obj        *Object
	pre, post  func(o *Object)
	after      func(o *Object)
	rate       Rate
	start, end []nodeState
}

func newTween(o *Object) *tween {
	return &tween{obj: o, rate: Smooth}
}

func (t *tween) Target() *Object { return t.obj }

func (t *tween) Start() {
	orig := t.obj.capture(nil)
	if t.post != nil {
		t.post(t.obj)
	}
	t.end = t.obj.capture(nil)
	t.obj.restoreLerp(orig, orig, 0, 0)
	if t.pre != nil {
		t.pre(t.obj)
	}
	t.start = t.obj.capture(nil)
}

func (t *tween) Apply(p float64) {
	t.obj.restoreLerp(t.start, t.end, t.rate(p), 0)
}

func (t *tween) Finish() {
	t.obj.restoreLerp(t.start, t.end, t.rate(1), 0)
	if t.after != nil {
		t.after(t.obj)
	}
}

// FadeIn fades an object up to its current opacity.
func FadeIn(o *Object) Animation {
	t := newTween(o)
	t.pre = func(o *Object) { o.SetOpacity(0) }
	return t
}

// FadeInFrom fades in while drifting back from an offset in dir.
func FadeInFrom(o *Object, dir Vec) Animation {
	t := newTween(o)
	t.pre = func(o *Object) { o.SetOpacity(0).Shift(dir.Scale(0.4)) }
	return t
}

// FadeOut fades the object away and detaches it.
func FadeOut(o *Object) Animation {
	t := newTween(o)
	t.post = func(o *Object) { o.SetOpacity(0) }
	t.after = func(o *Object) { o.Detach() }
	return t
}

// FadeOutShift fades away while drifting in dir, then detaches.
func FadeOutShift(o *Object, dir Vec) Animation {
	t := newTween(o)
	t.post = func(o *Object) { o.SetOpacity(0).Shift(dir.Scale(0.4)) }
	t.after = func(o *Object) { o.Detach() }
	return t
}

// Write reveals text progressively, character by character.
func Write(o *Object) Animation {
	t := newTween(o)
	t.pre = func(o *Object) { o.SetReveal(0) }
	t.post = func(o *Object) { o.SetReveal(1) }
	return t
}

// ShowCreation strokes a shape progressively. Same mechanics as Write.
func ShowCreation(o *Object) Animation { return Write(o) }

// Uncreate unstrokes a shape and detaches it.
func Uncreate(o *Object) Animation {
	t := newTween(o)
	t.post = func(o *Object) { o.SetReveal(0) }
	t.after = func(o *Object) { o.Detach() }
	return t
}

// Move tweens the subtree's center to dest.
func Move(o *Object, dest Vec) Animation {
	t := newTween(o)
	t.post = func(o *Object) { o.MoveTo(dest) }
	return t
}

// ShiftBy tweens the subtree by a displacement.
func ShiftBy(o *Object, d Vec) Animation {
	t := newTween(o)
	t.post = func(o *Object) { o.Shift(d) }
	return t
}

// Animate tweens the object toward the state produced by applying f to
// it. This is the general form behind move-and-scale choreography.
func Animate(o *Object, f func(o *Object)) Animation {
	t := newTween(o)
	t.post = f
	return t
}

// Indicate pulses the object: a brief scale-up and flash toward yellow,
// returning to the original state.
func Indicate(o *Object) Animation {
	t := newTween(o)
	t.post = func(o *Object) {
		o.ScaleBy(1.2)
		o.SetColor(Yellow)
	}
	t.rate = ThereAndBack
	return t
}

// ShowCreationThenFadeOut strokes the object in, fades it out, and
// detaches it. Used for transient highlight rectangles.
type showThenFade struct {
	obj     *Object
	opacity float64
}

func ShowCreationThenFadeOut(o *Object) Animation {
	return &showThenFade{obj: o}
}

func (a *showThenFade) Target() *Object { return a.obj }

func (a *showThenFade) Start() {
	a.opacity = a.obj.Opacity()
	a.obj.SetReveal(0)
}

func (a *showThenFade) Apply(p float64) {
	p = Smooth(p)
	if p < 0.5 {
		a.obj.SetReveal(2 * p)
		a.obj.SetOpacity(a.opacity)
		return
	}
	a.obj.SetReveal(1)
	a.obj.SetOpacity(a.opacity * (1 - 2*(p-0.5)))
}

func (a *showThenFade) Finish() {
	a.obj.SetOpacity(0)
	a.obj.Detach()
}

// Transform morphs an object into a replacement: the old content fades
// out while drifting toward the replacement's position, the new content
// fades in, and on finish the object adopts the replacement's payload.
// The replacement itself is never attached to the scene.
type transform struct {
	obj, into    *Object
	opacity      float64
	startC, endC Vec
	swapped      bool
}

func Transform(o, into *Object) Animation {
	return &transform{obj: o, into: into}
}

func (a *transform) Target() *Object { return a.obj }

func (a *transform) Start() {
	a.opacity = a.obj.Opacity()
	a.startC = a.obj.Pos()
	a.endC = a.into.Pos()
}

func (a *transform) swap() {
	into := a.into.Clone()
	a.obj.kind = into.kind
	a.obj.text = into.text
	a.obj.w, a.obj.h = into.w, into.h
	a.obj.scale = into.scale
	a.obj.color = into.color
	a.obj.from, a.obj.to = into.from, into.to
	a.obj.pos = into.pos
	a.obj.children = a.obj.children[:0]
	for _, c := range into.children {
		c.parent = a.obj
		a.obj.children = append(a.obj.children, c)
	}
	a.swapped = true
}

func (a *transform) Apply(p float64) {
	p = Smooth(p)
	if p < 0.5 {
		a.obj.SetOpacity(a.opacity * (1 - 2*p))
	} else {
		if !a.swapped {
			a.swap()
		}
		a.obj.SetOpacity(a.opacity * 2 * (p - 0.5))
	}
	a.obj.MoveTo(a.startC.Lerp(a.endC, p))
}

func (a *transform) Finish() {
	if !a.swapped {
		a.swap()
	}
	a.obj.SetOpacity(a.opacity)
	a.obj.MoveTo(a.endC)
}
