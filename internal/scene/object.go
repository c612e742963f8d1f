package scene

// Kind discriminates the renderable node types.
type Kind int

const (
	KindGroup Kind = iota
	KindText
	KindRect
	KindLine
)

// Text cell metrics in scene units at scale 1. Derived from the raster
// font's aspect ratio so layout and ink agree.
const (
	CharWidth  = 0.15
	CharHeight = 0.30
)

// Object is a node of the renderable tree: a text label, a stroked
// rectangle, a line segment, or a group of named children. Groups have no
// geometry of their own; their bounds are the union of their children.
type Object struct {
	kind Kind
	name string

	pos      Vec // center, for text and rect
	w, h     float64
	from, to Vec // line endpoints
	text     string
	color    Color
	opacity  float64
	scale    float64
	reveal   float64 // fraction drawn, used by Write/ShowCreation

	parent   *Object
	children []*Object
}

func newObject(kind Kind) *Object {
	return &Object{
		kind:    kind,
		color:   White,
		opacity: 1,
		scale:   1,
		reveal:  1,
	}
}

// NewText creates a monospace text label centered at the origin.
func NewText(s string) *Object {
	o := newObject(KindText)
	o.text = s
	return o
}

// NewRect creates a stroked rectangle of the given size centered at the
// origin.
func NewRect(w, h float64) *Object {
	o := newObject(KindRect)
	o.w, o.h = w, h
	return o
}

// NewLine creates a line segment between two points.
func NewLine(from, to Vec) *Object {
	o := newObject(KindLine)
	o.from, o.to = from, to
	return o
}

// NewGroup creates a group owning the given children in draw order.
func NewGroup(children ...*Object) *Object {
	o := newObject(KindGroup)
	o.Add(children...)
	return o
}

func (o *Object) Kind() Kind   { return o.kind }
func (o *Object) Name() string { return o.name }
func (o *Object) Text() string { return o.text }

// WithName sets the lookup name and returns the object, so nodes can be
// named inline while assembling a group.
func (o *Object) WithName(name string) *Object {
	o.name = name
	return o
}

// Add appends children, reparenting them to o.
func (o *Object) Add(children ...*Object) *Object {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = o
		o.children = append(o.children, c)
	}
	return o
}

// Remove detaches a direct child. Detached objects are never drawn.
func (o *Object) Remove(c *Object) {
	for i, child := range o.children {
		if child == c {
			o.children = append(o.children[:i], o.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// RemoveNamed detaches the direct child with the given name, if present.
func (o *Object) RemoveNamed(name string) {
	for _, c := range o.children {
		if c.name == name {
			o.Remove(c)
			return
		}
	}
}

// Detach removes the object from its parent.
func (o *Object) Detach() {
	if o.parent != nil {
		o.parent.Remove(o)
	}
}

// Child returns the direct child with the given name, or nil.
func (o *Object) Child(name string) *Object {
	for _, c := range o.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// At walks a path of child names and returns the node at the end, or nil
// if any segment is missing.
func (o *Object) At(path ...string) *Object {
	cur := o
	for _, name := range path {
		if cur = cur.Child(name); cur == nil {
			return nil
		}
	}
	return cur
}

// Children returns the child slice in draw order. Callers must not mutate
// it; use Add and Remove.
func (o *Object) Children() []*Object { return o.children }

// Clone deep-copies the subtree. The copy is detached.
func (o *Object) Clone() *Object {
	c := *o
	c.parent = nil
	c.children = make([]*Object, 0, len(o.children))
	for _, child := range o.children {
		cc := child.Clone()
		cc.parent = &c
		c.children = append(c.children, cc)
	}
	return &c
}

func (o *Object) Opacity() float64 { return o.opacity }

// SetOpacity sets the opacity of the subtree.
func (o *Object) SetOpacity(a float64) *Object {
	o.opacity = a
	for _, c := range o.children {
		c.SetOpacity(a)
	}
	return o
}

func (o *Object) Color() Color { return o.color }

// SetColor recolors the subtree.
func (o *Object) SetColor(c Color) *Object {
	o.color = c
	for _, child := range o.children {
		child.SetColor(c)
	}
	return o
}

func (o *Object) Reveal() float64 { return o.reveal }

// SetReveal sets the drawn fraction of the subtree.
func (o *Object) SetReveal(r float64) *Object {
	o.reveal = r
	for _, c := range o.children {
		c.SetReveal(r)
	}
	return o
}

// SetText replaces a text node's content.
func (o *Object) SetText(s string) *Object {
	o.text = s
	return o
}

func (o *Object) ScaleFactor() float64 { return o.scale }
func (o *Object) LineEnds() (Vec, Vec) { return o.from, o.to }
func (o *Object) Size() (float64, float64) {
	return o.w, o.h
}

// Bounds computes the axis-aligned box of the subtree in scene units.
// Empty groups collapse to a point at their position.
func (o *Object) Bounds() Bounds {
	switch o.kind {
	case KindText:
		w := float64(len(o.text)) * CharWidth * o.scale
		h := CharHeight * o.scale
		return Bounds{
			Min: Vec{o.pos.X - w/2, o.pos.Y - h/2},
			Max: Vec{o.pos.X + w/2, o.pos.Y + h/2},
		}
	case KindRect:
		return Bounds{
			Min: Vec{o.pos.X - o.w/2, o.pos.Y - o.h/2},
			Max: Vec{o.pos.X + o.w/2, o.pos.Y + o.h/2},
		}
	case KindLine:
		b := Bounds{Min: o.from, Max: o.from}
		return b.Union(Bounds{Min: o.to, Max: o.to})
	default:
		if len(o.children) == 0 {
			return Bounds{Min: o.pos, Max: o.pos}
		}
		b := o.children[0].Bounds()
		for _, c := range o.children[1:] {
			b = b.Union(c.Bounds())
		}
		return b
	}
}

// Pos returns the center of the subtree's bounds.
func (o *Object) Pos() Vec { return o.Bounds().Center() }

// Shift translates the subtree by d.
func (o *Object) Shift(d Vec) *Object {
	o.pos = o.pos.Add(d)
	o.from = o.from.Add(d)
	o.to = o.to.Add(d)
	for _, c := range o.children {
		c.Shift(d)
	}
	return o
}

// MoveTo places the subtree's bounds center at p.
func (o *Object) MoveTo(p Vec) *Object {
	return o.Shift(p.Sub(o.Pos()))
}

// NextTo places o adjacent to ref in direction dir, centered along the
// perpendicular axis, with the given gap between the two bounds.
func (o *Object) NextTo(ref *Object, dir Vec, gap float64) *Object {
	rb := ref.Bounds()
	ob := o.Bounds()
	target := rb.Center()
	if dir.X != 0 {
		target.X = rb.Corner(dir).X + dir.X*(gap+ob.Width()/2)
	}
	if dir.Y != 0 {
		target.Y = rb.Corner(dir).Y + dir.Y*(gap+ob.Height()/2)
	}
	return o.MoveTo(target)
}

// NextToAligned is NextTo with the perpendicular axis aligned to an edge
// of ref instead of its center: align Left keeps left edges flush.
func (o *Object) NextToAligned(ref *Object, dir, align Vec, gap float64) *Object {
	o.NextTo(ref, dir, gap)
	rb := ref.Bounds()
	ob := o.Bounds()
	var d Vec
	if align.X < 0 {
		d.X = rb.Min.X - ob.Min.X
	} else if align.X > 0 {
		d.X = rb.Max.X - ob.Max.X
	}
	if align.Y < 0 {
		d.Y = rb.Min.Y - ob.Min.Y
	} else if align.Y > 0 {
		d.Y = rb.Max.Y - ob.Max.Y
	}
	return o.Shift(d)
}

// AlignWith moves o so that its edge in the given direction coincides
// with ref's, leaving the other axis centered on ref.
func (o *Object) AlignWith(ref *Object, edge Vec) *Object {
	o.MoveTo(ref.Pos())
	rb := ref.Bounds()
	ob := o.Bounds()
	var d Vec
	if edge.X < 0 {
		d.X = rb.Min.X - ob.Min.X
	} else if edge.X > 0 {
		d.X = rb.Max.X - ob.Max.X
	}
	if edge.Y < 0 {
		d.Y = rb.Min.Y - ob.Min.Y
	} else if edge.Y > 0 {
		d.Y = rb.Max.Y - ob.Max.Y
	}
	return o.Shift(d)
}

// ToCorner tucks the subtree into a corner of the frame with a margin.
func (o *Object) ToCorner(dir Vec, margin float64) *Object {
	b := o.Bounds()
	target := o.Pos()
	if dir.X != 0 {
		target.X = dir.X*(FrameWidth/2-margin) - dir.X*b.Width()/2
	}
	if dir.Y != 0 {
		target.Y = dir.Y*(FrameHeight/2-margin) - dir.Y*b.Height()/2
	}
	return o.MoveTo(target)
}

// Center moves the subtree to the frame origin.
func (o *Object) Center() *Object { return o.MoveTo(Origin) }

// ScaleBy scales the subtree about its bounds center.
func (o *Object) ScaleBy(f float64) *Object {
	o.scaleAbout(o.Pos(), f)
	return o
}

func (o *Object) scaleAbout(about Vec, f float64) {
	o.pos = about.Add(o.pos.Sub(about).Scale(f))
	o.from = about.Add(o.from.Sub(about).Scale(f))
	o.to = about.Add(o.to.Sub(about).Scale(f))
	o.scale *= f
	if o.kind == KindRect {
		o.w *= f
		o.h *= f
	}
	for _, c := range o.children {
		c.scaleAbout(about, f)
	}
}

// SurroundRect builds a rectangle fitted around the target's bounds with
// padding on each side.
func SurroundRect(target *Object, pad float64, c Color) *Object {
	b := target.Bounds()
	r := NewRect(b.Width()+2*pad, b.Height()+2*pad)
	r.color = c
	return r.MoveTo(b.Center())
}

// nodeState is a flat snapshot of one node's mutable visual state, used
// by tweens to interpolate between a captured start and a computed end.
type nodeState struct {
	pos, from, to   Vec
	w, h, scale     float64
	opacity, reveal float64
	color           Color
}

func (o *Object) capture(into []nodeState) []nodeState {
	into = append(into, nodeState{
		pos: o.pos, from: o.from, to: o.to,
		w: o.w, h: o.h, scale: o.scale,
		opacity: o.opacity, reveal: o.reveal,
		color: o.color,
	})
	for _, c := range o.children {
		into = c.capture(into)
	}
	return into
}

func (o *Object) restoreLerp(a, b []nodeState, p float64, i int) int {
	sa, sb := a[i], b[i]
	o.pos = sa.pos.Lerp(sb.pos, p)
	o.from = sa.from.Lerp(sb.from, p)
	o.to = sa.to.Lerp(sb.to, p)
	o.w = sa.w + (sb.w-sa.w)*p
	o.h = sa.h + (sb.h-sa.h)*p
	o.scale = sa.scale + (sb.scale-sa.scale)*p
	o.opacity = sa.opacity + (sb.opacity-sa.opacity)*p
	o.reveal = sa.reveal + (sb.reveal-sa.reveal)*p
	o.color = sa.color.Lerp(sb.color, p)
	i++
	for _, c := range o.children {
		i = c.restoreLerp(a, b, p, i)
	}
	return i
}
