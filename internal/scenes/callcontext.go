package scenes

import (
	"fmt"

	"evalviz/internal/scene"
)

// CallContext is a renderable list of name=value bindings representing
// the evaluation context of one function call. The list grows upward: a
// new binding appears at the bottom while older entries shift up, so the
// most recent binding always sits closest to the evaluated expression.
type CallContext struct {
	sc      *scene.Scene
	group   *scene.Object // title + associations, in insertion order
	entries []*scene.Object
}

// NewCallContext fades in a context titled "Contexte :" above origin.
func NewCallContext(sc *scene.Scene, origin *scene.Object) *CallContext {
	title := scene.NewText("Contexte :").SetColor(scene.Gray)
	title.NextToAligned(origin, scene.Up, scene.Left, 0.6)
	return newCallContext(sc, title)
}

// NewCallContextAt places the context title at an explicit position,
// used when several contexts are stacked on screen at once.
func NewCallContextAt(sc *scene.Scene, pos scene.Vec) *CallContext {
	title := scene.NewText("Contexte :").SetColor(scene.Gray)
	title.MoveTo(pos)
	return newCallContext(sc, title)
}

func newCallContext(sc *scene.Scene, title *scene.Object) *CallContext {
	c := &CallContext{
		sc:      sc,
		group:   scene.NewGroup(title.WithName("title")),
		entries: []*scene.Object{title},
	}
	sc.Add(c.group)
	sc.Play(scene.FadeInFrom(c.group, scene.Down))
	return c
}

// Group returns the whole renderable context, title included.
func (c *CallContext) Group() *scene.Object { return c.group }

// Len returns the number of bindings (the title is not counted).
func (c *CallContext) Len() int { return len(c.entries) - 1 }

// Add appends a name=value binding. The value object is highlighted,
// then a gray copy of it travels into the context while older entries
// shift up to make room.
func (c *CallContext) Add(name string, val *scene.Object) {
	c.AddWith(name, val, nil)
}

// AddWith is Add with an explicit highlight target (defaults to the
// value) and extra animations played along the final step, e.g. fading
// out the part of the expression the binding came from.
func (c *CallContext) AddWith(name string, val *scene.Object, highlight *scene.Object, extra ...scene.Animation) {
	if highlight == nil {
		highlight = val
	}
	c.sc.Play(scene.Indicate(highlight))

	last := c.entries[len(c.entries)-1]
	nameObj := scene.NewText(name).SetColor(scene.Gray)
	nameObj.AlignWith(last, scene.Left)
	eq := scene.NewText("=").SetColor(scene.Gray)
	eq.NextTo(nameObj, scene.Right, 0.12)

	valCopy := val.Clone()
	slot := valCopy.Clone().NextTo(eq, scene.Right, 0.12).Pos()

	// The three binding parts animate individually (Play attaches them),
	// then regroup into one association under the context.
	anims := []scene.Animation{
		scene.ShiftBy(c.group, scene.Up.Scale(0.5)),
		scene.FadeInFrom(nameObj, scene.Down),
		scene.FadeInFrom(eq, scene.Down),
		scene.Animate(valCopy, func(o *scene.Object) {
			o.MoveTo(slot)
			o.SetColor(scene.Gray)
		}),
	}
	c.sc.Play(append(anims, extra...)...)

	nameObj.Detach()
	eq.Detach()
	valCopy.Detach()
	assoc := scene.NewGroup(
		nameObj.WithName("name"),
		eq.WithName("eq"),
		valCopy.WithName("val"),
	)
	c.group.Add(assoc)
	c.entries = append(c.entries, assoc)
	c.sc.Gauge("bindings", float64(c.Len()))
}

// entry resolves an index the way the original did: negative indexes
// count from the end, and index 0 is the title line.
func (c *CallContext) entry(index int) *scene.Object {
	if index < 0 {
		index += len(c.entries)
	}
	return c.entries[index]
}

// ReplaceOccurrence substitutes an on-screen occurrence of a name by the
// value stored in the indexed binding, first highlighting the link
// between the two with transient green rectangles and a connecting line.
func (c *CallContext) ReplaceOccurrence(index int, occurrence *scene.Object) {
	entry := c.entry(index)

	entryRect := scene.SurroundRect(entry, 0.08, scene.Green)
	occRect := scene.SurroundRect(occurrence, 0.08, scene.Green)
	link := scene.NewLine(
		entryRect.Bounds().Corner(scene.Down),
		occRect.Bounds().Corner(scene.Up),
	).SetColor(scene.Green)

	c.sc.Play(
		scene.ShowCreationThenFadeOut(entryRect),
		scene.ShowCreationThenFadeOut(occRect),
		scene.ShowCreationThenFadeOut(link),
	)

	val := entry.Child("val")
	repl := val.Clone().MoveTo(occurrence.Pos()).SetColor(scene.White)
	c.sc.Play(scene.Transform(occurrence, repl))
}

// Pop fades out the most recent binding, as when a local definition
// leaves scope.
func (c *CallContext) Pop() {
	if c.Len() == 0 {
		return
	}
	last := c.entries[len(c.entries)-1]
	c.entries = c.entries[:len(c.entries)-1]
	c.sc.Play(
		scene.FadeOutShift(last, scene.Up),
		scene.ShiftBy(c.group, scene.Down.Scale(0.5)),
	)
	c.sc.Gauge("bindings", float64(c.Len()))
}

// FadeOut removes the whole context from the scene.
func (c *CallContext) FadeOut() {
	c.sc.Play(scene.FadeOut(c.group))
}

// valueText builds a small standalone value label positioned at ref,
// ready to be bound into a context.
func valueText(v int, ref *scene.Object) *scene.Object {
	t := scene.NewText(fmt.Sprintf("%d", v))
	if ref != nil {
		t.MoveTo(ref.Pos())
	}
	return t
}
