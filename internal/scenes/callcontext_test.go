package scenes

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"evalviz/internal/scene"
)

// nullSink discards frames; context tests only care about tree state.
type nullSink struct{}

func (nullSink) Frame(root *scene.Object, t float64, ops int) error { return nil }

var _ = Describe("CallContext", func() {
	var sc *scene.Scene

	BeforeEach(func() {
		var err error
		sc, err = scene.New(context.Background(), 10, nullSink{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts with a title and no bindings", func() {
		ctx := NewCallContextAt(sc, scene.Vec{Y: 2})
		Expect(ctx.Len()).To(Equal(0))
		Expect(ctx.Group().Child("title")).NotTo(BeNil())
	})

	It("collects bindings as name/eq/val associations", func() {
		expr := scene.NewText("fact 3")
		sc.Add(expr)

		ctx := NewCallContextAt(sc, scene.Vec{Y: 2})
		ctx.AddWith("n", valueText(3, expr), expr)

		Expect(ctx.Len()).To(Equal(1))
		assoc := ctx.Group().Children()[1]
		Expect(assoc.Child("name").Text()).To(Equal("n"))
		Expect(assoc.Child("val").Text()).To(Equal("3"))
		Expect(sc.Err()).NotTo(HaveOccurred())
	})

	It("records the bindings gauge on add and pop", func() {
		expr := scene.NewText("x")
		sc.Add(expr)

		ctx := NewCallContextAt(sc, scene.Vec{Y: 2})
		ctx.AddWith("a", valueText(1, expr), expr)
		ctx.AddWith("b", valueText(2, expr), expr)
		ctx.Pop()

		samples := sc.Gauges()["bindings"]
		Expect(samples).To(HaveLen(3))
		Expect(samples[0].V).To(Equal(1.0))
		Expect(samples[1].V).To(Equal(2.0))
		Expect(samples[2].V).To(Equal(1.0))
	})

	It("pops down to the title and no further", func() {
		expr := scene.NewText("x")
		sc.Add(expr)

		ctx := NewCallContextAt(sc, scene.Vec{Y: 2})
		ctx.AddWith("a", valueText(1, expr), expr)
		ctx.Pop()
		ctx.Pop() // no binding left, must be a no-op

		Expect(ctx.Len()).To(Equal(0))
		Expect(sc.Err()).NotTo(HaveOccurred())
	})

	It("replaces an occurrence by the bound value", func() {
		expr := scene.NewText("fact 3")
		sc.Add(expr)
		occ := scene.NewText("n").MoveTo(scene.Vec{X: 1, Y: -1})
		sc.Add(occ)

		ctx := NewCallContextAt(sc, scene.Vec{Y: 2})
		ctx.AddWith("n", valueText(3, expr), expr)
		ctx.ReplaceOccurrence(-1, occ)

		Expect(occ.Text()).To(Equal("3"))
		Expect(occ.Color()).To(Equal(scene.White))
		Expect(sc.Err()).NotTo(HaveOccurred())
	})

	It("removes the whole context on fade out", func() {
		ctx := NewCallContextAt(sc, scene.Vec{Y: 2})
		ctx.FadeOut()

		found := false
		for _, c := range sc.Root().Children() {
			if c == ctx.Group() {
				found = true
			}
		}
		Expect(found).To(BeFalse())
		Expect(sc.Err()).NotTo(HaveOccurred())
	})
})
