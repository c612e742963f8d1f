package scenes

import (
	"context"
	"image"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"evalviz/internal/render"
	"evalviz/internal/scene"
)

func renderScene(name string, headless bool) *render.Result {
	reg := NewRegistry()
	b, err := reg.Get(name)
	Expect(err).NotTo(HaveOccurred())

	cfg := render.Config{FPS: 10, Width: 320, Height: 180, Headless: headless}
	res, err := render.New(cfg).Run(context.Background(), b)
	Expect(err).NotTo(HaveOccurred())
	return res
}

var _ = Describe("Registry", func() {
	It("lists the built-in scenes in order", func() {
		Expect(NewRegistry().List()).To(Equal([]string{"Fact", "SquareOfPred"}))
	})

	It("resolves scenes by name", func() {
		b, err := NewRegistry().Get("SquareOfPred")
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Name()).To(Equal("SquareOfPred"))
	})

	It("rejects unknown names", func() {
		_, err := NewRegistry().Get("NoSuchScene")
		Expect(err).To(MatchError(ContainSubstring("unknown scene")))
	})
})

func collectTexts(o *scene.Object, out *[]string) {
	if o.Kind() == scene.KindText && o.Opacity() > 0 {
		*out = append(*out, o.Text())
	}
	for _, c := range o.Children() {
		collectTexts(c, out)
	}
}

// finalTexts constructs the scene without rasterizing and returns the
// visible text labels left on screen at the end.
func finalTexts(b render.Builder) []string {
	sc, err := scene.New(context.Background(), 10, nullSink{})
	Expect(err).NotTo(HaveOccurred())
	b.Construct(sc)
	Expect(sc.Err()).NotTo(HaveOccurred())

	var texts []string
	collectTexts(sc.Root(), &texts)
	return texts
}

var _ = Describe("SquareOfPred", func() {
	It("renders a nonempty timeline", func() {
		res := renderScene("SquareOfPred", false)
		Expect(res.Frames).NotTo(BeEmpty())
		Expect(res.Steps).NotTo(BeEmpty())
		Expect(res.Duration).To(BeNumerically(">", 0))
	})

	It("produces the same timeline on every run", func() {
		a := renderScene("SquareOfPred", true)
		b := renderScene("SquareOfPred", true)
		Expect(a.Times).To(Equal(b.Times))
		Expect(a.OpsPerFrame).To(Equal(b.OpsPerFrame))
		Expect(a.Steps).To(Equal(b.Steps))
	})

	It("reduces square_of_pred 5 to 16", func() {
		b, err := NewRegistry().Get("SquareOfPred")
		Expect(err).NotTo(HaveOccurred())
		Expect(finalTexts(b)).To(ContainElement("16"))
	})

	It("records the bindings gauge", func() {
		res := renderScene("SquareOfPred", true)
		samples := res.Gauges["bindings"]
		Expect(samples).NotTo(BeEmpty())
		peak := 0.0
		for _, s := range samples {
			if s.V > peak {
				peak = s.V
			}
		}
		Expect(peak).To(BeNumerically(">=", 2))
	})
})

var _ = Describe("Fact", func() {
	It("renders a nonempty timeline", func() {
		res := renderScene("Fact", false)
		Expect(res.Frames).NotTo(BeEmpty())
		Expect(res.Duration).To(BeNumerically(">", 0))
	})

	It("stacks more than one call context", func() {
		res := renderScene("Fact", true)
		samples := res.Gauges["contexts"]
		Expect(samples).NotTo(BeEmpty())
		peak := 0.0
		for _, s := range samples {
			if s.V > peak {
				peak = s.V
			}
		}
		Expect(peak).To(BeNumerically(">", 1))
	})

	It("reduces fact 3 to 6", func() {
		b, err := NewRegistry().Get("Fact")
		Expect(err).NotTo(HaveOccurred())
		Expect(finalTexts(b)).To(ContainElement("6"))
	})

	It("produces identical pixels on every run", func() {
		a := renderScene("Fact", false)
		b := renderScene("Fact", false)
		Expect(len(a.Frames)).To(Equal(len(b.Frames)))
		for i := range a.Frames {
			Expect(framesEqual(a.Frames[i], b.Frames[i])).To(BeTrue(), "frame %d differs", i)
		}
	})
})

func framesEqual(a, b *image.RGBA) bool {
	if a.Bounds() != b.Bounds() || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}
