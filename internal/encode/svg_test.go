package encode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"evalviz/internal/scene"
)

func TestFrameSVG(t *testing.T) {
	root := scene.NewGroup(
		scene.NewText("let x = 5").MoveTo(scene.Vec{Y: 1}),
		scene.NewRect(3, 1).SetColor(scene.Blue),
		scene.NewLine(scene.Vec{X: -1}, scene.Vec{X: 1}).SetColor(scene.Green),
	)

	svg := FrameSVG(root, 320, 180)

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="320" height="180"`,
		"let x = 5",
		"<rect x=",
		"<line x1=",
		"</svg>",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q in output", want)
		}
	}
}

func TestFrameSVGEscapesText(t *testing.T) {
	svg := FrameSVG(scene.NewGroup(scene.NewText("a < b & c")), 320, 180)
	if !strings.Contains(svg, "a &lt; b &amp; c") {
		t.Error("expected XML-escaped text")
	}
	if strings.Contains(svg, "a < b") {
		t.Error("raw markup leaked into output")
	}
}

func TestFrameSVGSkipsInvisible(t *testing.T) {
	svg := FrameSVG(scene.NewGroup(scene.NewText("hidden").SetOpacity(0)), 320, 180)
	if strings.Contains(svg, "hidden") {
		t.Error("expected invisible text omitted")
	}
}

func TestFrameSVGRevealPrefix(t *testing.T) {
	svg := FrameSVG(scene.NewGroup(scene.NewText("abcdef").SetReveal(0.5)), 320, 180)
	if !strings.Contains(svg, ">abc</text>") {
		t.Errorf("expected revealed prefix, got:\n%s", svg)
	}
}

func TestFrameSVGDeterministic(t *testing.T) {
	root := scene.NewGroup(scene.NewText("x"), scene.NewRect(1, 1))
	if FrameSVG(root, 320, 180) != FrameSVG(root, 320, 180) {
		t.Error("expected identical output for identical trees")
	}
}

func TestSVGWriter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "svg")
	w := &SVGWriter{Dir: dir, Prefix: "scene", Width: 320, Height: 180}
	root := scene.NewGroup(scene.NewText("x"))

	for i := 0; i < 3; i++ {
		if err := w.Frame(root, float64(i)*0.1, 1); err != nil {
			t.Fatalf("Frame: %v", err)
		}
	}

	paths := w.Paths()
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	if filepath.Base(paths[2]) != "scene_0002.svg" {
		t.Errorf("unexpected path %q", paths[2])
	}
	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("expected complete SVG document on disk")
	}
}
