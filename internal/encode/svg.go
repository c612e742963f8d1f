package encode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"evalviz/internal/scene"
)

// FrameSVG serializes one sampled scene instant as a standalone SVG
// document of the given pixel size. Objects map one-to-one onto SVG
// elements, so the output is deterministic text suited to regression
// diffs.
func FrameSVG(root *scene.Object, w, h int) string {
	ppu := float64(h) / scene.FrameHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, hexColor(scene.Background)))

	writeNode(&sb, root, float64(w), float64(h), ppu)

	sb.WriteString("</svg>\n")
	return sb.String()
}

func toPx(p scene.Vec, w, h, ppu float64) (float64, float64) {
	return w/2 + p.X*ppu, h/2 - p.Y*ppu
}

func writeNode(sb *strings.Builder, o *scene.Object, w, h, ppu float64) {
	if o.Opacity() <= 0 || o.Reveal() <= 0 {
		if o.Kind() != scene.KindGroup {
			return
		}
	}
	switch o.Kind() {
	case scene.KindGroup:
		for _, c := range o.Children() {
			writeNode(sb, c, w, h, ppu)
		}
	case scene.KindRect:
		b := o.Bounds()
		x, y := toPx(scene.Vec{X: b.Min.X, Y: b.Max.Y}, w, h, ppu)
		sb.WriteString(fmt.Sprintf(
			`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2" stroke-opacity="%.2f"/>`+"\n",
			x, y, b.Width()*ppu, b.Height()*ppu, hexColor(o.Color()), o.Opacity()))
	case scene.KindLine:
		from, to := o.LineEnds()
		if o.Reveal() < 1 {
			to = from.Lerp(to, o.Reveal())
		}
		x1, y1 := toPx(from, w, h, ppu)
		x2, y2 := toPx(to, w, h, ppu)
		sb.WriteString(fmt.Sprintf(
			`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2" stroke-opacity="%.2f"/>`+"\n",
			x1, y1, x2, y2, hexColor(o.Color()), o.Opacity()))
	case scene.KindText:
		text := o.Text()
		shown := int(o.Reveal()*float64(len(text)) + 0.5)
		if shown > len(text) {
			shown = len(text)
		}
		if shown == 0 {
			return
		}
		b := o.Bounds()
		x, y := toPx(scene.Vec{X: b.Min.X, Y: b.Min.Y}, w, h, ppu)
		size := b.Height() * ppu * 0.9
		sb.WriteString(fmt.Sprintf(
			`<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.1f" fill="%s" fill-opacity="%.2f">%s</text>`+"\n",
			x, y, size, hexColor(o.Color()), o.Opacity(), escapeXML(text[:shown])))
	}
}

func hexColor(c scene.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// SVGWriter is a frame sink writing one SVG document per sampled frame.
type SVGWriter struct {
	Dir    string
	Prefix string
	Width  int
	Height int

	count int
	paths []string
}

// Frame implements scene.FrameSink.
func (s *SVGWriter) Frame(root *scene.Object, t float64, ops int) error {
	if s.count == 0 {
		if err := os.MkdirAll(s.Dir, 0755); err != nil {
			return err
		}
	}
	path := filepath.Join(s.Dir, fmt.Sprintf("%s_%04d.svg", s.Prefix, s.count))
	if err := os.WriteFile(path, []byte(FrameSVG(root, s.Width, s.Height)), 0644); err != nil {
		return err
	}
	s.count++
	s.paths = append(s.paths, path)
	return nil
}

// Paths returns the written files in frame order.
func (s *SVGWriter) Paths() []string { return s.paths }
