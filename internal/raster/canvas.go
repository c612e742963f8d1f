package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"evalviz/internal/scene"
)

// Canvas rasterizes one sampled scene instant into an RGBA frame.
// Scene units are mapped to pixels so the full frame height always fits;
// the origin lands at the image center.
type Canvas struct {
	img  *image.RGBA
	w, h int
	ppu  float64
}

func New(w, h int) *Canvas {
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
		ppu: float64(h) / scene.FrameHeight,
	}
	c.Reset()
	return c
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// Reset fills the canvas with the background color.
func (c *Canvas) Reset() {
	bg := color.RGBA{scene.Background.R, scene.Background.G, scene.Background.B, 0xff}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// Snapshot returns an independent copy of the current frame.
func (c *Canvas) Snapshot() *image.RGBA {
	cp := image.NewRGBA(c.img.Bounds())
	copy(cp.Pix, c.img.Pix)
	return cp
}

// Draw renders the object subtree onto the canvas.
func (c *Canvas) Draw(root *scene.Object) {
	c.drawNode(root)
}

func (c *Canvas) drawNode(o *scene.Object) {
	switch o.Kind() {
	case scene.KindGroup:
		for _, child := range o.Children() {
			c.drawNode(child)
		}
	case scene.KindText:
		c.drawText(o)
	case scene.KindRect:
		c.drawRect(o)
	case scene.KindLine:
		from, to := o.LineEnds()
		c.strokeLine(from, to, o.Color(), o.Opacity(), o.Reveal())
	}
}

func (c *Canvas) toPx(p scene.Vec) (int, int) {
	x := (p.X + scene.FrameWidth/2) * c.ppu
	y := (scene.FrameHeight/2 - p.Y) * c.ppu
	return int(math.Round(x)), int(math.Round(y))
}

// blend writes one pixel with alpha compositing over the existing color.
func (c *Canvas) blend(x, y int, col scene.Color, a float64) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || a <= 0 {
		return
	}
	if a > 1 {
		a = 1
	}
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = mix(p[0], col.R, a)
	p[1] = mix(p[1], col.G, a)
	p[2] = mix(p[2], col.B, a)
	p[3] = 0xff
}

func mix(dst, src uint8, a float64) uint8 {
	return uint8(float64(dst)*(1-a) + float64(src)*a)
}

// strokeLine draws the first reveal fraction of the segment.
func (c *Canvas) strokeLine(from, to scene.Vec, col scene.Color, opacity, reveal float64) {
	if opacity <= 0 || reveal <= 0 {
		return
	}
	if reveal < 1 {
		to = from.Lerp(to, reveal)
	}
	x0, y0 := c.toPx(from)
	x1, y1 := c.toPx(to)

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx - dy
	for {
		c.blend(x0, y0, col, opacity)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			x0 += sx
		}
		if e2 < dx {
			e += dx
			y0 += sy
		}
	}
}

// drawRect strokes the rectangle outline clockwise from the upper-left
// corner, honoring partial reveal as a fraction of the perimeter.
func (c *Canvas) drawRect(o *scene.Object) {
	if o.Opacity() <= 0 || o.Reveal() <= 0 {
		return
	}
	b := o.Bounds()
	corners := []scene.Vec{
		{X: b.Min.X, Y: b.Max.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Min.X, Y: b.Min.Y},
	}
	perimeter := 2 * (b.Width() + b.Height())
	if perimeter == 0 {
		return
	}
	remaining := o.Reveal() * perimeter
	for i := 0; i < 4 && remaining > 0; i++ {
		from := corners[i]
		to := corners[(i+1)%4]
		edge := to.Sub(from).Len()
		r := 1.0
		if remaining < edge {
			r = remaining / edge
		}
		c.strokeLine(from, from.Lerp(to, r), o.Color(), o.Opacity(), 1)
		remaining -= edge
	}
}

const (
	glyphW = 7
	glyphH = 13
)

// drawText renders the revealed prefix of a text node. Glyphs come from
// the fixed 7x13 bitmap face and are nearest-neighbor scaled into the
// node's bounds so scaled-down groups keep proportional text.
func (c *Canvas) drawText(o *scene.Object) {
	text := o.Text()
	if o.Opacity() <= 0 || o.Reveal() <= 0 || len(text) == 0 {
		return
	}
	shown := int(math.Ceil(o.Reveal() * float64(len(text))))
	if shown > len(text) {
		shown = len(text)
	}
	mask := renderMask(text)
	b := o.Bounds()
	x0, y0 := c.toPx(scene.Vec{X: b.Min.X, Y: b.Max.Y})
	wPx := int(math.Round(b.Width() * c.ppu))
	hPx := int(math.Round(b.Height() * c.ppu))
	if wPx < 1 || hPx < 1 {
		return
	}
	// Only the revealed prefix of the mask is blitted.
	maskW := len(text) * glyphW
	shownPx := int(float64(wPx) * float64(shown) / float64(len(text)))

	for py := 0; py < hPx; py++ {
		my := py * glyphH / hPx
		for px := 0; px < shownPx; px++ {
			mx := px * maskW / wPx
			a := float64(mask.AlphaAt(mx, my).A) / 255
			if a > 0 {
				c.blend(x0+px, y0+py, o.Color(), a*o.Opacity())
			}
		}
	}
}

// renderMask draws the full string at native glyph size into an alpha
// mask.
func renderMask(text string) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, len(text)*glyphW, glyphH))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.Alpha{0xff}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, basicfont.Face7x13.Ascent),
	}
	d.DrawString(text)
	return mask
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
