package tui

import (
	"image"
	"strings"
)

// Braille patterns: 2x4 dots per character cell, unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille character grid used for terminal playback. The
// dot resolution is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Set lights the dot at sub-pixel coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// Lit counts the number of lit dots.
func (c *Canvas) Lit() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			p := int(r - 0x2800)
			for p != 0 {
				n += p & 1
				p >>= 1
			}
		}
	}
	return n
}

// FromImage downsamples a rendered frame onto the dot grid: a dot is
// lit when the source pixel is brighter than the threshold.
func (c *Canvas) FromImage(img *image.RGBA, threshold uint8) {
	c.Clear()
	b := img.Bounds()
	dotW := c.Width * 2
	dotH := c.Height * 4
	for dy := 0; dy < dotH; dy++ {
		sy := b.Min.Y + dy*b.Dy()/dotH
		for dx := 0; dx < dotW; dx++ {
			sx := b.Min.X + dx*b.Dx()/dotW
			i := img.PixOffset(sx, sy)
			p := img.Pix[i : i+3 : i+3]
			// Integer luma approximation.
			luma := (299*int(p[0]) + 587*int(p[1]) + 114*int(p[2])) / 1000
			if luma > int(threshold) {
				c.Set(dx, dy)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}
