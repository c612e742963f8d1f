package scene

import "math"

// Vec is a point or displacement in scene units. The visible frame spans
// FrameWidth x FrameHeight units with the origin at the center, x growing
// right and y growing up.
type Vec struct {
	X, Y float64
}

// Frame extents in scene units.
const (
	FrameWidth  = 14.2
	FrameHeight = 8.0
)

// Direction constants used for layout and animation offsets.
var (
	Origin = Vec{0, 0}
	Up     = Vec{0, 1}
	Down   = Vec{0, -1}
	Left   = Vec{-1, 0}
	Right  = Vec{1, 0}
	UL     = Vec{-1, 1}
	UR     = Vec{1, 1}
	DL     = Vec{-1, -1}
	DR     = Vec{1, -1}
)

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec { return Vec{v.X * f, v.Y * f} }
func (v Vec) Neg() Vec            { return Vec{-v.X, -v.Y} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) Lerp(o Vec, p float64) Vec {
	return Vec{v.X + (o.X-v.X)*p, v.Y + (o.Y-v.Y)*p}
}

// Bounds is an axis-aligned box in scene units.
type Bounds struct {
	Min, Max Vec
}

func (b Bounds) Width() float64  { return b.Max.X - b.Min.X }
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

func (b Bounds) Center() Vec {
	return Vec{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2}
}

// Corner returns the point of the box in the given direction: Up means the
// middle of the top edge, UR the upper-right corner, Origin the center.
func (b Bounds) Corner(dir Vec) Vec {
	c := b.Center()
	return Vec{c.X + dir.X*b.Width()/2, c.Y + dir.Y*b.Height()/2}
}

func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		Min: Vec{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Vec{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Color is an opaque RGB stroke color; opacity lives on the object.
type Color struct {
	R, G, B uint8
}

var (
	White      = Color{0xec, 0xec, 0xec}
	Gray       = Color{0x88, 0x88, 0x88}
	Green      = Color{0x1e, 0xc8, 0x5a}
	Blue       = Color{0x3e, 0x9e, 0xff}
	Yellow     = Color{0xff, 0xd7, 0x4a}
	Background = Color{0x0a, 0x0a, 0x0a}
)

// Lerp blends two colors component-wise.
func (c Color) Lerp(o Color, p float64) Color {
	f := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*p)
	}
	return Color{f(c.R, o.R), f(c.G, o.G), f(c.B, o.B)}
}
