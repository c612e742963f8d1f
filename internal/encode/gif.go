package encode

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// GIF encodes the frames as a looping animated GIF. Colors are mapped to
// the standard 256-color palette without dithering, so the output bytes
// are a pure function of the input frames.
func GIF(w io.Writer, frames []*image.RGBA, fps int) error {
	if len(frames) == 0 {
		return fmt.Errorf("encode: no frames to encode")
	}
	if fps <= 0 {
		return fmt.Errorf("encode: fps must be positive, got %d", fps)
	}
	delay := 100 / fps
	if delay < 2 {
		delay = 2
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.Draw(p, p.Bounds(), frame, frame.Bounds().Min, draw.Src)
		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

// WriteGIF encodes the frames into a file at path.
func WriteGIF(path string, frames []*image.RGBA, fps int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return GIF(f, frames, fps)
}
