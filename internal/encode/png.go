package encode

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNGFrames dumps every frame as <prefix>_NNNN.png under dir and
// returns the written paths in frame order.
func WritePNGFrames(dir, prefix string, frames []*image.RGBA) ([]string, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("encode: no frames to write")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(frames))
	for i, frame := range frames {
		path := filepath.Join(dir, fmt.Sprintf("%s_%04d.png", prefix, i))
		f, err := os.Create(path)
		if err != nil {
			return paths, err
		}
		if err := png.Encode(f, frame); err != nil {
			f.Close()
			return paths, err
		}
		if err := f.Close(); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
