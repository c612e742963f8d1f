package encode

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func testFrames(n int) []*image.RGBA {
	frames := make([]*image.RGBA, n)
	for i := range frames {
		img := image.NewRGBA(image.Rect(0, 0, 32, 18))
		img.SetRGBA(i, 0, color.RGBA{0xff, 0xff, 0xff, 0xff})
		frames[i] = img
	}
	return frames
}

func TestGIF(t *testing.T) {
	var buf bytes.Buffer
	if err := GIF(&buf, testFrames(5), 10); err != nil {
		t.Fatalf("GIF: %v", err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if len(decoded.Image) != 5 {
		t.Errorf("expected 5 frames, got %d", len(decoded.Image))
	}
	if decoded.Delay[0] != 10 {
		t.Errorf("expected delay 10 (centiseconds) at 10 fps, got %d", decoded.Delay[0])
	}
}

func TestGIFDelayFloor(t *testing.T) {
	var buf bytes.Buffer
	if err := GIF(&buf, testFrames(2), 60); err != nil {
		t.Fatalf("GIF: %v", err)
	}
	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if decoded.Delay[0] < 2 {
		t.Errorf("expected delay clamped to 2, got %d", decoded.Delay[0])
	}
}

func TestGIFRejectsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := GIF(&buf, nil, 10); err == nil {
		t.Error("expected error for empty frame list")
	}
}

func TestGIFIsDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := GIF(&a, testFrames(3), 10); err != nil {
		t.Fatalf("GIF: %v", err)
	}
	if err := GIF(&b, testFrames(3), 10); err != nil {
		t.Fatalf("GIF: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("expected identical encodings for identical frames")
	}
}

func TestWriteGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := WriteGIF(path, testFrames(2), 10); err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected output file: %v", err)
	}
}

func TestWritePNGFrames(t *testing.T) {
	dir := t.TempDir()
	paths, err := WritePNGFrames(dir, "scene", testFrames(3))
	if err != nil {
		t.Fatalf("WritePNGFrames: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	if filepath.Base(paths[0]) != "scene_0000.png" {
		t.Errorf("unexpected first path %q", paths[0])
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing frame file %s: %v", p, err)
		}
	}
}
