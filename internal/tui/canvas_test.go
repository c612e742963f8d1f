package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestSetAndLit(t *testing.T) {
	c := NewCanvas(4, 2)
	if c.Lit() != 0 {
		t.Errorf("expected empty canvas, %d dots lit", c.Lit())
	}

	c.Set(0, 0)
	c.Set(1, 3)
	c.Set(7, 7)
	if c.Lit() != 3 {
		t.Errorf("expected 3 dots, got %d", c.Lit())
	}

	// The same dot twice counts once.
	c.Set(0, 0)
	if c.Lit() != 3 {
		t.Errorf("expected idempotent set, got %d", c.Lit())
	}
}

func TestSetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 0)
	c.Set(0, 100)
	if c.Lit() != 0 {
		t.Errorf("expected out-of-bounds sets ignored, got %d", c.Lit())
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(1, 1)
	c.Clear()
	if c.Lit() != 0 {
		t.Errorf("expected cleared canvas, got %d", c.Lit())
	}
}

func TestString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(line)))
		}
		for _, r := range line {
			if r < 0x2800 || r > 0x28ff {
				t.Errorf("expected braille rune, got %U", r)
			}
		}
	}
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	// Light left half, dark right half.
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{0xff, 0xff, 0xff, 0xff})
		}
	}

	c := NewCanvas(8, 4)
	c.FromImage(img, 50)

	if c.Lit() == 0 {
		t.Fatal("expected lit dots from bright pixels")
	}
	// Half the dot grid is bright.
	if want := 8 * 2 * 4 * 4 / 2; c.Lit() != want {
		t.Errorf("expected %d dots, got %d", want, c.Lit())
	}

	// Reusing the canvas replaces the previous frame.
	dark := image.NewRGBA(image.Rect(0, 0, 16, 16))
	c.FromImage(dark, 50)
	if c.Lit() != 0 {
		t.Errorf("expected dark frame to clear dots, got %d", c.Lit())
	}
}
