package decoder

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

var testPalette = color.Palette{
	color.RGBA{A: 255},
	color.RGBA{R: 255, A: 255},
	color.RGBA{G: 255, A: 255},
	color.RGBA{B: 255, A: 255},
}

// writeTestGIF writes a 3-frame 8x6 animation where frame i is filled with
// palette color i+1. Delay 10 (hundredths) gives 10 fps.
func writeTestGIF(t *testing.T) string {
	t.Helper()
	g := &gif.GIF{Config: image.Config{Width: 8, Height: 6}}
	for i := 0; i < 3; i++ {
		p := image.NewPaletted(image.Rect(0, 0, 8, 6), testPalette)
		for j := range p.Pix {
			p.Pix[j] = uint8(i + 1)
		}
		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, 10)
	}

	path := filepath.Join(t.TempDir(), "anim.gif")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, g); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return path
}

func TestGIFStreamPlayback(t *testing.T) {
	s, err := Open(writeTestGIF(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if w, h := s.Dimensions(); w != 8 || h != 6 {
		t.Fatalf("dimensions = %dx%d, expected 8x6", w, h)
	}
	if fps := s.FrameRate(); fps != 10 {
		t.Fatalf("frame rate = %v, expected 10", fps)
	}

	expected := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	for i, want := range expected {
		frame, err := s.NextFrame()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if got := frame.RGBAAt(0, 0); got != want {
			t.Fatalf("frame %d color = %v, expected %v", i, got, want)
		}
	}

	if _, err := s.NextFrame(); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("expected ErrEndOfStream, got %v", err)
	}
}

func TestGIFStreamReset(t *testing.T) {
	s, err := Open(writeTestGIF(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	for {
		if _, err := s.NextFrame(); err != nil {
			break
		}
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	frame, err := s.NextFrame()
	if err != nil {
		t.Fatalf("frame after reset: %v", err)
	}
	if got := frame.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("first frame after reset = %v", got)
	}
}

func TestGIFStreamFrameCount(t *testing.T) {
	s, err := OpenGIF(writeTestGIF(t))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if n := s.FrameCount(); n != 3 {
		t.Fatalf("frame count = %d, expected 3", n)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.mp4")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenCorruptGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gif")
	if err := os.WriteFile(path, []byte("not a gif"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Open(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
