package encoder

import (
	"image/color"
	"strings"
	"testing"

	"github.com/dkovacs/asciivid/internal/ascii"
)

func TestANSIEncode(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	f := &ascii.Frame{
		Width:  2,
		Height: 2,
		Cells: []ascii.Cell{
			{Char: '#', Color: red},
			{Char: '@', Color: red},
			{Char: '.', Color: blue},
			{Char: '%', Color: blue},
		},
	}

	out := string(NewANSIEncoder().Encode(f))

	if !strings.HasPrefix(out, "\x1b[H") {
		t.Fatalf("output does not start with cursor home: %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Fatalf("output does not end with reset: %q", out)
	}
	if n := strings.Count(out, "\r\n"); n != 2 {
		t.Fatalf("expected 2 line breaks, got %d", n)
	}

	// Same-color runs share one escape sequence.
	if n := strings.Count(out, "\x1b[38;2;255;0;0m"); n != 1 {
		t.Fatalf("expected 1 red sequence, got %d", n)
	}
	if n := strings.Count(out, "\x1b[38;2;0;0;255m"); n != 1 {
		t.Fatalf("expected 1 blue sequence, got %d", n)
	}
	if !strings.Contains(out, "#@") {
		t.Fatalf("first row characters missing: %q", out)
	}
	if !strings.Contains(out, ".%") {
		t.Fatalf("second row characters missing: %q", out)
	}
}
