package sizecalc

import (
	"strings"
	"testing"
)

func TestCalculate(t *testing.T) {
	p := Probe{
		Path:     "demo.mp4",
		FileSize: 1 << 20,
		Width:    1920,
		Height:   1080,
		FPS:      30,
		Frames:   300,
	}
	e := Calculate(p, 120)

	if e.AsciiHeight != 33 {
		t.Errorf("ascii height = %d, expected 33", e.AsciiHeight)
	}
	if e.CharsPerFrame != 120*33 {
		t.Errorf("chars per frame = %d, expected %d", e.CharsPerFrame, 120*33)
	}
	if e.RawGray != int64(120*33)*300 {
		t.Errorf("raw gray = %d, expected %d", e.RawGray, int64(120*33)*300)
	}
	if e.RawColor != e.RawGray*4 {
		t.Errorf("raw color = %d, expected %d", e.RawColor, e.RawGray*4)
	}
	if e.CompressedGray != e.RawGray/10 {
		t.Errorf("compressed gray = %d", e.CompressedGray)
	}
	if e.RenderWidth != 720 || e.RenderHeight != 396 {
		t.Errorf("render size = %dx%d, expected 720x396", e.RenderWidth, e.RenderHeight)
	}
	// 720*396*30*0.1 bits/s over 10 s, in bytes.
	if e.Reencoded != 1069200 {
		t.Errorf("reencoded = %d, expected 1069200", e.Reencoded)
	}
}

func TestReportMentionsRatios(t *testing.T) {
	p := Probe{Path: "demo.mp4", FileSize: 1000, Width: 640, Height: 480, FPS: 30, Frames: 150}
	out := Calculate(p, 120).Report(p)

	for _, want := range []string{"demo.mp4", "640x480", "Raw text", "Compressed text", "Re-encoded"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "larger") && !strings.Contains(out, "smaller") {
		t.Error("report has no size comparison")
	}
}
