// Package sizecalc estimates how large a video would be in ASCII form.
package sizecalc

import (
	"fmt"
	"strings"

	"github.com/dkovacs/asciivid/internal/ascii"
)

// Cell pixel footprint assumed for the re-encode estimate.
const (
	renderCellW = 6
	renderCellH = 12
	// Typical H.264 bits per pixel per frame at medium quality.
	reencodeBPP = 0.1
)

// Probe holds the measured properties of the source video.
type Probe struct {
	Path     string
	FileSize int64
	Width    int
	Height   int
	FPS      float64
	Frames   int
}

// Duration returns the clip length in seconds.
func (p Probe) Duration() float64 {
	if p.FPS <= 0 {
		return 0
	}
	return float64(p.Frames) / p.FPS
}

// Estimate holds the size projections for one ASCII width.
type Estimate struct {
	AsciiWidth      int
	AsciiHeight     int
	CharsPerFrame   int
	RawGray         int64
	RawColor        int64
	CompressedGray  int64
	CompressedColor int64
	RenderWidth     int
	RenderHeight    int
	Reencoded       int64
}

// Calculate projects ASCII storage sizes for the probed video: raw text
// with and without per-cell RGB, gzip-compressed text (ASCII repeats well,
// roughly 10:1 gray and 8:1 color), and an H.264 re-encode of the rendered
// character grid.
func Calculate(p Probe, asciiWidth int) Estimate {
	h := ascii.HeightForWidth(asciiWidth, p.Width, p.Height)
	chars := asciiWidth * h
	frames := int64(p.Frames)

	e := Estimate{
		AsciiWidth:    asciiWidth,
		AsciiHeight:   h,
		CharsPerFrame: chars,
		RawGray:       int64(chars) * frames,
		RawColor:      int64(chars) * 4 * frames,
		RenderWidth:   asciiWidth * renderCellW,
		RenderHeight:  h * renderCellH,
	}
	e.CompressedGray = e.RawGray / 10
	e.CompressedColor = e.RawColor / 8

	bitsPerSecond := float64(e.RenderWidth) * float64(e.RenderHeight) * p.FPS * reencodeBPP
	e.Reencoded = int64(bitsPerSecond * p.Duration() / 8)
	return e
}

// Report formats the estimate as a human-readable comparison against the
// original file size.
func (e Estimate) Report(p Probe) string {
	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}
	mb := func(n int64) string {
		return fmt.Sprintf("%d bytes (%.2f MB)", n, float64(n)/1024/1024)
	}
	ratio := func(n int64) string {
		r := float64(n) / float64(p.FileSize)
		word := "smaller"
		if n > p.FileSize {
			word = "larger"
		}
		return fmt.Sprintf("%.2fx %s", r, word)
	}

	line("Original video:")
	line("  File:       %s", p.Path)
	line("  Size:       %s", mb(p.FileSize))
	line("  Resolution: %dx%d", p.Width, p.Height)
	line("  FPS:        %.2f", p.FPS)
	line("  Frames:     %d", p.Frames)
	line("  Duration:   %.1f s", p.Duration())
	line("")
	line("ASCII conversion: %dx%d (%d chars/frame)", e.AsciiWidth, e.AsciiHeight, e.CharsPerFrame)
	line("")
	line("Raw text:")
	line("  Characters only: %s, %s", mb(e.RawGray), ratio(e.RawGray))
	line("  With colors:     %s, %s", mb(e.RawColor), ratio(e.RawColor))
	line("Compressed text (gzip):")
	line("  Characters only: %s, %s", mb(e.CompressedGray), ratio(e.CompressedGray))
	line("  With colors:     %s, %s", mb(e.CompressedColor), ratio(e.CompressedColor))
	line("Re-encoded video (H.264, %dx%d px):", e.RenderWidth, e.RenderHeight)
	line("  Medium quality:  %s, %s", mb(e.Reencoded), ratio(e.Reencoded))
	return b.String()
}
