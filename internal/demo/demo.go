// Package demo generates short test clips with moving colored patterns.
package demo

import (
	"fmt"
	"image"
	"image/color"
	"math"

	vidio "github.com/AlexEidt/Vidio"
)

// Clip dimensions.
const (
	Width  = 640
	Height = 480
)

var stripeColors = []color.RGBA{
	{B: 255, A: 255},
	{G: 255, A: 255},
	{R: 255, A: 255},
	{G: 255, B: 255, A: 255},
	{R: 255, B: 255, A: 255},
	{R: 255, G: 255, A: 255},
}

// Frame renders frame n of a clip with totalFrames frames at the given
// rate: a warm vertical gradient, an orbiting yellow circle, a pink square
// crossing the screen and six swaying color stripes. Deterministic per n.
func Frame(n, totalFrames, fps int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))

	// Background gradient.
	for y := 0; y < Height; y++ {
		v := uint8(255 * y / Height)
		c := color.RGBA{R: v, G: v / 2, B: v / 3, A: 255}
		for x := 0; x < Width; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	// Swaying color stripes.
	const stripeHeight = 30
	for i, c := range stripeColors {
		y0 := Height/2 + i*stripeHeight
		offset := int(30 * math.Sin(2*math.Pi*(float64(n)/float64(fps)+0.2*float64(i))))
		fillRect(img, offset, y0, Width-offset, y0+stripeHeight-2, c)
	}

	// Pink square crossing left to right.
	rx := Width * n / totalFrames
	ry := Height / 4
	fillRect(img, rx, ry, rx+60, ry+60, color.RGBA{R: 200, G: 100, B: 255, A: 255})
	outlineRect(img, rx, ry, rx+60, ry+60, 2, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	// Orbiting circle with a white ring.
	cx := int(Width * (0.5 + 0.3*math.Sin(2*math.Pi*float64(n)/float64(fps))))
	cy := int(Height * (0.5 + 0.3*math.Cos(2*math.Pi*float64(n)/float64(fps))))
	const radius = 50
	fillCircle(img, cx, cy, radius, color.RGBA{R: 255, G: 255, A: 255})
	ringCircle(img, cx, cy, radius, 3, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	return img
}

// WriteClip writes a demo clip of the given length to path as a video file.
func WriteClip(path string, seconds, fps int) error {
	w, err := vidio.NewVideoWriter(path, Width, Height, &vidio.Options{FPS: float64(fps)})
	if err != nil {
		return fmt.Errorf("create writer: %w", err)
	}
	defer w.Close()

	total := seconds * fps
	for n := 0; n < total; n++ {
		if err := w.Write(Frame(n, total, fps).Pix); err != nil {
			return fmt.Errorf("write frame %d: %w", n, err)
		}
	}
	return nil
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := max(y0, 0); y < min(y1, Height); y++ {
		for x := max(x0, 0); x < min(x1, Width); x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func outlineRect(img *image.RGBA, x0, y0, x1, y1, width int, c color.RGBA) {
	fillRect(img, x0, y0, x1, y0+width, c)
	fillRect(img, x0, y1-width, x1, y1, c)
	fillRect(img, x0, y0, x0+width, y1, c)
	fillRect(img, x1-width, y0, x1, y1, c)
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if x >= 0 && x < Width && y >= 0 && y < Height {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func ringCircle(img *image.RGBA, cx, cy, r, thickness int, c color.RGBA) {
	outer := r + thickness
	for dy := -outer; dy <= outer; dy++ {
		for dx := -outer; dx <= outer; dx++ {
			d2 := dx*dx + dy*dy
			if d2 > outer*outer || d2 < r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if x >= 0 && x < Width && y >= 0 && y < Height {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
