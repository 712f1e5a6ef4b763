// Package ascii converts decoded video frames into colored character grids.
package ascii

import (
	"errors"
	"image"
	"image/color"
	"math"
)

// ErrInvalidFrame reports a nil or zero-dimension source frame.
var ErrInvalidFrame = errors.New("invalid frame")

// aspectCorrection compensates for character cells being roughly twice as
// tall as wide when deriving grid height from the pixel aspect ratio.
const aspectCorrection = 0.5

// Cell is one grid position: a character and the color it is drawn in.
type Cell struct {
	Char  byte
	Color color.RGBA
}

// Frame is one converted frame: a Height x Width grid of cells, row-major.
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
}

// At returns the cell at column x, row y.
func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

// Config describes the character grid a Converter produces. Built once at
// startup; only Preview is toggled afterwards, by the playback loop.
type Config struct {
	Width   int
	Height  int
	Color   bool
	Charset string
	Preview bool
}

// HeightForWidth derives the grid height from the grid width and the source
// pixel dimensions, applying the character-cell aspect correction.
func HeightForWidth(width, srcW, srcH int) int {
	return int(math.Floor(float64(width) * (float64(srcH) / float64(srcW)) * aspectCorrection))
}

// Converter turns raw RGBA frames into character grids. It holds no mutable
// state: Convert is a pure function of the source frame and the config.
type Converter struct {
	cfg Config
}

// NewConverter creates a converter for the given grid config.
func NewConverter(cfg Config) *Converter {
	return &Converter{cfg: cfg}
}

// Convert runs the full pipeline on one frame: box-average resize to the
// grid size, luminance extraction, per-frame histogram equalization, and
// character/color mapping.
func (c *Converter) Convert(src *image.RGBA) (*Frame, error) {
	if src == nil {
		return nil, ErrInvalidFrame
	}
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw <= 0 || sh <= 0 {
		return nil, ErrInvalidFrame
	}
	w, h := c.cfg.Width, c.cfg.Height

	colors := resizeBox(src, w, h)

	lum := make([]uint8, w*h)
	for i, cl := range colors {
		lum[i] = luminance(cl)
	}

	equalize(lum)

	f := &Frame{Width: w, Height: h, Cells: make([]Cell, w*h)}
	n := len(c.cfg.Charset)
	for i, b := range lum {
		t := math.Sqrt(float64(b) / 255)
		idx := int(t * float64(n-1))
		if idx < 0 {
			idx = 0
		} else if idx > n-1 {
			idx = n - 1
		}
		cell := Cell{Char: c.cfg.Charset[idx]}
		if c.cfg.Color {
			cell.Color = colors[i]
		} else {
			cell.Color = color.RGBA{R: b, G: b, B: b, A: 255}
		}
		f.Cells[i] = cell
	}
	return f, nil
}

// resizeBox downsamples src to w x h by averaging each destination cell's
// source box. Degenerate boxes (upscaling) widen to a single pixel.
func resizeBox(src *image.RGBA, w, h int) []color.RGBA {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	minX, minY := src.Bounds().Min.X, src.Bounds().Min.Y
	out := make([]color.RGBA, w*h)
	for cy := 0; cy < h; cy++ {
		y0 := cy * sh / h
		y1 := (cy + 1) * sh / h
		if y1 <= y0 {
			y1 = y0 + 1
		}
		for cx := 0; cx < w; cx++ {
			x0 := cx * sw / w
			x1 := (cx + 1) * sw / w
			if x1 <= x0 {
				x1 = x0 + 1
			}
			var r, g, b uint64
			for y := y0; y < y1; y++ {
				row := src.PixOffset(minX+x0, minY+y)
				for x := x0; x < x1; x++ {
					r += uint64(src.Pix[row])
					g += uint64(src.Pix[row+1])
					b += uint64(src.Pix[row+2])
					row += 4
				}
			}
			cnt := uint64((x1 - x0) * (y1 - y0))
			out[cy*w+cx] = color.RGBA{
				R: uint8(r / cnt),
				G: uint8(g / cnt),
				B: uint8(b / cnt),
				A: 255,
			}
		}
	}
	return out
}

// luminance computes perceptual brightness with Rec.601 weights.
func luminance(c color.RGBA) uint8 {
	return uint8((299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000)
}

// equalize redistributes the brightness values of one frame to span the full
// 0..255 range, preserving their relative order. A uniform frame maps to
// itself.
func equalize(lum []uint8) {
	var hist [256]int
	for _, v := range lum {
		hist[v]++
	}

	total := len(lum)
	cdfMin := 0
	cdf := 0
	first := true
	var lut [256]uint8
	for i := 0; i < 256; i++ {
		cdf += hist[i]
		if first && cdf > 0 {
			cdfMin = cdf
			first = false
		}
		if total == cdfMin {
			// Zero-variance frame: every pixel sits in one bin.
			lut[i] = uint8(i)
			continue
		}
		v := cdf - cdfMin
		if v < 0 {
			v = 0
		}
		lut[i] = uint8((v*255 + (total-cdfMin)/2) / (total - cdfMin))
	}

	for i, v := range lum {
		lum[i] = lut[v]
	}
}
