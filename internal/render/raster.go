// Package render rasterizes character grids onto an RGBA canvas.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/dkovacs/asciivid/internal/ascii"
)

const (
	fontSize     = 10
	margin       = 10
	previewWidth = 240
	previewInset = 15
)

var (
	backingColor = color.RGBA{A: 200}
	borderColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	statusColor  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	bannerColor  = color.RGBA{R: 255, G: 255, A: 255}
)

// Rasterizer draws character grids at a fixed monospace cell size.
// Not safe for concurrent use; the playback loop is its only caller.
type Rasterizer struct {
	face   font.Face
	cellW  int
	cellH  int
	ascent int
	gridW  int
	gridH  int
}

// NewRasterizer creates a rasterizer for a gridW x gridH character grid,
// drawn with the Go Mono face.
func NewRasterizer(gridW, gridH int) (*Rasterizer, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}

	// The 'W' advance is the cell width; monospace, so any glyph would do.
	adv, _ := face.GlyphAdvance('W')
	m := face.Metrics()
	return &Rasterizer{
		face:   face,
		cellW:  adv.Ceil(),
		cellH:  m.Height.Ceil(),
		ascent: m.Ascent.Ceil(),
		gridW:  gridW,
		gridH:  gridH,
	}, nil
}

// CanvasSize returns the pixel dimensions of the rendered canvas.
func (r *Rasterizer) CanvasSize() (int, int) {
	return r.gridW*r.cellW + 2*margin, r.gridH*r.cellH + 2*margin
}

// CellSize returns the pixel size of one character cell.
func (r *Rasterizer) CellSize() (int, int) {
	return r.cellW, r.cellH
}

// Render draws one frame to a fresh canvas. preview, when non-nil, is
// composited scaled-down into the bottom-right corner. status, when
// non-empty, is drawn in the bottom-left. paused adds a centered banner.
func (r *Rasterizer) Render(f *ascii.Frame, preview *image.RGBA, status string, paused bool) *image.RGBA {
	w, h := r.CanvasSize()
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: canvas, Face: r.face}
	for cy := 0; cy < f.Height; cy++ {
		baseline := margin + cy*r.cellH + r.ascent
		for cx := 0; cx < f.Width; cx++ {
			cell := f.At(cx, cy)
			if cell.Char == ' ' {
				continue
			}
			d.Src = image.NewUniform(cell.Color)
			d.Dot = fixed.P(margin+cx*r.cellW, baseline)
			d.DrawString(string(rune(cell.Char)))
		}
	}

	if preview != nil {
		r.drawPreview(canvas, preview)
	}
	if status != "" {
		r.drawStatus(canvas, status)
	}
	if paused {
		r.drawBanner(canvas, "PAUSED - Press SPACE to continue")
	}
	return canvas
}

func (r *Rasterizer) drawPreview(canvas, src *image.RGBA) {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	pw := previewWidth
	ph := pw * sh / sw
	cw, ch := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	x := cw - pw - previewInset
	y := ch - ph - previewInset

	// Translucent backing, then a 2 px white border, then the thumbnail.
	backing := image.Rect(x-2, y-2, x+pw+2, y+ph+2)
	draw.Draw(canvas, backing, image.NewUniform(backingColor), image.Point{}, draw.Over)
	strokeRect(canvas, backing, 2, borderColor)

	dst := image.Rect(x, y, x+pw, y+ph)
	xdraw.ApproxBiLinear.Scale(canvas, dst, src, src.Bounds(), xdraw.Src, nil)
}

func (r *Rasterizer) drawStatus(canvas *image.RGBA, status string) {
	tw := font.MeasureString(r.face, status).Ceil()
	ch := canvas.Bounds().Dy()
	x := margin
	y := ch - r.cellH - margin

	backing := image.Rect(x-2, y-3, x+tw+8, y+r.cellH+3)
	draw.Draw(canvas, backing, image.NewUniform(backingColor), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(statusColor),
		Face: r.face,
		Dot:  fixed.P(x, y+r.ascent),
	}
	d.DrawString(status)
}

func (r *Rasterizer) drawBanner(canvas *image.RGBA, text string) {
	tw := font.MeasureString(r.face, text).Ceil()
	cw := canvas.Bounds().Dx()
	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(bannerColor),
		Face: r.face,
		Dot:  fixed.P((cw-tw)/2, margin+r.ascent),
	}
	d.DrawString(text)
}

func strokeRect(img *image.RGBA, rect image.Rectangle, width int, c color.RGBA) {
	u := image.NewUniform(c)
	draw.Draw(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+width), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(rect.Min.X, rect.Max.Y-width, rect.Max.X, rect.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+width, rect.Max.Y), u, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(rect.Max.X-width, rect.Min.Y, rect.Max.X, rect.Max.Y), u, image.Point{}, draw.Src)
}
