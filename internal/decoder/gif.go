package decoder

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"os"
)

// GIFStream decodes an animated GIF fully up front and serves its frames.
// Frames are composited over the logical screen so partial-update GIFs
// still yield full frames.
type GIFStream struct {
	frames []*image.RGBA
	fps    float64
	width  int
	height int
	pos    int
}

// OpenGIF decodes an animated GIF into a frame stream.
func OpenGIF(path string) (*GIFStream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gif: %w", err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("%w: gif has no frames", ErrUnsupportedFormat)
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Dx(), b.Dy()
	}

	s := &GIFStream{width: w, height: h}
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	for _, p := range g.Image {
		draw.Draw(canvas, p.Bounds(), p, p.Bounds().Min, draw.Over)
		frame := image.NewRGBA(canvas.Bounds())
		copy(frame.Pix, canvas.Pix)
		s.frames = append(s.frames, frame)
	}

	// Delay is in hundredths of a second; 0 means unspecified.
	s.fps = 10
	if len(g.Delay) > 0 && g.Delay[0] > 0 {
		s.fps = 100 / float64(g.Delay[0])
	}
	return s, nil
}

func (s *GIFStream) NextFrame() (*image.RGBA, error) {
	if s.pos >= len(s.frames) {
		return nil, ErrEndOfStream
	}
	img := s.frames[s.pos]
	s.pos++
	return img, nil
}

func (s *GIFStream) Reset() error {
	s.pos = 0
	return nil
}

func (s *GIFStream) FrameRate() float64 {
	return s.fps
}

func (s *GIFStream) Dimensions() (int, int) {
	return s.width, s.height
}

// FrameCount returns the total number of frames.
func (s *GIFStream) FrameCount() int {
	return len(s.frames)
}

func (s *GIFStream) Close() error {
	s.frames = nil
	return nil
}
