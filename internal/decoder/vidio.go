package decoder

import (
	"fmt"
	"image"

	vidio "github.com/AlexEidt/Vidio"
)

// VidioStream decodes container formats (mp4, avi, mov, mkv, webm) through
// ffmpeg via the Vidio bindings.
type VidioStream struct {
	path  string
	video *vidio.Video
}

// OpenVidio opens a video file with ffmpeg.
func OpenVidio(path string) (*VidioStream, error) {
	v, err := vidio.NewVideo(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return &VidioStream{path: path, video: v}, nil
}

func (s *VidioStream) NextFrame() (*image.RGBA, error) {
	if !s.video.Read() {
		return nil, ErrEndOfStream
	}
	w, h := s.video.Width(), s.video.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, s.video.FrameBuffer())
	return img, nil
}

// Reset reopens the file; ffmpeg pipes cannot seek backwards.
func (s *VidioStream) Reset() error {
	s.video.Close()
	v, err := vidio.NewVideo(s.path)
	if err != nil {
		return fmt.Errorf("reopen video: %w", err)
	}
	s.video = v
	return nil
}

func (s *VidioStream) FrameRate() float64 {
	return s.video.FPS()
}

func (s *VidioStream) Dimensions() (int, int) {
	return s.video.Width(), s.video.Height()
}

// FrameCount returns the total number of frames in the file.
func (s *VidioStream) FrameCount() int {
	return s.video.Frames()
}

func (s *VidioStream) Close() error {
	s.video.Close()
	return nil
}
