// Package decoder opens video files and yields their frames in sequence.
package decoder

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// ErrEndOfStream reports that the stream has no more frames. Expected at the
// end of every playback; not a failure.
var ErrEndOfStream = errors.New("end of stream")

// ErrUnsupportedFormat reports input the decoder cannot handle.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Stream yields decoded frames from a video file.
type Stream interface {
	// NextFrame returns the next frame, or ErrEndOfStream when exhausted.
	NextFrame() (*image.RGBA, error)
	// Reset rewinds the stream to the first frame.
	Reset() error
	// FrameRate returns the source frame rate in frames per second.
	FrameRate() float64
	// Dimensions returns the source pixel width and height.
	Dimensions() (int, int)
	Close() error
}

// Open opens a video file and returns a frame stream. GIF files are decoded
// with the standard library; everything else goes through ffmpeg.
func Open(path string) (Stream, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open video: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".gif") {
		return OpenGIF(path)
	}
	return OpenVidio(path)
}
