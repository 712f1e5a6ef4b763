package display

import "image"

// Display shows rendered canvases and captures playback control keys.
type Display interface {
	Run() error
}

// FrameSink receives finished canvases from the playback loop.
type FrameSink interface {
	SetFrame(img *image.RGBA)
}
