package display

import (
	"errors"
	"image"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/dkovacs/asciivid/internal/input"
)

// EbitenDisplay shows rendered canvases in an Ebitengine window and turns
// key presses into playback events. Canvases arrive from the playback
// goroutine via SetFrame; events leave through a buffered channel drained
// by Poll.
type EbitenDisplay struct {
	mu          sync.Mutex
	frame       *image.RGBA
	ebitenImage *ebiten.Image

	events chan input.Event

	screenW int
	screenH int

	closeOnce sync.Once
	done      chan struct{}
}

// NewEbitenDisplay creates a display with the given initial window size.
func NewEbitenDisplay(width, height int) *EbitenDisplay {
	return &EbitenDisplay{
		events:  make(chan input.Event, 8),
		screenW: width,
		screenH: height,
		done:    make(chan struct{}),
	}
}

// SetFrame updates the displayed canvas (called from the playback goroutine).
func (d *EbitenDisplay) SetFrame(img *image.RGBA) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame = img
}

// Poll returns one pending playback event without blocking.
func (d *EbitenDisplay) Poll() (input.Event, bool) {
	select {
	case e := <-d.events:
		return e, true
	default:
		return "", false
	}
}

// Shutdown ends the game loop on the next update.
func (d *EbitenDisplay) Shutdown() {
	d.closeOnce.Do(func() { close(d.done) })
}

// Run starts the Ebitengine game loop. Must be called from the main goroutine.
func (d *EbitenDisplay) Run() error {
	ebiten.SetWindowSize(d.screenW, d.screenH)
	ebiten.SetWindowTitle("ASCII Video Player")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGame(d)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// --- ebiten.Game interface ---

func (d *EbitenDisplay) Update() error {
	select {
	case <-d.done:
		return ebiten.Termination
	default:
	}
	d.captureKeys()
	return nil
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	d.mu.Lock()
	frame := d.frame
	d.mu.Unlock()

	if frame == nil {
		return
	}

	if d.ebitenImage == nil ||
		d.ebitenImage.Bounds().Dx() != frame.Bounds().Dx() ||
		d.ebitenImage.Bounds().Dy() != frame.Bounds().Dy() {
		d.ebitenImage = ebiten.NewImage(frame.Bounds().Dx(), frame.Bounds().Dy())
	}
	d.ebitenImage.WritePixels(frame.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := float64(frame.Bounds().Dx()), float64(frame.Bounds().Dy())
	scale, offsetX, offsetY := aspectFitTransform(float64(sw), float64(sh), fw, fh)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(d.ebitenImage, op)
}

func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// --- Input capture ---

func (d *EbitenDisplay) captureKeys() {
	keys := []struct {
		key   ebiten.Key
		event input.Event
	}{
		{ebiten.KeySpace, input.EventPauseToggle},
		{ebiten.KeyP, input.EventPreviewToggle},
		{ebiten.KeyR, input.EventRestart},
		{ebiten.KeyQ, input.EventQuit},
		{ebiten.KeyEscape, input.EventQuit},
	}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			d.sendEvent(k.event)
		}
	}
}

func (d *EbitenDisplay) sendEvent(e input.Event) {
	select {
	case d.events <- e:
	default:
		// Playback loop is behind; drop rather than block the game loop.
	}
}

// aspectFitTransform returns scale and offsets to fit frame into view with letterboxing.
func aspectFitTransform(viewW, viewH, frameW, frameH float64) (scale, offsetX, offsetY float64) {
	scale = math.Min(viewW/frameW, viewH/frameH)
	offsetX = (viewW - frameW*scale) / 2
	offsetY = (viewH - frameH*scale) / 2
	return
}
