// Package player drives playback: it owns the tick loop, the pacing clock
// and the play/pause/restart state machine.
package player

import (
	"errors"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"github.com/dkovacs/asciivid/internal/ascii"
	"github.com/dkovacs/asciivid/internal/decoder"
	"github.com/dkovacs/asciivid/internal/display"
	"github.com/dkovacs/asciivid/internal/input"
)

// State is the playback state.
type State int

const (
	StatePlaying State = iota
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Renderer rasterizes a converted frame to a displayable canvas.
type Renderer interface {
	Render(f *ascii.Frame, preview *image.RGBA, status string, paused bool) *image.RGBA
}

// Publisher receives every displayed frame, e.g. for remote viewers.
type Publisher interface {
	Publish(f *ascii.Frame)
}

// Player runs the playback loop. All playback state lives here and is
// mutated only by Tick; nothing else may touch it.
type Player struct {
	stream   decoder.Stream
	conv     *ascii.Converter
	cfg      *ascii.Config
	renderer Renderer
	sink     display.FrameSink
	in       input.Source
	pub      Publisher

	state       State
	frame       int
	fresh       bool
	lastTick    time.Time
	interval    time.Duration
	totalFrames int

	lastAscii *ascii.Frame
	lastRaw   *image.RGBA

	now   func() time.Time
	sleep func(time.Duration)

	stopOnce sync.Once
	quit     chan struct{}
}

// New creates a player in the Playing state. cfg is shared with the
// converter's construction; the player flips its Preview field on toggle.
func New(stream decoder.Stream, conv *ascii.Converter, cfg *ascii.Config, r Renderer, sink display.FrameSink, in input.Source) *Player {
	fps := stream.FrameRate()
	if fps <= 0 {
		fps = 30
	}
	return &Player{
		stream:   stream,
		conv:     conv,
		cfg:      cfg,
		renderer: r,
		sink:     sink,
		in:       in,
		state:    StatePlaying,
		fresh:    true,
		interval: time.Duration(float64(time.Second) / fps),
		now:      time.Now,
		sleep:    time.Sleep,
		quit:     make(chan struct{}),
	}
}

// Stop requests shutdown from outside the loop (e.g. the window closed).
// The loop observes it on its next tick; playback state stays consistent.
func (p *Player) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
}

// SetPublisher attaches an optional frame publisher.
func (p *Player) SetPublisher(pub Publisher) { p.pub = pub }

// SetTotalFrames sets the frame count shown in the status line (0 = unknown).
func (p *Player) SetTotalFrames(n int) { p.totalFrames = n }

// SetClock replaces the wall clock, for tests.
func (p *Player) SetClock(now func() time.Time, sleep func(time.Duration)) {
	p.now = now
	p.sleep = sleep
}

// State returns the current playback state.
func (p *Player) State() State { return p.state }

// CurrentFrame returns the 0-based index of the frame on screen.
func (p *Player) CurrentFrame() int { return p.frame }

// Run loops until the player stops, then releases the stream.
//
// Pacing has no catch-up: a tick that overruns the frame interval is
// followed immediately by the next one, so playback drifts under
// sustained overload instead of dropping frames.
func (p *Player) Run() {
	defer p.stream.Close()
	p.lastTick = p.now()
	for p.state != StateStopped {
		p.Tick()
	}
}

// Tick runs one iteration: poll input, advance or re-render, pace.
func (p *Player) Tick() {
	select {
	case <-p.quit:
		p.state = StateStopped
		return
	default:
	}
	if e, ok := p.in.Poll(); ok {
		p.handleEvent(e)
	}

	switch p.state {
	case StateStopped:
		return
	case StatePlaying:
		p.advance()
	case StatePaused:
		// Re-render the held frame so preview toggling stays responsive.
		p.present()
	}
	if p.state == StateStopped {
		return
	}
	p.pace()
}

func (p *Player) advance() {
	raw, err := p.stream.NextFrame()
	if err != nil {
		if errors.Is(err, decoder.ErrEndOfStream) {
			// Freeze on the last frame instead of ending playback.
			p.state = StatePaused
			p.present()
			return
		}
		log.Printf("decode error: %v", err)
		p.state = StateStopped
		return
	}

	f, err := p.conv.Convert(raw)
	if err != nil {
		// Malformed frame: skip the tick, keep the previous canvas.
		log.Printf("skipping frame: %v", err)
		return
	}

	p.lastAscii = f
	p.lastRaw = raw
	if p.fresh {
		p.fresh = false
	} else {
		p.frame++
	}
	p.present()
}

func (p *Player) present() {
	if p.lastAscii == nil {
		return
	}
	var preview *image.RGBA
	if p.cfg.Preview {
		preview = p.lastRaw
	}
	status := fmt.Sprintf("Frame: %d", p.frame+1)
	if p.totalFrames > 0 {
		status = fmt.Sprintf("Frame: %d/%d", p.frame+1, p.totalFrames)
	}
	p.sink.SetFrame(p.renderer.Render(p.lastAscii, preview, status, p.state == StatePaused))
	if p.pub != nil {
		p.pub.Publish(p.lastAscii)
	}
}

func (p *Player) pace() {
	now := p.now()
	if elapsed := now.Sub(p.lastTick); elapsed < p.interval {
		p.sleep(p.interval - elapsed)
	}
	p.lastTick = p.now()
}

func (p *Player) handleEvent(e input.Event) {
	switch e {
	case input.EventPauseToggle:
		switch p.state {
		case StatePlaying:
			p.state = StatePaused
		case StatePaused:
			p.state = StatePlaying
		}
	case input.EventRestart:
		if p.state == StateStopped {
			return
		}
		if err := p.stream.Reset(); err != nil {
			log.Printf("restart: %v", err)
			p.state = StateStopped
			return
		}
		p.frame = 0
		p.fresh = true
		p.state = StatePlaying
	case input.EventPreviewToggle:
		p.cfg.Preview = !p.cfg.Preview
		log.Printf("preview: %v", p.cfg.Preview)
	case input.EventQuit:
		p.state = StateStopped
	}
}
