package main

import (
	"log"

	"github.com/dkovacs/asciivid/internal/ascii"
	"github.com/dkovacs/asciivid/internal/broadcast"
	"github.com/dkovacs/asciivid/internal/config"
	"github.com/dkovacs/asciivid/internal/decoder"
	"github.com/dkovacs/asciivid/internal/display"
	"github.com/dkovacs/asciivid/internal/encoder"
	"github.com/dkovacs/asciivid/internal/player"
	"github.com/dkovacs/asciivid/internal/render"
)

func main() {
	cfg, err := config.ParsePlayerFlags()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	stream, err := decoder.Open(cfg.VideoPath)
	if err != nil {
		log.Fatalf("open video: %v", err)
	}

	srcW, srcH := stream.Dimensions()
	height := cfg.Height
	if height == 0 {
		height = ascii.HeightForWidth(cfg.Width, srcW, srcH)
	}
	if height < 1 {
		height = 1
	}

	charset := ascii.CharsetStandard
	if cfg.Extended {
		charset = ascii.CharsetExtended
	}
	dispCfg := &ascii.Config{
		Width:   cfg.Width,
		Height:  height,
		Color:   cfg.Color,
		Charset: charset,
		Preview: cfg.Preview,
	}
	conv := ascii.NewConverter(*dispCfg)

	ras, err := render.NewRasterizer(cfg.Width, height)
	if err != nil {
		log.Fatalf("rasterizer: %v", err)
	}
	canvasW, canvasH := ras.CanvasSize()
	disp := display.NewEbitenDisplay(canvasW, canvasH)

	log.Printf("ASCII Video Player starting")
	log.Printf("  Video:      %s", cfg.VideoPath)
	log.Printf("  Resolution: %dx%d @ %.2f fps", srcW, srcH, stream.FrameRate())
	log.Printf("  ASCII size: %dx%d", cfg.Width, height)
	log.Printf("Controls: SPACE pause/resume, P preview, R restart, Q/ESC quit")

	p := player.New(stream, conv, dispCfg, ras, disp, disp)
	if fc, ok := stream.(interface{ FrameCount() int }); ok {
		p.SetTotalFrames(fc.FrameCount())
	}

	if cfg.Listen != "" {
		srv := broadcast.NewServer(encoder.NewANSIEncoder())
		if err := srv.Start(cfg.Listen); err != nil {
			log.Fatalf("broadcast: %v", err)
		}
		defer srv.Close()
		p.SetPublisher(srv)
	}

	// Playback loop on its own goroutine; Ebitengine owns the main one.
	go func() {
		p.Run()
		disp.Shutdown()
	}()

	if err := disp.Run(); err != nil {
		log.Fatalf("display: %v", err)
	}
	p.Stop()
	log.Printf("playback finished")
}
