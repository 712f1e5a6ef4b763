package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dkovacs/asciivid/internal/config"
	"github.com/dkovacs/asciivid/internal/decoder"
	"github.com/dkovacs/asciivid/internal/sizecalc"
)

func main() {
	cfg, err := config.ParseSizeCalcFlags()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	info, err := os.Stat(cfg.VideoPath)
	if err != nil {
		log.Fatalf("stat video: %v", err)
	}
	stream, err := decoder.Open(cfg.VideoPath)
	if err != nil {
		log.Fatalf("open video: %v", err)
	}
	defer stream.Close()

	w, h := stream.Dimensions()
	probe := sizecalc.Probe{
		Path:     cfg.VideoPath,
		FileSize: info.Size(),
		Width:    w,
		Height:   h,
		FPS:      stream.FrameRate(),
	}
	if fc, ok := stream.(interface{ FrameCount() int }); ok {
		probe.Frames = fc.FrameCount()
	}

	est := sizecalc.Calculate(probe, cfg.AsciiWidth)
	fmt.Print(est.Report(probe))
}
