package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/dkovacs/asciivid/internal/config"
	"github.com/dkovacs/asciivid/internal/demo"
)

func main() {
	cfg := config.ParseDemoFlags()

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	clips := []struct {
		name    string
		seconds int
	}{
		{"demo_short.mp4", 5},
		{"demo_medium.mp4", 10},
	}
	for _, c := range clips {
		path := filepath.Join(cfg.OutDir, c.name)
		log.Printf("writing %s (%ds @ %d fps, %dx%d)", path, c.seconds, cfg.FPS, demo.Width, demo.Height)
		if err := demo.WriteClip(path, c.seconds, cfg.FPS); err != nil {
			log.Fatalf("write clip: %v", err)
		}
		if info, err := os.Stat(path); err == nil {
			log.Printf("  done: %.1f KB", float64(info.Size())/1024)
		}
	}

	log.Printf("all demo clips created; play one with: asciivid %s", filepath.Join(cfg.OutDir, "demo_short.mp4"))
}
