// Package config resolves runtime configuration from flags and an
// optional TOML file.
package config

import (
	"flag"
	"fmt"
	"os"
)

// PlayerConfig holds all player runtime configuration.
type PlayerConfig struct {
	VideoPath string
	Width     int
	Height    int // 0 = derive from aspect ratio
	Color     bool
	Extended  bool
	Preview   bool
	Listen    string // empty = no broadcast server
}

// ParsePlayerFlags parses flags for the player binary. The config file
// (when present) overrides built-in defaults; explicitly set flags
// override the file.
func ParsePlayerFlags() (*PlayerConfig, error) {
	cfg := &PlayerConfig{Width: 120, Color: true, Preview: true}

	configPath := flag.String("config", DefaultConfigPath(), "TOML config file")
	width := flag.Int("width", cfg.Width, "ASCII width in characters")
	height := flag.Int("height", cfg.Height, "ASCII height in characters (0 = from aspect ratio)")
	noColor := flag.Bool("no-color", false, "grayscale mode")
	extended := flag.Bool("extended", false, "use the extended character set")
	noPreview := flag.Bool("no-preview", false, "hide the original video preview")
	listen := flag.String("listen", "", "serve viewers over WebSocket on this address (e.g. :8080)")
	flag.Usage = playerUsage
	flag.Parse()

	file, err := LoadFile(*configPath)
	if err != nil {
		return nil, err
	}
	file.applyTo(cfg)

	// Explicit flags win over the file.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["width"] {
		cfg.Width = *width
	}
	if set["height"] {
		cfg.Height = *height
	}
	if set["no-color"] {
		cfg.Color = !*noColor
	}
	if set["extended"] {
		cfg.Extended = *extended
	}
	if set["no-preview"] {
		cfg.Preview = !*noPreview
	}
	if set["listen"] {
		cfg.Listen = *listen
	}

	if flag.NArg() < 1 {
		return nil, fmt.Errorf("no video file given")
	}
	cfg.VideoPath = flag.Arg(0)

	if cfg.Width < 2 {
		return nil, fmt.Errorf("width must be at least 2, got %d", cfg.Width)
	}
	return cfg, nil
}

func playerUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <video-file>\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}

// DemoConfig holds configuration for the demo clip generator.
type DemoConfig struct {
	OutDir string
	FPS    int
}

// ParseDemoFlags parses flags for the demogen binary.
func ParseDemoFlags() *DemoConfig {
	cfg := &DemoConfig{}
	flag.StringVar(&cfg.OutDir, "out", "sample_videos", "output directory")
	flag.IntVar(&cfg.FPS, "fps", 30, "frames per second")
	flag.Parse()
	return cfg
}

// SizeCalcConfig holds configuration for the sizecalc binary.
type SizeCalcConfig struct {
	VideoPath  string
	AsciiWidth int
}

// ParseSizeCalcFlags parses flags for the sizecalc binary.
func ParseSizeCalcFlags() (*SizeCalcConfig, error) {
	cfg := &SizeCalcConfig{}
	flag.IntVar(&cfg.AsciiWidth, "width", 120, "ASCII width in characters")
	flag.Parse()
	if flag.NArg() < 1 {
		return nil, fmt.Errorf("no video file given")
	}
	cfg.VideoPath = flag.Arg(0)
	return cfg, nil
}
