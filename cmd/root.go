package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dynamicdesignlab/liveterm/data"
	"github.com/dynamicdesignlab/liveterm/export"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

// Config holds CLI configuration.
type Config struct {
	Demo       string
	Interval   time.Duration
	ExportDir  string
	MaxFrames  int
	RecordPath string
	ReplayPath string
}

var validDemos = []string{"line", "comet", "dashboard", "rectangle", "vehicle", "image", "stackbar"}

func printUsage() {
	fmt.Fprintf(os.Stderr, `liveterm v%s — live terminal plotting demos

Usage:
  liveterm [OPTIONS]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -export DIR       Headless: render the demo as a PNG frame sequence, then exit
  -version          Print version and exit

Options:
  -demo NAME        Scene to run (default: dashboard)
                    Scenes: line, comet, dashboard, rectangle, vehicle, image, stackbar
  -interval MS      Refresh interval in milliseconds (default: from user config)
  -frames N         Frame cap for -export (0 = until exhausted, default: 0)
  -record FILE      Record the line demo's samples to FILE (JSON lines)
  -replay FILE      Replay recorded samples through the line demo

Keys in the TUI:
  space pause/resume · n step one frame · left/right scroll · up/down jump
  s/m/f step size · tab or 1-9 switch tabs · q quit

Examples:
  liveterm                      Dashboard scene, config refresh rate
  liveterm -demo comet          Spiral comet
  liveterm -demo vehicle -interval 30
  liveterm -demo line -record /tmp/samples.jsonl
  liveterm -demo line -replay /tmp/samples.jsonl
  liveterm -demo comet -export /tmp/frames -frames 120
  liveterm -version
`, Version)
}

// Run parses flags and starts the application.
func Run() error {
	var cfg Config
	var intervalMS int
	var showVersion bool

	flag.StringVar(&cfg.Demo, "demo", "dashboard", "Demo scene to run")
	flag.IntVar(&intervalMS, "interval", 0, "Refresh interval in milliseconds (0 = user config)")
	flag.StringVar(&cfg.ExportDir, "export", "", "Render PNG frames to this directory instead of running the TUI")
	flag.IntVar(&cfg.MaxFrames, "frames", 0, "Frame cap for -export (0 = until exhausted)")
	flag.StringVar(&cfg.RecordPath, "record", "", "Record samples to file for later replay (line demo)")
	flag.StringVar(&cfg.ReplayPath, "replay", "", "Replay recorded samples (line demo)")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = printUsage
	flag.Parse()

	if showVersion {
		fmt.Printf("liveterm v%s\n", Version)
		return nil
	}

	cfg.Interval = time.Duration(intervalMS) * time.Millisecond

	valid := false
	for _, d := range validDemos {
		if cfg.Demo == d {
			valid = true
			break
		}
	}
	if !valid {
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n\n", cfg.Demo)
		printUsage()
		os.Exit(1)
	}

	var rec io.Writer
	var src data.Source
	if cfg.ReplayPath != "" {
		f, err := os.Open(cfg.ReplayPath)
		if err != nil {
			return fmt.Errorf("cannot open replay file: %w", err)
		}
		player, perr := data.NewPlayer(f)
		f.Close()
		if perr != nil {
			return fmt.Errorf("cannot parse replay file: %w", perr)
		}
		src = player
		cfg.Demo = "line"
	}
	if cfg.RecordPath != "" && cfg.ReplayPath == "" {
		f, err := os.Create(cfg.RecordPath)
		if err != nil {
			return fmt.Errorf("cannot create record file: %w", err)
		}
		defer f.Close()
		rec = f
		cfg.Demo = "line"
	}

	scene, err := buildScene(cfg, src, rec)
	if err != nil {
		return err
	}

	if cfg.ExportDir != "" {
		return export.Animate(export.Options{
			Dir:       cfg.ExportDir,
			MaxFrames: cfg.MaxFrames,
			Progress:  os.Stdout,
		}, scene.plots...)
	}

	return scene.win.Loop()
}
