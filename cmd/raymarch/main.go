// Package main is the entry point for raymarch.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/samdwyer/raymarch/internal/game"
	"github.com/samdwyer/raymarch/internal/gamedata"
	"github.com/samdwyer/raymarch/internal/logger"
	"github.com/samdwyer/raymarch/internal/telemetry"
	"github.com/samdwyer/raymarch/internal/ui"
	"github.com/samdwyer/raymarch/internal/world"
)

// defaultSampleRatio keeps one in ten frame traces.
const defaultSampleRatio = 0.1

type options struct {
	level     string
	generate  bool
	snapshot  bool
	script    string
	width     int
	height    int
	noMiniMap bool
	noFPS     bool
}

func main() {
	// Load .env file for local development
	// This makes RAYMARCH_HONEYCOMB_API_KEY and RAYMARCH_* settings available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	opts := parseFlags(&cfg)

	snapshot := opts.snapshot || !term.IsTerminal(int(os.Stdout.Fd()))

	// The full-screen UI owns the terminal, so log lines only go to LOG_FILE.
	var fallback io.Writer = io.Discard
	if snapshot {
		fallback = os.Stderr
	}
	closeLog, err := logger.Init(fallback)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	defer closeLog()

	ctx := context.Background()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx, sampleRatio())
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Running without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	level, err := selectLevel(ctx, cfg, opts)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	logger.Log.WithFields(logrus.Fields{
		"level":    level.Name,
		"fov":      cfg.FOV,
		"depth":    cfg.MaxDepth,
		"shades":   cfg.Shades,
		"snapshot": snapshot,
	}).Info("Level selected")

	if snapshot {
		if err := runSnapshot(ctx, cfg, level, opts); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		return
	}

	if err := runTerminal(ctx, cfg, level); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

// parseFlags overlays command-line flags on cfg.
func parseFlags(cfg *game.Config) options {
	var opts options
	flag.StringVar(&opts.level, "level", "", "level id from the catalogue (default: first level)")
	flag.BoolVar(&opts.generate, "generate", false, "play a procedurally generated level")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for -generate (0 picks one from the clock)")
	flag.Float64Var(&cfg.FOV, "fov", cfg.FOV, "field of view in radians")
	flag.Float64Var(&cfg.MaxDepth, "depth", cfg.MaxDepth, "maximum view distance in cells")
	flag.IntVar(&cfg.Shades, "shades", cfg.Shades, "number of wall shades (4-16)")
	flag.BoolVar(&cfg.NonBlocking, "nonblocking", cfg.NonBlocking, "render continuously instead of waiting for keys")
	flag.BoolVar(&opts.snapshot, "snapshot", false, "print a frame as ANSI text instead of running interactively")
	flag.StringVar(&opts.script, "script", "", "keys replayed before the snapshot is taken, e.g. wwad")
	flag.IntVar(&opts.width, "width", 120, "snapshot width in columns")
	flag.IntVar(&opts.height, "height", 40, "snapshot height in rows")
	flag.BoolVar(&opts.noMiniMap, "no-minimap", false, "hide the mini-map")
	flag.BoolVar(&opts.noFPS, "no-fps", false, "hide the frame rate")
	flag.Parse()

	if opts.noMiniMap {
		cfg.ShowMiniMap = false
	}
	if opts.noFPS {
		cfg.ShowFPS = false
	}
	return opts
}

// selectLevel returns a generated level or one from the embedded catalogue.
func selectLevel(ctx context.Context, cfg game.Config, opts options) (game.Level, error) {
	if opts.generate {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		gen, err := world.Generate(ctx, world.DefaultWidth, world.DefaultHeight, rand.New(rand.NewSource(seed)))
		if err != nil {
			return game.Level{}, err
		}
		x, y := gen.Start()
		logger.Log.WithFields(logrus.Fields{
			"seed":  seed,
			"rooms": len(gen.Rooms),
		}).Info("Generated level")
		return game.Level{
			Name:   fmt.Sprintf("generated-%d", seed),
			Layout: gen.Layout(),
			Start:  game.Pose{X: float64(x), Y: float64(y)},
			Tint:   tcell.ColorWhite,
		}, nil
	}

	registry, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return game.Level{}, err
	}
	def, err := registry.Lookup(opts.level)
	if err != nil {
		return game.Level{}, err
	}
	return game.Level{
		Name:   def.Name,
		Layout: def.Layout(),
		Start:  game.Pose{X: def.Start.X, Y: def.Start.Y, Heading: def.Start.Heading},
		Tint:   def.TintColor(),
	}, nil
}

// runTerminal plays interactively on the terminal until the player quits.
func runTerminal(ctx context.Context, cfg game.Config, level game.Level) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	g, err := game.New(cfg, level, screen, game.NewTerminalInput(screen, cfg.NonBlocking))
	if err != nil {
		return err
	}
	return g.Run(ctx)
}

// runSnapshot replays the key script into a buffer and prints the last frame.
func runSnapshot(ctx context.Context, cfg game.Config, level game.Level, opts options) error {
	buf := ui.NewBuffer(opts.width, opts.height)
	g, err := game.New(cfg, level, buf, game.ParseScript(opts.script))
	if err != nil {
		return err
	}
	if err := g.Run(ctx); err != nil {
		return err
	}
	return ui.WriteSnapshot(os.Stdout, buf)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars
// and reports whether an API key is available to export with.
func setupOTelEnv() bool {
	apiKey := os.Getenv("RAYMARCH_HONEYCOMB_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv("RAYMARCH_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "raymarch"
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}

// sampleRatio reads RAYMARCH_TRACE_SAMPLE, falling back to defaultSampleRatio.
func sampleRatio() float64 {
	v := os.Getenv("RAYMARCH_TRACE_SAMPLE")
	if v == "" {
		return defaultSampleRatio
	}
	ratio, err := strconv.ParseFloat(v, 64)
	if err != nil || ratio < 0 {
		log.Printf("Warning: ignoring invalid RAYMARCH_TRACE_SAMPLE %q", v)
		return defaultSampleRatio
	}
	return ratio
}
