package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/raymarch/internal/entity"
	"github.com/samdwyer/raymarch/internal/logger"
	"github.com/samdwyer/raymarch/internal/raycast"
	"github.com/samdwyer/raymarch/internal/shade"
	"github.com/samdwyer/raymarch/internal/telemetry"
	"github.com/samdwyer/raymarch/internal/ui"
	"github.com/samdwyer/raymarch/internal/world"
)

// ErrStartInWall is returned when the start pose lies in a wall or off the map.
var ErrStartInWall = errors.New("start position is not on open floor")

// Pose is a player position in cell units and a heading in radians.
type Pose struct {
	X, Y    float64
	Heading float64
}

// Level is everything needed to start a game on a map.
type Level struct {
	Name   string
	Layout string      // Row-delimited layout, '#' for walls
	Start  Pose        // Initial player pose
	Tint   tcell.Color // Brightest wall colour
}

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Game holds the entire game state.
type Game struct {
	cfg      Config
	level    Level
	grid     *world.Grid
	player   *entity.Player
	movement *Movement
	renderer *ui.Renderer
	surface  ui.Surface
	input    CommandReader
	clock    Clock

	lastFrame time.Time
	fps       float64
	state     State
}

// New validates the configuration and level and creates a game ready to run.
// A malformed layout or a start pose off the open floor rejects initialization.
func New(cfg Config, level Level, surface ui.Surface, input CommandReader) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	grid, err := world.ParseGrid(level.Layout)
	if err != nil {
		return nil, fmt.Errorf("invalid level %q: %w", level.Name, err)
	}
	if grid.IsOutOfBounds(level.Start.X, level.Start.Y) || grid.IsWall(level.Start.X, level.Start.Y) {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrStartInWall, level.Start.X, level.Start.Y)
	}

	marcher := raycast.NewMarcher(cfg.Step, cfg.MaxDepth, cfg.EdgeThreshold)
	mapper := shade.NewMapper(cfg.MaxDepth, cfg.Shades, cfg.Step)
	renderer := ui.NewRenderer(marcher, mapper, ui.NewPalette(cfg.Shades, level.Tint), ui.Options{
		FOV:         cfg.FOV,
		ShowMiniMap: cfg.ShowMiniMap,
		ShowFPS:     cfg.ShowFPS,
	})

	return &Game{
		cfg:      cfg,
		level:    level,
		grid:     grid,
		player:   entity.NewPlayer(level.Start.X, level.Start.Y, level.Start.Heading),
		movement: NewMovement(grid, cfg.MoveStep, cfg.TurnStep),
		renderer: renderer,
		surface:  surface,
		input:    input,
		clock:    systemClock{},
		state:    StateRunning,
	}, nil
}

// SetClock replaces the frame-rate clock.
func (g *Game) SetClock(c Clock) {
	g.clock = c
}

// Player returns the player.
func (g *Game) Player() *entity.Player {
	return g.player
}

// Grid returns the level grid.
func (g *Game) Grid() *world.Grid {
	return g.grid
}

// State returns the current loop state.
func (g *Game) State() State {
	return g.state
}

// FPS returns the frame rate measured at the start of the last frame.
func (g *Game) FPS() float64 {
	return g.fps
}

// Run executes the frame loop until a quit command is read or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	x, y := g.player.Position()
	initSpan.SetAttributes(
		attribute.String("level.name", g.level.Name),
		attribute.Int("level.width", g.grid.Width()),
		attribute.Int("level.height", g.grid.Height()),
		attribute.Float64("player.start_x", x),
		attribute.Float64("player.start_y", y),
		attribute.Bool("input.non_blocking", g.cfg.NonBlocking),
	)
	initSpan.End()

	logger.Log.WithFields(logrus.Fields{
		"level":  g.level.Name,
		"width":  g.grid.Width(),
		"height": g.grid.Height(),
	}).Info("Starting frame loop")

	for g.RunFrame(ctx) {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

// RunFrame renders one frame, then reads and applies one command.
// It returns false once a quit command has been read.
func (g *Game) RunFrame(ctx context.Context) bool {
	if g.state != StateRunning {
		return false
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "frame.render")

	now := g.clock.Now()
	if !g.lastFrame.IsZero() {
		if elapsed := now.Sub(g.lastFrame); elapsed > 0 {
			g.fps = 1 / elapsed.Seconds()
		}
	}
	g.lastFrame = now

	g.surface.Clear()
	stats := g.renderer.Render(g.surface, g.grid, g.player, g.fps)
	g.surface.Show()

	span.SetAttributes(
		attribute.Int("frame.columns", stats.Columns),
		attribute.Int("frame.hits", stats.Hits),
		attribute.Int("frame.boundaries", stats.Boundaries),
		attribute.Float64("frame.fps", g.fps),
	)
	span.End()

	g.handleCommand(ctx, g.input.ReadCommand())
	return g.state == StateRunning
}

// handleCommand applies a single command.
func (g *Game) handleCommand(ctx context.Context, cmd Command) {
	switch cmd {
	case CommandNone:
		return
	case CommandQuit:
		g.state = StateQuit
		logger.Log.Info("Quit requested")
	case CommandToggleMap:
		visible := g.renderer.ToggleMiniMap()
		logger.Log.WithField("visible", visible).Debug("Mini-map toggled")
	default:
		g.move(ctx, cmd)
	}
}

// move applies a movement command and records its outcome.
func (g *Game) move(ctx context.Context, cmd Command) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "player.move")
	defer span.End()

	outcome := g.movement.Apply(g.player, cmd)
	x, y := g.player.Position()

	span.SetAttributes(
		attribute.String("command", cmd.String()),
		attribute.String("outcome", outcome.String()),
		attribute.Bool("rejected", outcome == OutcomeBlocked),
		attribute.Float64("player.x", x),
		attribute.Float64("player.y", y),
		attribute.Float64("player.heading", g.player.Heading()),
	)

	if outcome == OutcomeBlocked {
		logger.Log.WithFields(logrus.Fields{
			"command": cmd.String(),
			"x":       x,
			"y":       y,
		}).Debug("Move rejected by wall")
	}
}
