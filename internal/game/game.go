package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/dungeonforge/internal/telemetry"
	"github.com/samdwyer/dungeonforge/internal/ui"
	"github.com/samdwyer/dungeonforge/internal/world"
)

// Game holds the viewer state.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	generator *world.Generator
	logger    *zap.Logger
	cfg       Config

	step    int
	seed    []int
	dungeon *world.Dungeon
	view    ui.View
	state   State
	running bool
}

// New creates a viewer on a fresh terminal screen.
func New(cfg Config, generator *world.Generator, logger *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, cfg, generator, logger), nil
}

func newGame(screen *ui.Screen, cfg Config, generator *world.Generator, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen),
		generator: generator,
		logger:    logger,
		cfg:       cfg,
		running:   true,
	}
}

// Run executes the viewer loop until the user quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			g.screen.Interrupt()
		case <-done:
		}
	}()

	g.regenerate(ctx)
	for g.running && ctx.Err() == nil {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

// regenerate builds the dungeon for the current step.
func (g *Game) regenerate(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "viewer.generate")
	defer span.End()

	g.seed = seedAt(g.cfg.Seed, g.step)
	g.view = ui.View{}
	d, ok := g.generator.Generate(ctx, g.seed, g.cfg.RoomCount, g.cfg.MaxTries)
	span.SetAttributes(
		attribute.IntSlice("viewer.seed", g.seed),
		attribute.Bool("viewer.found", ok),
	)
	if !ok {
		g.dungeon, g.state = nil, StateEmpty
		g.logger.Info("no dungeon for seed", zap.Ints("seed", g.seed))
		return
	}
	g.dungeon, g.state = d, StateViewing
}

func (g *Game) render() {
	if g.state == StateEmpty {
		g.screen.Clear()
		g.renderer.RenderMessage(g.status(), 0)
		g.screen.Show()
		return
	}
	g.renderer.Render(g.dungeon, g.view, g.status())
}

func (g *Game) status() string {
	if g.state == StateEmpty {
		return fmt.Sprintf("seed %v: no dungeon  [n]ext [p]rev [q]uit", g.seed)
	}
	return fmt.Sprintf("seed %v: %d rooms, %d locks  [n]ext [p]rev arrows pan [q]uit",
		g.seed, g.dungeon.Len(), g.dungeon.LockCount(world.LockSmallKey))
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt:
		// Woken to observe cancellation.
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.pan(0, -ui.CellHeight)
	case tcell.KeyDown:
		g.pan(0, ui.CellHeight)
	case tcell.KeyLeft:
		g.pan(-ui.CellWidth, 0)
	case tcell.KeyRight:
		g.pan(ui.CellWidth, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'n', 'N':
			g.step++
			g.regenerate(ctx)
		case 'p', 'P':
			if g.step > 0 {
				g.step--
				g.regenerate(ctx)
			}
		}
	}
}

// pan moves the view, keeping it within the drawing.
func (g *Game) pan(dx, dy int) {
	if g.dungeon == nil {
		return
	}
	w, h := g.renderer.Extent(g.dungeon)
	g.view.X = clamp(g.view.X+dx, 0, max(0, w-ui.CellWidth))
	g.view.Y = clamp(g.view.Y+dy, 0, max(0, h-ui.CellHeight))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
