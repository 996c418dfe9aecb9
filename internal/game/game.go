package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/torchlit/internal/logger"
	"github.com/samdwyer/torchlit/internal/ui"
)

// Game couples the turn state to the terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	state    *State
	running  bool
}

// New creates a new game instance on a fresh terminal screen.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(cfg, screen)
}

func newGame(cfg Config, screen *ui.Screen) (*Game, error) {
	palette, err := cfg.Palette.Palette()
	if err != nil {
		screen.Close()
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.state = NewState(ctx, g.cfg, seed)
	g.checkFit()

	// Main game loop
	for g.running {
		// Render current state
		g.renderer.Render(g.state)

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	// Cleanup
	g.screen.Close()
	return nil
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
		g.checkFit()
	case nil:
		// Screen finalized
		g.running = false
	}
}

// checkFit warns when the terminal is too small for the map and status row.
func (g *Game) checkFit() {
	if g.renderer.Fits(g.state) {
		return
	}
	w, h := g.screen.Size()
	grid := g.state.Grid()
	logger.WithComponent("ui").WithFields(logrus.Fields{
		"terminal": fmt.Sprintf("%dx%d", w, h),
		"map":      fmt.Sprintf("%dx%d", grid.Width, grid.Height),
	}).Warn("Terminal too small, map will be clipped")
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	logger.WithComponent("input").WithField("key", ev.Name()).Debug("Key pressed")

	in := IntentFromKey(ev)
	switch {
	case in.Quit:
		g.running = false
	case !in.IsZero():
		g.state.Tick(ctx, in)
	}
}

// State returns the current game state, nil before Run.
func (g *Game) State() *State {
	return g.state
}
