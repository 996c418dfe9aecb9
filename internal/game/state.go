// Package game provides the main game loop and state management.
package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchlit/internal/entity"
	"github.com/samdwyer/torchlit/internal/fov"
	"github.com/samdwyer/torchlit/internal/logger"
	"github.com/samdwyer/torchlit/internal/telemetry"
	"github.com/samdwyer/torchlit/internal/world"
)

// State is the single-player game state. It is advanced one tick at a time
// and owns the grid for its whole lifetime.
type State struct {
	dungeon *world.Dungeon
	player  *entity.Player
	fovMap  *fov.Map
	visible fov.Set

	seed       int64
	radius     int
	lightWalls bool

	// dirty marks the visible set stale after a real move
	dirty      bool
	turns      int
	recomputes int
}

// NewState generates the dungeon, places the player at its start position
// and computes the initial field of view.
func NewState(ctx context.Context, cfg Config, seed int64) *State {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	log := logger.WithComponent("game").WithField("seed", seed)

	d := world.NewDungeon(cfg.Map.Params(), world.NewRand(seed))
	d.Generate(ctx)
	if err := d.Validate(); err != nil {
		log.WithError(err).Warn("Player starts on an unwalkable tile")
		span.SetAttributes(attribute.String("warning", err.Error()))
	}

	s := &State{
		dungeon:    d,
		player:     entity.NewPlayer(d.Start),
		fovMap:     fov.NewMap(d.Grid),
		seed:       seed,
		radius:     cfg.FOV.Radius,
		lightWalls: cfg.FOV.LightWalls,
		dirty:      true,
	}
	s.refreshFOV(ctx)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(d.Rooms)),
		attribute.Int("player.start_x", d.Start.X),
		attribute.Int("player.start_y", d.Start.Y),
	)
	log.WithFields(logrus.Fields{
		"rooms": len(d.Rooms),
		"start": d.Start,
	}).Info("Game initialized")

	return s
}

// Tick processes one input intent: at most one move, followed by a field of
// view recomputation only if the player actually moved. It reports whether
// the player moved.
func (s *State) Tick(ctx context.Context, in Intent) bool {
	s.turns++

	moved := false
	if in.Delta != (world.Point{}) {
		var next world.Point
		next, moved = world.TryMove(s.dungeon.Grid, s.player.Pos, in.Delta)
		if moved {
			s.player.MoveTo(next)
			s.dirty = true
		}
	}

	s.refreshFOV(ctx)
	return moved
}

// refreshFOV recomputes visibility if it is stale and marks the result explored.
func (s *State) refreshFOV(ctx context.Context) {
	if !s.dirty {
		return
	}
	s.visible = s.fovMap.Compute(ctx, s.player.Pos, s.radius, s.lightWalls)
	newly := fov.MarkExplored(s.dungeon.Grid, s.visible)
	s.dirty = false
	s.recomputes++

	logger.WithComponent("game").WithFields(logrus.Fields{
		"turn":     s.turns,
		"pos":      s.player.Pos,
		"explored": newly,
	}).Debug("Visibility refreshed")
}

// Grid returns the dungeon grid.
func (s *State) Grid() *world.Grid {
	return s.dungeon.Grid
}

// Dungeon returns the generated dungeon.
func (s *State) Dungeon() *world.Dungeon {
	return s.dungeon
}

// Visible returns the current visible set.
func (s *State) Visible() fov.Set {
	return s.visible
}

// Player returns the player entity.
func (s *State) Player() *entity.Player {
	return s.player
}

// Turns returns the number of ticks processed.
func (s *State) Turns() int {
	return s.turns
}

// Recomputes returns how many times visibility has been computed.
func (s *State) Recomputes() int {
	return s.recomputes
}

// Status returns the status line shown under the map.
func (s *State) Status() string {
	x, y := s.player.Position()
	return fmt.Sprintf("Seed %d  Turn %d  (%d,%d)", s.seed, s.turns, x, y)
}
