package world

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchlit/internal/logger"
	"github.com/samdwyer/torchlit/internal/telemetry"
)

const (
	// Default generator parameters
	DefaultMaxRooms    = 30
	DefaultRoomMinSize = 6
	DefaultRoomMaxSize = 10
)

// ErrNoRooms is returned by Validate when generation placed no rooms.
var ErrNoRooms = errors.New("dungeon generation placed no rooms")

// Params controls dungeon generation.
type Params struct {
	Width       int
	Height      int
	MaxRooms    int // Placement attempts, not a guaranteed room count
	RoomMinSize int
	RoomMaxSize int
}

// DefaultParams returns the standard 80x45 layout parameters.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
	}
}

// Dungeon is a generated map together with its rooms and start position.
type Dungeon struct {
	Grid  *Grid
	Rooms []Rect
	Start Point

	params Params
	rng    Source
}

// NewDungeon creates a dungeon filled with walls. Call Generate to carve it.
func NewDungeon(params Params, rng Source) *Dungeon {
	return &Dungeon{
		Grid:   NewGrid(params.Width, params.Height),
		Rooms:  make([]Rect, 0),
		params: params,
		rng:    rng,
	}
}

// Generate places non-overlapping rooms and links each to the previous one
// with an L-shaped tunnel. Every attempt draws from the Source in the same
// order, so a seeded Source always yields the same map.
func (d *Dungeon) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d.Grid.Fill(TileWall)
	d.Rooms = d.Rooms[:0]
	d.Start = Point{}

	rejected := 0
	for i := 0; i < d.params.MaxRooms; i++ {
		room, ok := d.randomRoom()
		if !ok || d.overlaps(room) {
			rejected++
			continue
		}

		d.carveRoom(room)

		center := room.Center()
		if len(d.Rooms) == 0 {
			// First room is where the player starts
			d.Start = center
		} else {
			d.carveCorridor(d.Rooms[len(d.Rooms)-1].Center(), center)
		}

		d.Rooms = append(d.Rooms, room)
	}

	log := logger.WithComponent("world").WithFields(logrus.Fields{
		"width":    d.params.Width,
		"height":   d.params.Height,
		"rooms":    len(d.Rooms),
		"rejected": rejected,
	})
	if err := d.Validate(); err != nil {
		log.WithError(err).Warn("Degenerate dungeon, start position is the origin")
	} else {
		log.WithField("start", d.Start).Debug("Dungeon generated")
	}

	// Record telemetry
	span.SetAttributes(
		attribute.Int("dungeon.width", d.params.Width),
		attribute.Int("dungeon.height", d.params.Height),
		attribute.Int("dungeon.attempts", d.params.MaxRooms),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.rejected", rejected),
		attribute.Bool("dungeon.degenerate", len(d.Rooms) == 0),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// Validate reports ErrNoRooms when generation placed no rooms.
func (d *Dungeon) Validate() error {
	if len(d.Rooms) == 0 {
		return ErrNoRooms
	}
	return nil
}

// randomRoom draws a candidate room that fits inside the grid.
// It reports false when no room of the drawn size can fit.
func (d *Dungeon) randomRoom() (Rect, bool) {
	w := d.rng.IntRange(d.params.RoomMinSize, d.params.RoomMaxSize)
	h := d.rng.IntRange(d.params.RoomMinSize, d.params.RoomMaxSize)

	// Keep x2 and y2 inside the grid so the outer edge stays a wall
	maxX := d.params.Width - w - 1
	maxY := d.params.Height - h - 1
	if maxX < 0 || maxY < 0 {
		return Rect{}, false
	}

	x := d.rng.IntRange(0, maxX)
	y := d.rng.IntRange(0, maxY)
	return NewRect(x, y, w, h), true
}

// overlaps returns true if the room intersects any accepted room.
func (d *Dungeon) overlaps(room Rect) bool {
	for _, other := range d.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom sets the tiles inside the room's edges to floor.
func (d *Dungeon) carveRoom(room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			d.Grid.carve(x, y)
		}
	}
}

// carveCorridor connects two room centers with one horizontal and one vertical tunnel.
func (d *Dungeon) carveCorridor(from, to Point) {
	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if d.rng.Bool() {
		d.carveHorizontalTunnel(from.X, to.X, from.Y)
		d.carveVerticalTunnel(from.Y, to.Y, to.X)
	} else {
		d.carveVerticalTunnel(from.Y, to.Y, from.X)
		d.carveHorizontalTunnel(from.X, to.X, to.Y)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.Grid.carve(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.Grid.carve(x, y)
	}
}
