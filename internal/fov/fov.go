// Package fov computes the player's field of view and records explored tiles.
//
// Visibility uses ray casting: a Bresenham ray is cast from the viewer to
// every cell on the edge of the square enclosing the sight radius. A ray lights
// each cell it crosses until it leaves the radius or meets a cell that blocks
// sight. Whether that blocking cell is itself lit depends on lightWalls.
package fov

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchlit/internal/logger"
	"github.com/samdwyer/torchlit/internal/telemetry"
	"github.com/samdwyer/torchlit/internal/world"
)

// Map is a private copy of the grid's sight and movement data.
// The grid never changes after generation, so a Map is built once.
type Map struct {
	width, height int
	transparent   []bool
	walkable      []bool
}

// NewMap copies transparency and walkability from the grid.
func NewMap(g *world.Grid) *Map {
	m := &Map{
		width:       g.Width,
		height:      g.Height,
		transparent: make([]bool, g.Width*g.Height),
		walkable:    make([]bool, g.Width*g.Height),
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			t := g.GetTile(x, y)
			m.transparent[m.index(x, y)] = t.IsTransparent()
			m.walkable[m.index(x, y)] = t.IsPassable()
		}
	}
	return m
}

// IsTransparent returns true if light passes through (x, y). Off-map is opaque.
func (m *Map) IsTransparent(x, y int) bool {
	return m.inBounds(x, y) && m.transparent[m.index(x, y)]
}

// IsWalkable returns true if (x, y) can be walked on. Off-map is not walkable.
func (m *Map) IsWalkable(x, y int) bool {
	return m.inBounds(x, y) && m.walkable[m.index(x, y)]
}

// Compute returns the tiles visible from origin within radius.
// A radius of zero or less means unlimited. An origin off the map yields an
// empty set.
func (m *Map) Compute(ctx context.Context, origin world.Point, radius int, lightWalls bool) Set {
	_, span := telemetry.Tracer("fov").Start(ctx, "fov.compute")
	defer span.End()

	visible := newSet()
	if !m.inBounds(origin.X, origin.Y) {
		logger.WithComponent("fov").WithField("origin", origin).Debug("Viewer off the map, nothing visible")
		span.SetAttributes(attribute.Bool("fov.off_map", true))
		return visible
	}

	// Viewer's own tile is always visible
	visible.add(origin.X, origin.Y)

	xmin, ymin, xmax, ymax := 0, 0, m.width-1, m.height-1
	if radius > 0 {
		xmin = max(xmin, origin.X-radius)
		ymin = max(ymin, origin.Y-radius)
		xmax = min(xmax, origin.X+radius)
		ymax = min(ymax, origin.Y+radius)
	}

	r2 := radius * radius
	cast := func(tx, ty int) {
		walkLine(origin.X, origin.Y, tx, ty, func(x, y int) bool {
			if !m.inBounds(x, y) {
				return false
			}
			if radius > 0 && sqDist(origin, x, y) > r2 {
				return false
			}
			if !m.IsTransparent(x, y) {
				if lightWalls {
					visible.add(x, y)
				}
				return false
			}
			visible.add(x, y)
			return true
		})
	}

	// Walk the perimeter of the bounding box
	for x := xmin; x <= xmax; x++ {
		cast(x, ymin)
		cast(x, ymax)
	}
	for y := ymin + 1; y < ymax; y++ {
		cast(xmin, y)
		cast(xmax, y)
	}

	if lightWalls {
		m.lightAdjacentWalls(origin, radius, visible)
	}

	span.SetAttributes(
		attribute.Int("fov.origin_x", origin.X),
		attribute.Int("fov.origin_y", origin.Y),
		attribute.Int("fov.radius", radius),
		attribute.Bool("fov.light_walls", lightWalls),
		attribute.Int("fov.visible_count", visible.Len()),
	)
	logger.WithComponent("fov").WithFields(logrus.Fields{
		"origin":  origin,
		"radius":  radius,
		"visible": visible.Len(),
	}).Debug("FOV computed")

	return visible
}

// lightAdjacentWalls lights opaque cells that border a lit floor cell on the
// side facing away from the viewer. Rays alone leave gaps along room walls.
func (m *Map) lightAdjacentWalls(origin world.Point, radius int, visible Set) {
	r2 := radius * radius
	var walls []world.Point

	visible.Each(func(p world.Point) {
		if !m.IsTransparent(p.X, p.Y) {
			return
		}
		for _, dx := range awayFrom(p.X - origin.X) {
			for _, dy := range awayFrom(p.Y - origin.Y) {
				if dx == 0 && dy == 0 {
					continue
				}
				x, y := p.X+dx, p.Y+dy
				if !m.inBounds(x, y) || m.IsTransparent(x, y) {
					continue
				}
				if radius > 0 && sqDist(origin, x, y) > r2 {
					continue
				}
				walls = append(walls, world.Point{X: x, Y: y})
			}
		}
	})

	for _, w := range walls {
		visible.add(w.X, w.Y)
	}
}

// awayFrom returns the step offsets that do not lead back toward the viewer
// along one axis.
func awayFrom(d int) []int {
	switch {
	case d > 0:
		return []int{0, 1}
	case d < 0:
		return []int{0, -1}
	default:
		return []int{-1, 0, 1}
	}
}

func sqDist(origin world.Point, x, y int) int {
	dx, dy := x-origin.X, y-origin.Y
	return dx*dx + dy*dy
}

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Map) index(x, y int) int {
	return y*m.width + x
}

// Compute builds a Map from the grid and computes visibility in one step.
func Compute(ctx context.Context, g *world.Grid, origin world.Point, radius int, lightWalls bool) Set {
	return NewMap(g).Compute(ctx, origin, radius, lightWalls)
}

// MarkExplored flags every visible tile as explored on the grid and returns
// how many tiles were explored for the first time.
func MarkExplored(g *world.Grid, visible Set) int {
	newly := 0
	visible.Each(func(p world.Point) {
		if g.MarkExplored(p.X, p.Y) {
			newly++
		}
	})
	return newly
}
