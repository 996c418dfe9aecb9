package world

import (
	"errors"
	"fmt"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

// ErrOutOfBounds is returned when a coordinate lies outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// Grid is a fixed-size 2-D array of tiles indexed by (x, y).
type Grid struct {
	Width  int
	Height int
	tiles  [][]Tile
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height}
	g.tiles = make([][]Tile, height)
	for y := range g.tiles {
		g.tiles[y] = make([]Tile, width)
	}
	g.Fill(TileWall)
	return g
}

// Fill sets every tile in the grid to t.
func (g *Grid) Fill(t Tile) {
	for y := range g.tiles {
		for x := range g.tiles[y] {
			g.tiles[y][x] = t
		}
	}
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Lookup returns the tile at the given position, or ErrOutOfBounds.
func (g *Grid) Lookup(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return TileWall, fmt.Errorf("tile (%d,%d) on %dx%d grid: %w", x, y, g.Width, g.Height, ErrOutOfBounds)
	}
	return g.tiles[y][x], nil
}

// GetTile returns the tile at the given position. Off-grid positions read as walls.
func (g *Grid) GetTile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileWall
	}
	return g.tiles[y][x]
}

// Set replaces the tile at the given position. It reports false for off-grid positions.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.tiles[y][x] = t
	return true
}

// IsPassable returns true if the given position can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	return g.GetTile(x, y).IsPassable()
}

// BlocksSight returns true if the given position blocks line of sight.
func (g *Grid) BlocksSight(x, y int) bool {
	return !g.GetTile(x, y).IsTransparent()
}

// IsExplored returns true if the given position has ever been visible.
func (g *Grid) IsExplored(x, y int) bool {
	return g.GetTile(x, y).Explored
}

// MarkExplored flags the tile as explored and reports whether it was newly explored.
// Explored is never cleared.
func (g *Grid) MarkExplored(x, y int) bool {
	if !g.InBounds(x, y) || g.tiles[y][x].Explored {
		return false
	}
	g.tiles[y][x].Explored = true
	return true
}

// carve turns the tile at the given position into floor, keeping its explored flag.
func (g *Grid) carve(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	explored := g.tiles[y][x].Explored
	g.tiles[y][x] = TileFloor
	g.tiles[y][x].Explored = explored
}
