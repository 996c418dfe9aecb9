// Package world provides dungeon generation and map management.
package world

// Tile represents a single map tile.
type Tile struct {
	Blocked    bool // Blocks movement
	BlockSight bool // Blocks line of sight
	Explored   bool // Has been visible at least once
}

var (
	// TileWall is an impassable, opaque tile. New grids are filled with it.
	TileWall = Tile{Blocked: true, BlockSight: true}
	// TileFloor is a passable, transparent tile.
	TileFloor = Tile{}
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}

// IsTransparent returns true if the tile does not block line of sight.
func (t Tile) IsTransparent() bool {
	return !t.BlockSight
}
