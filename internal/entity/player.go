// Package entity provides the game entities placed on the dungeon map.
package entity

import "github.com/samdwyer/torchlit/internal/world"

// Player is the single adventurer exploring the dungeon.
type Player struct {
	Pos    world.Point // Current position in the dungeon
	Symbol rune        // Display symbol
}

// NewPlayer creates a player at the given position.
func NewPlayer(pos world.Point) *Player {
	return &Player{
		Pos:    pos,
		Symbol: '@',
	}
}

// MoveTo places the player at a position already validated by world.TryMove.
func (p *Player) MoveTo(pos world.Point) {
	p.Pos = pos
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.Pos.X, p.Pos.Y
}
