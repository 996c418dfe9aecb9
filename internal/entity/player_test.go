package entity

import (
	"testing"

	"github.com/samdwyer/torchlit/internal/world"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(world.Point{X: 13, Y: 13})

	if p.Symbol != '@' {
		t.Errorf("NewPlayer().Symbol = %q, want '@'", p.Symbol)
	}
	if x, y := p.Position(); x != 13 || y != 13 {
		t.Errorf("NewPlayer().Position() = (%d,%d), want (13,13)", x, y)
	}
}

func TestPlayerMoveTo(t *testing.T) {
	p := NewPlayer(world.Point{X: 1, Y: 1})
	p.MoveTo(world.Point{X: 2, Y: 1})

	if p.Pos != (world.Point{X: 2, Y: 1}) {
		t.Errorf("Pos after MoveTo = %+v, want (2,1)", p.Pos)
	}
}
