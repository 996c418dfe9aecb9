package fov

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/torchlit/internal/world"
)

// Set is the result of one visibility computation. It stays valid until the
// next computation and is never persisted.
type Set struct {
	tiles mapset.Set[world.Point]
}

func newSet() Set {
	return Set{tiles: mapset.New[world.Point]()}
}

// Contains returns true if the tile at (x, y) is visible.
func (s Set) Contains(x, y int) bool {
	return s.tiles.Has(world.Point{X: x, Y: y})
}

// Len returns the number of visible tiles.
func (s Set) Len() int {
	return s.tiles.Size()
}

// Each calls fn for every visible tile, in no particular order.
func (s Set) Each(fn func(p world.Point)) {
	s.tiles.Each(fn)
}

func (s Set) add(x, y int) {
	s.tiles.Put(world.Point{X: x, Y: y})
}
